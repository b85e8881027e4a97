package seeder

import (
	"context"
	"fmt"

	"path-pilot/internal/database"
	"path-pilot/internal/domain/course"
)

// CoursesSeeder upserts a catalog keeping its declaration order in the
// position column. Rows for ids no longer in the catalog are removed.
type CoursesSeeder struct {
	Courses []course.Course
}

func (CoursesSeeder) Name() string { return "courses" }

const upsertCourse = `
INSERT INTO courses (id, position, title, difficulty, time, skills, prerequisites, url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
ON CONFLICT (id) DO UPDATE SET
	position = EXCLUDED.position,
	title = EXCLUDED.title,
	difficulty = EXCLUDED.difficulty,
	time = EXCLUDED.time,
	skills = EXCLUDED.skills,
	prerequisites = EXCLUDED.prerequisites,
	url = EXCLUDED.url,
	updated_at = now()`

func (s CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses",
		"id", "position", "title", "difficulty", "time", "skills", "prerequisites", "url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	// Positions are unique, so shift existing rows out of the way first.
	if _, err := tx.Exec(ctx, `UPDATE courses SET position = -position - 1`); err != nil {
		return err
	}

	ids := make([]string, 0, len(s.Courses))
	seen := make(map[string]struct{}, len(s.Courses))
	pos := 0
	for _, c := range s.Courses {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		ids = append(ids, c.ID)

		if _, err := tx.Exec(ctx, upsertCourse,
			c.ID, pos, c.Title, string(c.DifficultyOrDefault()), c.Time,
			nonNil(c.Skills), nonNil(c.Prerequisites), c.URL,
		); err != nil {
			return fmt.Errorf("upsert course %s: %w", c.ID, err)
		}
		pos++
	}

	if _, err := tx.Exec(ctx, `DELETE FROM courses WHERE NOT (id = ANY($1))`, ids); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

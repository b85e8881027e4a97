package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"path-pilot/internal/database"
	"path-pilot/internal/domain/course"
)

// CourseSource yields the catalog in declaration order.
type CourseSource interface {
	LoadCourses(ctx context.Context) ([]course.Course, error)
}

type JSONCourseRepository struct {
	path string
}

func NewJSONCourseRepository(path string) *JSONCourseRepository {
	return &JSONCourseRepository{path: path}
}

func (r *JSONCourseRepository) LoadCourses(_ context.Context) ([]course.Course, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read courses: %w", err)
	}
	out := make([]course.Course, 0)
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode courses %s: %w", r.path, err)
	}
	return out, nil
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) LoadCourses(ctx context.Context) ([]course.Course, error) {
	if r.db == nil {
		return nil, database.ErrNilDB
	}
	rows, err := r.db.Query(ctx, `
SELECT id, title, difficulty, time, skills, prerequisites, url
FROM courses
ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]course.Course, 0)
	for rows.Next() {
		var (
			c          course.Course
			difficulty string
		)
		if err := rows.Scan(&c.ID, &c.Title, &difficulty, &c.Time, &c.Skills, &c.Prerequisites, &c.URL); err != nil {
			return nil, err
		}
		c.Difficulty = course.Difficulty(difficulty)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

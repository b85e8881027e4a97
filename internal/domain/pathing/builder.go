// Package pathing builds prerequisite-ordered learning paths and summarizes them.
package pathing

import (
	"slices"
	"strings"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"
)

// Step is the display projection of a course inside a learning path.
type Step struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Difficulty    course.Difficulty `json:"difficulty"`
	Time          string            `json:"time"`
	Skills        []string          `json:"skills"`
	Prerequisites []string          `json:"prerequisites"`
	URL           string            `json:"url"`
}

type Request struct {
	TargetSkill string
	Level       course.Difficulty
	Completed   []string
}

type frame struct {
	c    course.Course
	next int
}

// Build returns the courses teaching req.TargetSkill at or below req.Level,
// each preceded by its prerequisites. Completed courses are left out and their
// prerequisites are not expanded. Prerequisites are included regardless of
// level. Dangling prerequisite ids are ignored, and a prerequisite edge that
// closes a cycle is dropped.
func Build(cat *catalog.Catalog, req Request) []Step {
	out := []Step{}

	candidates := cat.BySkill(req.TargetSkill)
	if strings.TrimSpace(req.TargetSkill) == "" || len(candidates) == 0 {
		return out
	}

	userRank := req.Level.Rank()
	completed := make(map[string]struct{}, len(req.Completed))
	for _, id := range req.Completed {
		completed[strings.TrimSpace(id)] = struct{}{}
	}

	visited := map[string]struct{}{}
	inProgress := map[string]struct{}{}
	ordered := make([]course.Course, 0, len(candidates))

	skip := func(id string) bool {
		if _, ok := visited[id]; ok {
			return true
		}
		if _, ok := inProgress[id]; ok {
			return true
		}
		_, ok := completed[id]
		return ok
	}

	for _, cand := range candidates {
		if cand.DifficultyOrDefault().Rank() > userRank {
			continue
		}
		if skip(cand.ID) {
			continue
		}

		inProgress[cand.ID] = struct{}{}
		stack := []frame{{c: cand}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.c.Prerequisites) {
				pid := top.c.Prerequisites[top.next]
				top.next++

				pre, ok := cat.Find(pid)
				if !ok || skip(pre.ID) {
					continue
				}
				inProgress[pre.ID] = struct{}{}
				stack = append(stack, frame{c: pre})
				continue
			}

			done := top.c
			stack = stack[:len(stack)-1]
			delete(inProgress, done.ID)
			visited[done.ID] = struct{}{}
			ordered = append(ordered, done)
		}
	}

	seen := make(map[string]struct{}, len(ordered))
	for _, c := range ordered {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, toStep(c))
	}
	return out
}

func toStep(c course.Course) Step {
	url := strings.TrimSpace(c.URL)
	if url == "" {
		url = course.DefaultURL
	}
	skills := slices.Clone(c.Skills)
	if skills == nil {
		skills = []string{}
	}
	prereqs := slices.Clone(c.Prerequisites)
	if prereqs == nil {
		prereqs = []string{}
	}
	return Step{
		ID:            c.ID,
		Title:         c.Title,
		Difficulty:    c.Difficulty,
		Time:          c.Time,
		Skills:        skills,
		Prerequisites: prereqs,
		URL:           url,
	}
}

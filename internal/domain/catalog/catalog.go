// Package catalog holds an immutable, indexed snapshot of the course catalog
// and the prerequisite traversals that run over it.
package catalog

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"path-pilot/internal/domain/course"
)

var ErrCourseNotFound = errors.New("course not found")

// Catalog is read-only after New returns and safe for concurrent use.
type Catalog struct {
	courses []course.Course
	byID    map[string]int

	// skill keys are case-folded; display keeps the first seen casing.
	skillOrder []string
	display    map[string]string
	bySkill    map[string][]int
}

func New(courses []course.Course) *Catalog {
	c := &Catalog{
		courses: slices.Clone(courses),
		byID:    make(map[string]int, len(courses)),
		display: make(map[string]string),
		bySkill: make(map[string][]int),
	}

	for i := range c.courses {
		id := c.courses[i].ID
		if _, ok := c.byID[id]; !ok {
			c.byID[id] = i
		}

		seen := make(map[string]struct{}, len(c.courses[i].Skills))
		for _, s := range c.courses[i].Skills {
			name := strings.TrimSpace(s)
			key := SkillKey(name)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if _, ok := c.display[key]; !ok {
				c.display[key] = name
				c.skillOrder = append(c.skillOrder, key)
			}
			c.bySkill[key] = append(c.bySkill[key], i)
		}
	}

	return c
}

// SkillKey is the case-folded form used for all skill comparisons.
func SkillKey(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.courses)
}

// Courses returns the catalog in declaration order.
func (c *Catalog) Courses() []course.Course {
	if c == nil {
		return []course.Course{}
	}
	return slices.Clone(c.courses)
}

func (c *Catalog) Find(id string) (course.Course, bool) {
	if c == nil {
		return course.Course{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return course.Course{}, false
	}
	return c.courses[i], true
}

// BySkill returns every course listing skill (case-insensitive exact match), in catalog order.
func (c *Catalog) BySkill(skill string) []course.Course {
	if c == nil {
		return []course.Course{}
	}
	idx := c.bySkill[SkillKey(skill)]
	out := make([]course.Course, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.courses[i])
	}
	return out
}

// SkillFrequency is the number of distinct courses teaching skill.
func (c *Catalog) SkillFrequency(skill string) int {
	if c == nil {
		return 0
	}
	return len(c.bySkill[SkillKey(skill)])
}

// SkillKeys returns the distinct case-folded skills in first-encounter order.
func (c *Catalog) SkillKeys() []string {
	if c == nil {
		return []string{}
	}
	return slices.Clone(c.skillOrder)
}

// Skills returns the distinct skill display names sorted alphabetically.
func (c *Catalog) Skills() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.skillOrder))
	for _, k := range c.skillOrder {
		out = append(out, c.display[k])
	}
	sort.Strings(out)
	return out
}

// DisplayName returns the first catalog casing of skill, or skill itself when unknown.
func (c *Catalog) DisplayName(skill string) string {
	if c != nil {
		if d, ok := c.display[SkillKey(skill)]; ok {
			return d
		}
	}
	return strings.TrimSpace(skill)
}

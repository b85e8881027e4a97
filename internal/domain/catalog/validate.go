package catalog

import (
	"fmt"
	"strings"
)

type DanglingRef struct {
	CourseID       string `json:"course_id"`
	PrerequisiteID string `json:"prerequisite_id"`
}

// Report describes structural problems in a catalog. None of them prevent
// loading; traversals tolerate all of them.
type Report struct {
	Courses       int           `json:"courses"`
	Skills        int           `json:"skills"`
	DuplicateIDs  []string      `json:"duplicate_ids"`
	Dangling      []DanglingRef `json:"dangling_prerequisites"`
	CycleCourses  []string      `json:"cycle_courses"`
	MalformedTime []string      `json:"malformed_time"`
}

// OK reports whether the catalog has neither duplicate ids nor cycles.
func (r Report) OK() bool {
	return len(r.DuplicateIDs) == 0 && len(r.CycleCourses) == 0
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "courses=%d skills=%d", r.Courses, r.Skills)
	if len(r.DuplicateIDs) > 0 {
		fmt.Fprintf(&b, " duplicate_ids=%s", strings.Join(r.DuplicateIDs, ","))
	}
	if len(r.Dangling) > 0 {
		refs := make([]string, 0, len(r.Dangling))
		for _, d := range r.Dangling {
			refs = append(refs, d.CourseID+"->"+d.PrerequisiteID)
		}
		fmt.Fprintf(&b, " dangling=%s", strings.Join(refs, ","))
	}
	if len(r.CycleCourses) > 0 {
		fmt.Fprintf(&b, " cycle=%s", strings.Join(r.CycleCourses, ","))
	}
	if len(r.MalformedTime) > 0 {
		fmt.Fprintf(&b, " malformed_time=%s", strings.Join(r.MalformedTime, ","))
	}
	return b.String()
}

// Validate inspects the catalog for duplicate ids, dangling prerequisite
// references, malformed durations and prerequisite cycles. Cycle detection is
// Kahn's algorithm over the edges prerequisite -> dependent; whatever cannot
// be ordered sits on or behind a cycle.
func (c *Catalog) Validate(parseHours func(string) (int, error)) Report {
	r := Report{
		DuplicateIDs:  []string{},
		Dangling:      []DanglingRef{},
		CycleCourses:  []string{},
		MalformedTime: []string{},
	}
	if c == nil {
		return r
	}
	r.Courses = len(c.courses)
	r.Skills = len(c.skillOrder)

	dup := map[string]bool{}
	for i, it := range c.courses {
		if first := c.byID[it.ID]; first != i && !dup[it.ID] {
			dup[it.ID] = true
			r.DuplicateIDs = append(r.DuplicateIDs, it.ID)
		}
	}

	inDegree := make(map[string]int, len(c.byID))
	dependents := make(map[string][]string, len(c.byID))
	order := make([]string, 0, len(c.byID))
	for i, it := range c.courses {
		if c.byID[it.ID] != i {
			continue
		}
		order = append(order, it.ID)
		if parseHours != nil {
			if _, err := parseHours(it.Time); err != nil {
				r.MalformedTime = append(r.MalformedTime, it.ID)
			}
		}

		seen := map[string]struct{}{}
		for _, pid := range it.Prerequisites {
			if _, ok := seen[pid]; ok {
				continue
			}
			seen[pid] = struct{}{}
			if _, ok := c.byID[pid]; !ok {
				r.Dangling = append(r.Dangling, DanglingRef{CourseID: it.ID, PrerequisiteID: pid})
				continue
			}
			inDegree[it.ID]++
			dependents[pid] = append(dependents[pid], it.ID)
		}
	}

	queue := make([]string, 0, len(order))
	for _, id := range order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	resolved := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		resolved++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if resolved != len(order) {
		for _, id := range order {
			if inDegree[id] > 0 {
				r.CycleCourses = append(r.CycleCourses, id)
			}
		}
	}

	return r
}

package catalog

import "path-pilot/internal/domain/course"

type resolveFrame struct {
	id   string
	next int
}

// Dependencies returns the transitive prerequisite ids of courseID, deepest
// first, without duplicates and without courseID itself. Ids that are not in
// the catalog are reported but not expanded. An unknown courseID yields an
// empty result.
func (c *Catalog) Dependencies(courseID string) []string {
	out := []string{}
	if _, ok := c.Find(courseID); !ok {
		return out
	}

	visited := map[string]struct{}{courseID: {}}
	emitted := map[string]struct{}{}
	emit := func(id string) {
		if id == courseID {
			return
		}
		if _, ok := emitted[id]; ok {
			return
		}
		emitted[id] = struct{}{}
		out = append(out, id)
	}

	stack := []resolveFrame{{id: courseID}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		cur, ok := c.Find(top.id)
		if !ok || top.next >= len(cur.Prerequisites) {
			id := top.id
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				emit(id)
			}
			continue
		}

		pid := cur.Prerequisites[top.next]
		top.next++

		if _, seen := visited[pid]; seen {
			// Already expanded or on the current path.
			emit(pid)
			continue
		}
		visited[pid] = struct{}{}
		stack = append(stack, resolveFrame{id: pid})
	}

	return out
}

// DependencyCourses maps Dependencies onto catalog records in catalog order.
// Dangling ids are dropped.
func (c *Catalog) DependencyCourses(courseID string) []course.Course {
	ids := c.Dependencies(courseID)
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]course.Course, 0, len(ids))
	for _, it := range c.Courses() {
		if _, ok := want[it.ID]; !ok {
			continue
		}
		out = append(out, it)
		delete(want, it.ID)
	}
	return out
}

// Package skillgap ranks the catalog skills a free-text profile does not mention.
package skillgap

import (
	"sort"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"
	"path-pilot/internal/search"
)

const (
	// MinFrequency is the course count a goal-irrelevant skill needs to be
	// reported once a goal has been detected.
	MinFrequency = 3
	MaxExamples  = 3
)

type Gap struct {
	Skill      string           `json:"skill"`
	Count      int              `json:"count"`
	IsPriority bool             `json:"is_priority"`
	Examples   []course.Summary `json:"examples"`
}

type Analysis struct {
	Gaps         []Gap
	DetectedGoal string
	Roadmap      *search.Roadmap
}

type Analyzer struct {
	matcher  *search.Matcher
	roadmaps []search.Roadmap
}

func NewAnalyzer(matcher *search.Matcher, roadmaps []search.Roadmap) *Analyzer {
	return &Analyzer{matcher: matcher, roadmaps: roadmaps}
}

func (a *Analyzer) Matcher() *search.Matcher { return a.matcher }

// Analyze lists gaps with the detected goal's required skills first, then by
// descending course count. Ties keep catalog encounter order.
func (a *Analyzer) Analyze(cat *catalog.Catalog, text string) Analysis {
	res := Analysis{Gaps: []Gap{}}

	priority := map[string]struct{}{}
	if r, ok := search.DetectGoal(text, a.roadmaps); ok {
		res.DetectedGoal = r.Name
		res.Roadmap = &r
		for _, s := range r.RequiredSkills {
			priority[catalog.SkillKey(s)] = struct{}{}
		}
	}

	keys := cat.SkillKeys()
	isPriority := func(k string) bool {
		_, ok := priority[k]
		return ok
	}
	sort.SliceStable(keys, func(i, j int) bool {
		pi, pj := isPriority(keys[i]), isPriority(keys[j])
		if pi != pj {
			return pi
		}
		return cat.SkillFrequency(keys[i]) > cat.SkillFrequency(keys[j])
	})

	for _, key := range keys {
		if a.matcher.IsMentioned(key, text) {
			continue
		}
		count := cat.SkillFrequency(key)
		prio := isPriority(key)
		if res.DetectedGoal != "" && !prio && count < MinFrequency {
			continue
		}

		courses := cat.BySkill(key)
		if len(courses) > MaxExamples {
			courses = courses[:MaxExamples]
		}
		examples := make([]course.Summary, 0, len(courses))
		for _, c := range courses {
			examples = append(examples, c.Summary())
		}

		res.Gaps = append(res.Gaps, Gap{
			Skill:      cat.DisplayName(key),
			Count:      count,
			IsPriority: prio,
			Examples:   examples,
		})
	}
	return res
}

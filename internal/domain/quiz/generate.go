package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"path-pilot/internal/domain/course"
)

// PublicQuestion is a question with its answer and explanation stripped.
type PublicQuestion struct {
	ID         string            `json:"id"`
	Question   string            `json:"question"`
	Options    []string          `json:"options"`
	Difficulty course.Difficulty `json:"difficulty"`
}

type Quiz struct {
	QuizID         string            `json:"quiz_id"`
	Skill          string            `json:"skill"`
	Difficulty     course.Difficulty `json:"difficulty"`
	TotalQuestions int               `json:"total_questions"`
	Questions      []PublicQuestion  `json:"questions"`
}

// Generate samples up to n questions for skills at difficulty. When the exact
// tier has fewer than n questions every tier of those skills is used, and when
// nothing matches a question whose skill contains, or is contained in, a
// requested skill qualifies.
func (b *Bank) Generate(skills []string, difficulty course.Difficulty, n int, rng *rand.Rand) Quiz {
	if n <= 0 {
		n = DefaultQuestionCount
	}

	wanted := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		wanted[strings.ToLower(s)] = struct{}{}
	}
	inSkills := func(q Question) bool {
		_, ok := wanted[strings.ToLower(q.Skill)]
		return ok
	}

	var pool []Question
	if b != nil {
		for _, q := range b.questions {
			if inSkills(q) && q.Difficulty == difficulty {
				pool = append(pool, q)
			}
		}
		if len(pool) < n {
			pool = pool[:0]
			for _, q := range b.questions {
				if inSkills(q) {
					pool = append(pool, q)
				}
			}
		}
		if len(pool) == 0 {
			for _, q := range b.questions {
				if fuzzySkill(q.Skill, skills) {
					pool = append(pool, q)
				}
			}
		}
	}

	k := min(n, len(pool))
	selected := make([]Question, 0, k)
	for _, i := range rng.Perm(len(pool))[:k] {
		selected = append(selected, pool[i])
	}

	display := ""
	if len(skills) > 0 {
		display = skills[0]
	}
	if len(selected) > 0 {
		display = selected[0].Skill
	}

	qs := make([]PublicQuestion, 0, len(selected))
	for _, q := range selected {
		qs = append(qs, PublicQuestion{
			ID:         q.ID,
			Question:   q.Question,
			Options:    append([]string{}, q.Options...),
			Difficulty: q.Difficulty,
		})
	}

	return Quiz{
		QuizID:         fmt.Sprintf("quiz_%s_%s_%d", strings.ReplaceAll(display, " ", "_"), difficulty, 1000+rng.IntN(9000)),
		Skill:          display,
		Difficulty:     difficulty,
		TotalQuestions: len(qs),
		Questions:      qs,
	}
}

func fuzzySkill(questionSkill string, skills []string) bool {
	qs := strings.ToLower(questionSkill)
	for _, s := range skills {
		s = strings.ToLower(s)
		if strings.Contains(s, qs) || strings.Contains(qs, s) {
			return true
		}
	}
	return false
}

// Package quiz samples skill quizzes from a question bank and grades answers.
package quiz

import (
	"slices"
	"sort"
	"strings"

	"path-pilot/internal/domain/course"
)

const DefaultQuestionCount = 5

type Question struct {
	ID            string            `json:"id"`
	Skill         string            `json:"skill"`
	Difficulty    course.Difficulty `json:"difficulty"`
	Question      string            `json:"question"`
	Options       []string          `json:"options"`
	CorrectAnswer int               `json:"correctAnswer"`
	Explanation   string            `json:"explanation"`
}

// CorrectOption returns the text of the correct option, or "" when the index is out of range.
func (q Question) CorrectOption() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// Bank is an immutable question set, safe for concurrent use.
type Bank struct {
	questions []Question
	byID      map[string]int
}

func NewBank(questions []Question) *Bank {
	b := &Bank{
		questions: slices.Clone(questions),
		byID:      make(map[string]int, len(questions)),
	}
	for i, q := range b.questions {
		if _, ok := b.byID[q.ID]; !ok {
			b.byID[q.ID] = i
		}
	}
	return b
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

func (b *Bank) Find(id string) (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// AvailableSkills returns the distinct skills that have questions, sorted.
func (b *Bank) AvailableSkills() []string {
	out := []string{}
	if b == nil {
		return out
	}
	seen := map[string]struct{}{}
	for _, q := range b.questions {
		if _, ok := seen[q.Skill]; ok {
			continue
		}
		seen[q.Skill] = struct{}{}
		out = append(out, q.Skill)
	}
	sort.Strings(out)
	return out
}

// QuestionCount counts questions for skill (case-insensitive). An empty
// difficulty counts every tier.
func (b *Bank) QuestionCount(skill string, difficulty course.Difficulty) int {
	if b == nil {
		return 0
	}
	n := 0
	for _, q := range b.questions {
		if !strings.EqualFold(q.Skill, skill) {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		n++
	}
	return n
}

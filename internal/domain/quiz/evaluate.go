package quiz

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	PassPercentage = 60
	xpPerCorrect   = 10
	perfectBonusXP = 50
	invalidAnswer  = "Invalid Answer"
)

type QuestionResult struct {
	QuestionID     string  `json:"question_id"`
	Question       string  `json:"question"`
	UserAnswer     any     `json:"user_answer"`
	CorrectAnswer  int     `json:"correct_answer"`
	IsCorrect      bool    `json:"is_correct"`
	Explanation    string  `json:"explanation"`
	SelectedOption *string `json:"selected_option"`
	CorrectOption  string  `json:"correct_option"`
}

type Result struct {
	QuizID          string           `json:"quiz_id"`
	TotalQuestions  int              `json:"total_questions"`
	CorrectAnswers  int              `json:"correct_answers"`
	ScorePercentage float64          `json:"score_percentage"`
	Passed          bool             `json:"passed"`
	XPEarned        int              `json:"xp_earned"`
	Results         []QuestionResult `json:"results"`
	Feedback        string           `json:"feedback"`
}

// Evaluate grades answers, keyed by question id. Every answer counts toward the
// total, including ids the bank does not know, which produce no result row.
func (b *Bank) Evaluate(quizID string, answers map[string]any) Result {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := Result{QuizID: quizID, TotalQuestions: len(answers), Results: []QuestionResult{}}
	for _, id := range ids {
		q, ok := b.Find(id)
		if !ok {
			continue
		}
		raw := answers[id]
		idx, numeric := answerIndex(raw)

		row := QuestionResult{
			QuestionID:    id,
			Question:      q.Question,
			UserAnswer:    raw,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     numeric && idx == q.CorrectAnswer,
			Explanation:   q.Explanation,
			CorrectOption: q.CorrectOption(),
		}
		switch {
		case raw == nil:
		case !numeric:
			s := invalidAnswer
			row.SelectedOption = &s
		case idx >= 0 && idx < len(q.Options):
			s := q.Options[idx]
			row.SelectedOption = &s
		}
		if row.IsCorrect {
			res.CorrectAnswers++
		}
		res.Results = append(res.Results, row)
	}

	pct := 0.0
	if res.TotalQuestions > 0 {
		pct = float64(res.CorrectAnswers) / float64(res.TotalQuestions) * 100
	}
	res.ScorePercentage = math.Round(pct*10) / 10
	res.Passed = pct >= PassPercentage
	res.XPEarned = res.CorrectAnswers * xpPerCorrect
	if pct == 100 {
		res.XPEarned += perfectBonusXP
	}
	res.Feedback = Feedback(pct)
	return res
}

func Feedback(pct float64) string {
	switch {
	case pct == 100:
		return "Perfect! You've mastered this topic! 🎉"
	case pct >= 80:
		return "Excellent work! You have a strong understanding. 🌟"
	case pct >= PassPercentage:
		return "Good job! You passed, but there's room for improvement. 👍"
	default:
		return "Keep learning! Review the material and try again. 📚"
	}
}

// answerIndex reads an option index from a decoded JSON value. Numbers are
// truncated toward zero and numeric strings are accepted.
func answerIndex(v any) (int, bool) {
	switch a := v.(type) {
	case float64:
		return int(a), true
	case int:
		return a, true
	case json.Number:
		if i, err := a.Int64(); err == nil {
			return int(i), true
		}
		if f, err := a.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(a)); err == nil {
			return i, true
		}
	}
	return 0, false
}

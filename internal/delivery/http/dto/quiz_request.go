package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// SkillList accepts either a single skill string or an array of skills.
type SkillList []string

func (s *SkillList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = nil
		return nil
	}
	switch b[0] {
	case '"':
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = SkillList{one}
		return nil
	case '[':
		var many []string
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*s = many
		return nil
	default:
		return errors.New("skill must be a string or an array of strings")
	}
}

type GenerateQuizRequest struct {
	Skill        SkillList `json:"skill"`
	Difficulty   string    `json:"difficulty"`
	NumQuestions *int      `json:"num_questions"`
}

type EvaluateQuizRequest struct {
	QuizID  string         `json:"quiz_id"`
	Answers map[string]any `json:"answers"`
}

type QuestionCountResponse struct {
	Skill      string  `json:"skill"`
	Difficulty *string `json:"difficulty"`
	Count      int     `json:"count"`
}

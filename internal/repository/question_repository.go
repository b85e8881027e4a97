package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"path-pilot/internal/domain/quiz"
)

type QuestionRepository struct {
	path string
}

func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{path: path}
}

// LoadQuestions returns an empty bank when the file does not exist.
func (r *QuestionRepository) LoadQuestions(_ context.Context) ([]quiz.Question, error) {
	out := make([]quiz.Question, 0)
	if err := readOptionalJSON(r.path, &out); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return out, nil
}

func readOptionalJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/quiz"
)

const maxQuizQuestions = 50

// GenerateQuizParams selects the quiz. A zero NumQuestions uses the default.
type GenerateQuizParams struct {
	Skills       []string
	Difficulty   string
	NumQuestions int
}

type QuizUsecase struct {
	snaps   SnapshotProvider
	newRand func() *rand.Rand
}

func NewQuizUsecase(snaps SnapshotProvider) *QuizUsecase {
	return &QuizUsecase{
		snaps: snaps,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

func (u *QuizUsecase) Generate(_ context.Context, p GenerateQuizParams) (quiz.Quiz, error) {
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return quiz.Quiz{}, fmt.Errorf("%w: skill is required", ErrInvalidInput)
	}
	if p.NumQuestions < 0 || p.NumQuestions > maxQuizQuestions {
		return quiz.Quiz{}, fmt.Errorf("%w: num_questions must be between 1 and %d", ErrInvalidInput, maxQuizQuestions)
	}
	difficulty, err := ParseLevel(p.Difficulty)
	if err != nil {
		return quiz.Quiz{}, err
	}

	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return quiz.Quiz{}, err
	}

	qz := s.Questions.Generate(skills, difficulty, p.NumQuestions, u.newRand())
	if qz.TotalQuestions == 0 {
		return quiz.Quiz{}, fmt.Errorf("%w for %s at %s level", ErrNoQuestions, strings.Join(skills, ", "), difficulty)
	}
	return qz, nil
}

func (u *QuizUsecase) Evaluate(_ context.Context, quizID string, answers map[string]any) (quiz.Result, error) {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" || len(answers) == 0 {
		return quiz.Result{}, fmt.Errorf("%w: quiz_id and answers are required", ErrInvalidInput)
	}
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return quiz.Result{}, err
	}
	return s.Questions.Evaluate(quizID, answers), nil
}

func (u *QuizUsecase) AvailableSkills(_ context.Context) ([]string, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return nil, err
	}
	return s.Questions.AvailableSkills(), nil
}

// QuestionCount counts questions for skill. An empty difficulty counts all tiers.
func (u *QuizUsecase) QuestionCount(_ context.Context, skill, difficulty string) (int, error) {
	if strings.TrimSpace(skill) == "" {
		return 0, ErrInvalidInput
	}
	var d course.Difficulty
	if difficulty = strings.TrimSpace(difficulty); difficulty != "" {
		var err error
		if d, err = ParseLevel(difficulty); err != nil {
			return 0, err
		}
	}
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return 0, err
	}
	return s.Questions.QuestionCount(strings.TrimSpace(skill), d), nil
}

package handler

import (
	"strings"

	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/domain/quiz"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QuizHandler struct {
	uc *usecase.QuizUsecase
}

func NewQuizHandler(uc *usecase.QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

func (h *QuizHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/quiz")
	grp.Post("/generate", h.Generate)
	grp.Post("/evaluate", h.Evaluate)
	grp.Get("/skills", h.Skills)
	grp.Get("/count/:skill", h.Count)
}

func (h *QuizHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	n := quiz.DefaultQuestionCount
	if req.NumQuestions != nil {
		n = *req.NumQuestions
	}

	qz, err := h.uc.Generate(c.Context(), usecase.GenerateQuizParams{
		Skills:       req.Skill,
		Difficulty:   req.Difficulty,
		NumQuestions: n,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, qz)
}

func (h *QuizHandler) Evaluate(c fiber.Ctx) error {
	var req dto.EvaluateQuizRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Evaluate(c.Context(), req.QuizID, req.Answers)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *QuizHandler) Skills(c fiber.Ctx) error {
	skills, err := h.uc.AvailableSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{
		Skills: skills,
		Total:  len(skills),
	})
}

func (h *QuizHandler) Count(c fiber.Ctx) error {
	skill := c.Params("skill")
	difficulty := strings.TrimSpace(c.Query("difficulty"))

	n, err := h.uc.QuestionCount(c.Context(), skill, difficulty)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.QuestionCountResponse{Skill: skill, Count: n}
	if difficulty != "" {
		out.Difficulty = &difficulty
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

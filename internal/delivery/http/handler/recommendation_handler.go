package handler

import (
	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const headerCache = "X-Cache"

type RecommendationHandler struct {
	recommend *usecase.RecommendationUsecase
	skillGap  *usecase.SkillGapUsecase
}

func NewRecommendationHandler(recommend *usecase.RecommendationUsecase, skillGap *usecase.SkillGapUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommend: recommend, skillGap: skillGap}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.Recommend)
	r.Post("/skill-gap", h.SkillGap)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	out, hit, err := h.recommend.Recommend(c.Context(), usecase.RecommendParams{
		Skill:              req.Skill,
		Level:              req.Level,
		CompletedCourseIDs: req.CompletedCourseIDs,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	setCacheHeader(c, hit)
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *RecommendationHandler) SkillGap(c fiber.Ctx) error {
	var req dto.SkillGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	out, hit, err := h.skillGap.Analyze(c.Context(), req.Profile)
	if err != nil {
		return mapUsecaseError(err)
	}
	setCacheHeader(c, hit)
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func setCacheHeader(c fiber.Ctx, hit bool) {
	if hit {
		c.Set(headerCache, "HIT")
		return
	}
	c.Set(headerCache, "MISS")
}

package handler

import (
	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressHandler struct {
	uc *usecase.ProgressUsecase
}

func NewProgressHandler(uc *usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/progress")
	grp.Post("/level", h.Level)
	grp.Post("/achievements/check", h.CheckAchievements)
	grp.Get("/achievements", h.Achievements)
	grp.Post("/xp/calculate", h.CalculateXP)
	grp.Post("/leaderboard", h.Leaderboard)
}

func (h *ProgressHandler) Level(c fiber.Ctx) error {
	var req dto.LevelRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	info, err := h.uc.Level(c.Context(), req.XP)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, info)
}

func (h *ProgressHandler) CheckAchievements(c fiber.Ctx) error {
	var req dto.StatsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	unlocked, err := h.uc.CheckAchievements(c.Context(), req.UserStats)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CheckAchievementsResponse{
		NewlyUnlocked: unlocked,
		TotalUnlocked: len(unlocked),
	})
}

func (h *ProgressHandler) Achievements(c fiber.Ctx) error {
	all, err := h.uc.Achievements(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AchievementListResponse{
		Achievements: all,
		Total:        len(all),
	})
}

func (h *ProgressHandler) CalculateXP(c fiber.Ctx) error {
	var req dto.XPRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	xp, err := h.uc.XPForAction(c.Context(), req.ActionType, req.Details.Difficulty)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.XPResponse{
		ActionType: req.ActionType,
		XPEarned:   xp,
	})
}

func (h *ProgressHandler) Leaderboard(c fiber.Ctx) error {
	var req dto.StatsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	entry, err := h.uc.Leaderboard(c.Context(), req.UserStats)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entry)
}

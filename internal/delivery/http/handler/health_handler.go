package handler

import (
	"time"

	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	uc *usecase.CatalogUsecase
}

func NewHealthHandler(uc *usecase.CatalogUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	st, err := h.uc.Status(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Learning path API is running", dto.HealthResponse{
		Status:         "ok",
		CoursesLoaded:  st.Courses,
		QuestionsReady: st.Questions,
		CatalogVersion: st.Version,
		LoadedAt:       st.LoadedAt.UTC().Format(time.RFC3339),
	})
}

package handler

import (
	"time"

	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/reload", h.Reload)
}

func (h *AdminHandler) Reload(c fiber.Ctx) error {
	st, err := h.uc.Reload(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "catalog reloaded", dto.ReloadResponse{
		CatalogVersion: st.Version,
		Courses:        st.Courses,
		LoadedAt:       st.LoadedAt.UTC().Format(time.RFC3339),
	})
}

package handler

import (
	"path-pilot/internal/delivery/http/dto"
	"path-pilot/internal/pkg/response"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CourseHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCourseHandler(uc *usecase.CatalogUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.Skills)
	r.Get("/catalog/validate", h.Validate)

	grp := r.Group("/courses")
	grp.Get("/", h.List)
	grp.Get("/by-skill/:skill", h.BySkill)
	grp.Get("/:id", h.Get)
	grp.Get("/:id/dependencies", h.Dependencies)

	// singular form kept for older clients
	r.Get("/course/:id/dependencies", h.Dependencies)
}

func (h *CourseHandler) List(c fiber.Ctx) error {
	courses, err := h.uc.ListCourses(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CourseListResponse{
		Courses: courses,
		Total:   len(courses),
	})
}

func (h *CourseHandler) Get(c fiber.Ctx) error {
	found, err := h.uc.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CourseHandler) Dependencies(c fiber.Ctx) error {
	deps, err := h.uc.Dependencies(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DependenciesResponse{
		CourseID:     deps.Course.ID,
		CourseTitle:  deps.Course.Title,
		Dependencies: deps.Dependencies,
		Total:        deps.Total,
	})
}

func (h *CourseHandler) BySkill(c fiber.Ctx) error {
	skill := c.Params("skill")
	courses, err := h.uc.CoursesBySkill(c.Context(), skill)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CoursesBySkillResponse{
		Skill:   skill,
		Courses: courses,
		Total:   len(courses),
	})
}

func (h *CourseHandler) Skills(c fiber.Ctx) error {
	skills, err := h.uc.Skills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{
		Skills: skills,
		Total:  len(skills),
	})
}

func (h *CourseHandler) Validate(c fiber.Ctx) error {
	report, err := h.uc.Validate(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

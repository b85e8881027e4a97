package routes

import (
	"path-pilot/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health         *handler.HealthHandler
	Course         *handler.CourseHandler
	Recommendation *handler.RecommendationHandler
	Quiz           *handler.QuizHandler
	Progress       *handler.ProgressHandler
	Admin          *handler.AdminHandler
}

type Registry struct {
	h Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(v1)
	}
	r.h.Course.RegisterRoutes(v1)
	r.h.Recommendation.RegisterRoutes(v1)
	r.h.Quiz.RegisterRoutes(v1)
	r.h.Progress.RegisterRoutes(v1)
	r.h.Admin.RegisterRoutes(v1)
}

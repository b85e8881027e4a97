package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"path-pilot/internal/config"
	"path-pilot/internal/delivery/http/handler"
	"path-pilot/internal/delivery/http/middleware"
	"path-pilot/internal/delivery/http/routes"
	"path-pilot/internal/ws"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	WS        *http.Server
	Container *Container
}

// New builds the HTTP app over an already wired container. The websocket
// server is created only when wsAddr is set.
func New(c *Container, wsAddr string) *App {
	f := NewFiber(c.Config.App, c.Logger)

	routes.NewRegistry(routes.Handlers{
		Health:         handler.NewHealthHandler(c.Catalog),
		Course:         handler.NewCourseHandler(c.Catalog),
		Recommendation: handler.NewRecommendationHandler(c.Recommendation, c.SkillGap),
		Quiz:           handler.NewQuizHandler(c.Quiz),
		Progress:       handler.NewProgressHandler(c.Progress),
		Admin:          handler.NewAdminHandler(c.Admin),
	}).Register(f)

	a := &App{Fiber: f, Container: c}
	if wsAddr != "" {
		a.WS = ws.NewServer(wsAddr, ws.NewHandler(c.Hub, c.Logger))
	}
	return a
}

// NewFiber returns a fiber app with the global middleware installed.
func NewFiber(cfg config.AppConfig, logger *log.Logger) *fiber.App {
	f := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		UnescapePath: true,
	})
	registerGlobalMiddleware(f, logger)
	return f
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	wsAddr, err := ListenAddr(cfg.App.WSPort)
	if err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("invalid WS port: %w", err)
	}
	return New(c, wsAddr), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

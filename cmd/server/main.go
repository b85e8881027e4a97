package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"path-pilot/internal/app"
	"path-pilot/internal/config"
	"path-pilot/internal/pkg/logger"

	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	lg := logger.New(cfg.App)

	if err := run(cfg, lg); err != nil {
		lg.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, lg *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			lg.Error("cleanup error", "err", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go bootstrap.Container.Hub.Run(hubCtx)

	errCh := make(chan error, 2)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	go func() {
		lg.Info("websocket server listening", "addr", bootstrap.WS.Addr)
		if err := bootstrap.WS.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
		lg.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		lg.Error("http shutdown error", "err", err)
	}
	if err := bootstrap.WS.Shutdown(shutdownCtx); err != nil {
		lg.Error("websocket shutdown error", "err", err)
	}
	return serveErr
}

package logger

import (
	"io"
	"os"
	"time"

	"path-pilot/internal/config"

	"github.com/charmbracelet/log"
)

// New builds the process logger. Production environments log JSON; anything
// else gets the human readable text format.
func New(cfg config.AppConfig) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

func NewWithWriter(w io.Writer, cfg config.AppConfig) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	opts := log.Options{
		Prefix:          cfg.AppName,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}
	if cfg.Environment == "production" {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}

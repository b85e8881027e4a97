package seeder

import (
	"context"
	"fmt"

	"path-pilot/internal/database"

	"github.com/charmbracelet/log"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNilDB
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Info("seeder finished", "seeder", s.Name())
		}
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"path-pilot/internal/domain/progress"
)

type AchievementRepository struct {
	path string
}

func NewAchievementRepository(path string) *AchievementRepository {
	return &AchievementRepository{path: path}
}

func (r *AchievementRepository) LoadProgressConfig(_ context.Context) (progress.Config, error) {
	var cfg progress.Config
	if err := readOptionalJSON(r.path, &cfg); err != nil {
		return progress.Config{}, fmt.Errorf("load achievements: %w", err)
	}
	if cfg.Levels == nil {
		cfg.Levels = []progress.Level{}
	}
	if cfg.Achievements == nil {
		cfg.Achievements = []progress.Achievement{}
	}
	return cfg, nil
}

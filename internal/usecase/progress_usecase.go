package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/progress"
)

type ProgressUsecase struct {
	snaps SnapshotProvider
}

func NewProgressUsecase(snaps SnapshotProvider) *ProgressUsecase {
	return &ProgressUsecase{snaps: snaps}
}

func (u *ProgressUsecase) config() (*progress.Config, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return nil, err
	}
	return s.Progress, nil
}

func (u *ProgressUsecase) Level(_ context.Context, xp int) (progress.LevelInfo, error) {
	cfg, err := u.config()
	if err != nil {
		return progress.LevelInfo{}, err
	}
	info, err := cfg.Level(xp)
	if errors.Is(err, progress.ErrNegativeXP) {
		return progress.LevelInfo{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return info, err
}

func (u *ProgressUsecase) CheckAchievements(_ context.Context, stats progress.Stats) ([]progress.Unlocked, error) {
	cfg, err := u.config()
	if err != nil {
		return nil, err
	}
	return cfg.CheckAchievements(stats), nil
}

func (u *ProgressUsecase) Achievements(_ context.Context) ([]progress.Achievement, error) {
	cfg, err := u.config()
	if err != nil {
		return nil, err
	}
	if cfg == nil || cfg.Achievements == nil {
		return []progress.Achievement{}, nil
	}
	return cfg.Achievements, nil
}

// XPForAction scales the action reward by difficulty. Unknown actions earn 0
// and an unrecognised difficulty applies no multiplier.
func (u *ProgressUsecase) XPForAction(_ context.Context, action, difficulty string) (int, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return 0, fmt.Errorf("%w: action is required", ErrInvalidInput)
	}
	return progress.XPForAction(action, course.Difficulty(strings.TrimSpace(difficulty))), nil
}

func (u *ProgressUsecase) Leaderboard(_ context.Context, stats progress.Stats) (progress.LeaderboardEntry, error) {
	cfg, err := u.config()
	if err != nil {
		return progress.LeaderboardEntry{}, err
	}
	e, err := cfg.Leaderboard(stats)
	if errors.Is(err, progress.ErrNegativeXP) {
		return progress.LeaderboardEntry{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return e, err
}

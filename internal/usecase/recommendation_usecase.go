package usecase

import (
	"context"
	"fmt"
	"strings"

	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/pathing"

	"github.com/charmbracelet/log"
)

type RecommendParams struct {
	Skill              string
	Level              string
	CompletedCourseIDs []string
}

type Recommendation struct {
	Skill          string            `json:"skill"`
	Level          course.Difficulty `json:"level"`
	Path           []pathing.Step    `json:"path"`
	Stats          pathing.Stats     `json:"stats"`
	CatalogVersion string            `json:"catalog_version"`
}

type RecommendationUsecase struct {
	snaps  SnapshotProvider
	cache  ResponseCache
	logger *log.Logger
}

func NewRecommendationUsecase(snaps SnapshotProvider, cache ResponseCache, logger *log.Logger) *RecommendationUsecase {
	return &RecommendationUsecase{snaps: snaps, cache: cache, logger: logger}
}

// ParseLevel accepts an empty level as Beginner and rejects unknown tiers.
func ParseLevel(raw string) (course.Difficulty, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return course.Beginner, nil
	}
	d := course.Difficulty(raw)
	if !d.Valid() {
		return "", fmt.Errorf("%w: must be one of Beginner, Intermediate, Advanced", ErrInvalidLevel)
	}
	return d, nil
}

// Recommend builds the learning path for p. The bool reports a cache hit.
func (u *RecommendationUsecase) Recommend(ctx context.Context, p RecommendParams) (Recommendation, bool, error) {
	skill := strings.TrimSpace(p.Skill)
	if skill == "" {
		return Recommendation{}, false, fmt.Errorf("%w: skill is required", ErrInvalidInput)
	}
	level, err := ParseLevel(p.Level)
	if err != nil {
		return Recommendation{}, false, err
	}
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return Recommendation{}, false, err
	}

	key := RecommendCacheKey(s.Version, skill, level, p.CompletedCourseIDs)
	if u.cache != nil {
		var cached Recommendation
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			cached.Skill = skill
			return cached, true, nil
		}
	}

	path := pathing.Build(s.Catalog, pathing.Request{
		TargetSkill: skill,
		Level:       level,
		Completed:   p.CompletedCourseIDs,
	})
	stats, err := pathing.ComputeStats(path)
	if err != nil {
		return Recommendation{}, false, fmt.Errorf("%w: %w", ErrMalformedCourseData, err)
	}

	out := Recommendation{
		Skill:          skill,
		Level:          level,
		Path:           path,
		Stats:          stats,
		CatalogVersion: s.Version,
	}
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil && u.logger != nil {
			u.logger.Debug("cache set failed", "key", key, "err", err)
		}
	}
	return out, false, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"path-pilot/internal/domain/skillgap"
	"path-pilot/internal/search"

	"github.com/charmbracelet/log"
)

type SkillGapReport struct {
	Gaps                 []skillgap.Gap  `json:"gaps"`
	MentionedSkills      []string        `json:"mentioned_skills"`
	Coverage             float64         `json:"coverage"`
	TotalSkillsAvailable int             `json:"total_skills_available"`
	DetectedGoal         *string         `json:"detected_goal"`
	Roadmap              *search.Roadmap `json:"roadmap"`
	CatalogVersion       string          `json:"catalog_version"`
}

type SkillGapUsecase struct {
	snaps  SnapshotProvider
	cache  ResponseCache
	logger *log.Logger
}

func NewSkillGapUsecase(snaps SnapshotProvider, cache ResponseCache, logger *log.Logger) *SkillGapUsecase {
	return &SkillGapUsecase{snaps: snaps, cache: cache, logger: logger}
}

func (u *SkillGapUsecase) Analyze(ctx context.Context, profile string) (SkillGapReport, bool, error) {
	if strings.TrimSpace(profile) == "" {
		return SkillGapReport{}, false, fmt.Errorf("%w: profile text is required", ErrInvalidInput)
	}
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return SkillGapReport{}, false, err
	}

	key := SkillGapCacheKey(s.Version, profile)
	if u.cache != nil {
		var cached SkillGapReport
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	a := s.Analyzer.Analyze(s.Catalog, profile)
	out := SkillGapReport{
		Gaps:                 a.Gaps,
		MentionedSkills:      s.Matcher.MentionedSkills(s.Catalog, profile),
		Coverage:             s.Matcher.Coverage(s.Catalog, profile),
		TotalSkillsAvailable: len(s.Catalog.SkillKeys()),
		Roadmap:              a.Roadmap,
		CatalogVersion:       s.Version,
	}
	if a.DetectedGoal != "" {
		goal := a.DetectedGoal
		out.DetectedGoal = &goal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil && u.logger != nil {
			u.logger.Debug("cache set failed", "key", key, "err", err)
		}
	}
	return out, false, nil
}

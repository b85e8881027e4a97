package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"
)

const cacheKeyPrefix = "pathpilot:"

type recommendCacheKeyInput struct {
	Skill     string   `json:"skill"`
	Level     string   `json:"level"`
	Completed []string `json:"completed"`
}

func hashKey(v any) string {
	b, _ := json.Marshal(v)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// RecommendCacheKey identifies a recommendation for one catalog version. The
// skill is folded with catalog.SkillKey, the form the path builder matches on.
// Completed ids are order-insensitive.
func RecommendCacheKey(version, skill string, level course.Difficulty, completed []string) string {
	ids := make([]string, 0, len(completed))
	for _, id := range completed {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	in := recommendCacheKeyInput{
		Skill:     catalog.SkillKey(skill),
		Level:     string(level),
		Completed: ids,
	}
	return cacheKeyPrefix + "recommend:" + version + ":" + hashKey(in)
}

// SkillGapCacheKey identifies a profile analysis for one catalog version. The
// profile is only lowercased; whitespace and punctuation affect matching.
func SkillGapCacheKey(version, profile string) string {
	return cacheKeyPrefix + "skillgap:" + version + ":" + hashKey(strings.ToLower(profile))
}

package dto

import (
	"path-pilot/internal/domain/progress"
)

type LevelRequest struct {
	XP int `json:"xp"`
}

type StatsRequest struct {
	UserStats progress.Stats `json:"user_stats"`
}

type CheckAchievementsResponse struct {
	NewlyUnlocked []progress.Unlocked `json:"newly_unlocked"`
	TotalUnlocked int                 `json:"total_unlocked"`
}

type AchievementListResponse struct {
	Achievements []progress.Achievement `json:"achievements"`
	Total        int                    `json:"total"`
}

type XPRequest struct {
	ActionType string `json:"action_type"`
	Details    struct {
		Difficulty string `json:"difficulty"`
	} `json:"details"`
}

type XPResponse struct {
	ActionType string `json:"action_type"`
	XPEarned   int    `json:"xp_earned"`
}

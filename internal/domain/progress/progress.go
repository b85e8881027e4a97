// Package progress computes levels, achievements and XP rewards from
// client-reported learner statistics.
package progress

import (
	"errors"
	"slices"

	"path-pilot/internal/domain/course"
)

const (
	XPPerLevel   = 100
	DefaultTitle = "Master"
	anonymous    = "Anonymous"
)

var ErrNegativeXP = errors.New("xp must not be negative")

type Level struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

type Condition struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	Condition   Condition `json:"condition"`
}

// Unlocked is an achievement without its unlock condition.
type Unlocked struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// Config is the level and achievement table, loaded once per snapshot.
type Config struct {
	Levels       []Level       `json:"levels"`
	Achievements []Achievement `json:"achievements"`
}

// Stats are the learner counters reported by the client.
type Stats struct {
	Username             string   `json:"username"`
	TotalXP              int      `json:"total_xp"`
	CoursesCompleted     int      `json:"courses_completed"`
	QuizzesPassed        int      `json:"quizzes_passed"`
	QuizzesAttempted     int      `json:"quizzes_attempted"`
	PerfectQuizzes       int      `json:"perfect_quizzes"`
	StreakDays           int      `json:"streak_days"`
	UniqueSkills         int      `json:"unique_skills"`
	PathsGenerated       int      `json:"paths_generated"`
	EarlyCompletions     int      `json:"early_completions"`
	LateCompletions      int      `json:"late_completions"`
	UnlockedAchievements []string `json:"unlocked_achievements"`
}

type LevelInfo struct {
	CurrentLevel      int    `json:"current_level"`
	CurrentTitle      string `json:"current_title"`
	CurrentXP         int    `json:"current_xp"`
	XPForCurrentLevel int    `json:"xp_for_current_level"`
	XPForNextLevel    int    `json:"xp_for_next_level"`
	XPProgress        int    `json:"xp_progress"`
	XPNeeded          int    `json:"xp_needed"`
}

// Level maps xp to a level, one level per XPPerLevel. The title is the one
// defined for that level, else the last defined level below it.
func (c *Config) Level(xp int) (LevelInfo, error) {
	if xp < 0 {
		return LevelInfo{}, ErrNegativeXP
	}
	lvl := xp/XPPerLevel + 1
	info := LevelInfo{
		CurrentLevel:      lvl,
		CurrentTitle:      DefaultTitle,
		CurrentXP:         xp,
		XPForCurrentLevel: (lvl - 1) * XPPerLevel,
		XPForNextLevel:    lvl * XPPerLevel,
	}
	info.XPProgress = xp - info.XPForCurrentLevel
	info.XPNeeded = info.XPForNextLevel - xp

	if c != nil {
		for _, l := range c.Levels {
			if l.Level == lvl {
				info.CurrentTitle = l.Title
				break
			}
			if l.Level < lvl {
				info.CurrentTitle = l.Title
			}
		}
	}
	return info, nil
}

// CheckAchievements returns the achievements s newly satisfies, in table order.
func (c *Config) CheckAchievements(s Stats) []Unlocked {
	out := []Unlocked{}
	if c == nil {
		return out
	}
	for _, a := range c.Achievements {
		if slices.Contains(s.UnlockedAchievements, a.ID) {
			continue
		}
		got, known := s.counter(a.Condition.Type)
		if !known || got < a.Condition.Value {
			continue
		}
		out = append(out, Unlocked{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Points:      a.Points,
		})
	}
	return out
}

func (s Stats) counter(conditionType string) (int, bool) {
	switch conditionType {
	case "courses_completed":
		return s.CoursesCompleted, true
	case "quizzes_passed":
		return s.QuizzesPassed, true
	case "quizzes_attempted":
		return s.QuizzesAttempted, true
	case "perfect_quiz":
		return s.PerfectQuizzes, true
	case "streak_days":
		return s.StreakDays, true
	case "unique_skills":
		return s.UniqueSkills, true
	case "paths_generated":
		return s.PathsGenerated, true
	case "early_completion":
		return s.EarlyCompletions, true
	case "late_completion":
		return s.LateCompletions, true
	}
	return 0, false
}

var baseXP = map[string]int{
	"course_complete": 50,
	"quiz_pass":       30,
	"quiz_perfect":    100,
	"path_generate":   10,
	"daily_login":     5,
	"streak_bonus":    20,
	"course_enroll":   10,
	"new_high_score":  20,
}

// XPForAction returns the reward for action, scaled x1.5 for Intermediate and
// x2 for Advanced. Unknown actions earn nothing.
func XPForAction(action string, difficulty course.Difficulty) int {
	xp := baseXP[action]
	switch difficulty {
	case course.Intermediate:
		return xp * 3 / 2
	case course.Advanced:
		return xp * 2
	}
	return xp
}

// Actions lists the rewarded action names, sorted.
func Actions() []string {
	out := make([]string, 0, len(baseXP))
	for k := range baseXP {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

type LeaderboardEntry struct {
	Username             string `json:"username"`
	Level                int    `json:"level"`
	Title                string `json:"title"`
	TotalXP              int    `json:"total_xp"`
	CoursesCompleted     int    `json:"courses_completed"`
	QuizzesPassed        int    `json:"quizzes_passed"`
	AchievementsUnlocked int    `json:"achievements_unlocked"`
	StreakDays           int    `json:"streak_days"`
}

func (c *Config) Leaderboard(s Stats) (LeaderboardEntry, error) {
	info, err := c.Level(s.TotalXP)
	if err != nil {
		return LeaderboardEntry{}, err
	}
	name := s.Username
	if name == "" {
		name = anonymous
	}
	return LeaderboardEntry{
		Username:             name,
		Level:                info.CurrentLevel,
		Title:                info.CurrentTitle,
		TotalXP:              s.TotalXP,
		CoursesCompleted:     s.CoursesCompleted,
		QuizzesPassed:        s.QuizzesPassed,
		AchievementsUnlocked: len(s.UnlockedAchievements),
		StreakDays:           s.StreakDays,
	}, nil
}

package pathing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"path-pilot/internal/domain/course"
)

type ParseError struct {
	CourseID string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse time %q for course %s: %v", e.Value, e.CourseID, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type Stats struct {
	TotalCourses     int                 `json:"total_courses"`
	TotalTime        string              `json:"total_time"`
	DifficultyLevels []course.Difficulty `json:"difficulty_levels"`
	// AverageDifficulty is the tier at index len/2, not a mean.
	AverageDifficulty course.Difficulty `json:"average_difficulty,omitempty"`
}

var ErrInvalidHours = errors.New("hours must be a non-negative integer")

// ParseHours reads a "<N>h" duration.
func ParseHours(s string) (int, error) {
	v := strings.TrimSpace(strings.ReplaceAll(s, "h", ""))
	if v == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidHours)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHours, n)
	}
	return n, nil
}

// ComputeStats totals the hours of path and samples its middle difficulty.
// A malformed time on any step fails the whole computation with *ParseError.
func ComputeStats(path []Step) (Stats, error) {
	st := Stats{TotalTime: "0h", DifficultyLevels: []course.Difficulty{}}
	if len(path) == 0 {
		return st, nil
	}

	total := 0
	for _, s := range path {
		h, err := ParseHours(s.Time)
		if err != nil {
			return Stats{}, &ParseError{CourseID: s.ID, Value: s.Time, Err: err}
		}
		total += h

		d := s.Difficulty
		if strings.TrimSpace(string(d)) == "" {
			d = course.Beginner
		}
		st.DifficultyLevels = append(st.DifficultyLevels, d)
	}

	st.TotalCourses = len(path)
	st.TotalTime = strconv.Itoa(total) + "h"
	st.AverageDifficulty = st.DifficultyLevels[len(st.DifficultyLevels)/2]
	return st, nil
}

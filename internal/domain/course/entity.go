package course

import "strings"

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

const DefaultURL = "#"

// Rank orders difficulty tiers. Unknown values rank as Beginner.
func (d Difficulty) Rank() int {
	switch d {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 0
	}
}

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	default:
		return false
	}
}

// ParseLevel maps a user supplied level to a tier, falling back to Beginner.
func ParseLevel(s string) Difficulty {
	d := Difficulty(strings.TrimSpace(s))
	if d.Valid() {
		return d
	}
	return Beginner
}

func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced}
}

type Course struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Difficulty    Difficulty `json:"difficulty"`
	Time          string     `json:"time"`
	Skills        []string   `json:"skills"`
	Prerequisites []string   `json:"prerequisites"`
	URL           string     `json:"url,omitempty"`
}

// DifficultyOrDefault returns the declared tier, or Beginner when unset.
func (c Course) DifficultyOrDefault() Difficulty {
	if strings.TrimSpace(string(c.Difficulty)) == "" {
		return Beginner
	}
	return c.Difficulty
}

func (c Course) HasSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	for _, s := range c.Skills {
		if strings.EqualFold(strings.TrimSpace(s), skill) {
			return true
		}
	}
	return false
}

// Summary is the short projection used for gap examples.
type Summary struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
}

func (c Course) Summary() Summary {
	return Summary{ID: c.ID, Title: c.Title, Difficulty: c.DifficultyOrDefault()}
}

package search

import "strings"

// Roadmap is a career goal: keywords that trigger it and the skills it requires.
type Roadmap struct {
	Name           string   `json:"name" yaml:"name"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	RequiredSkills []string `json:"required_skills" yaml:"required_skills"`
}

// DetectGoal returns the first roadmap, in the given order, with a keyword
// occurring in text as a case-insensitive substring.
func DetectGoal(text string, roadmaps []Roadmap) (Roadmap, bool) {
	text = strings.ToLower(text)
	if strings.TrimSpace(text) == "" {
		return Roadmap{}, false
	}
	for _, r := range roadmaps {
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.Contains(text, kw) {
				return r, true
			}
		}
	}
	return Roadmap{}, false
}

package search

import (
	"strings"
	"unicode"
)

// NormalizeTerm lowercases s, collapses whitespace runs to one space and drops
// punctuation other than the symbols that carry meaning in skill names
// ("c++", "c#", "node.js", "ci/cd", "scikit-learn").
func NormalizeTerm(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || isSkillSymbol(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if unicode.IsSpace(r) {
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
			continue
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isSkillSymbol(r rune) bool {
	switch r {
	case '+', '#', '.', '/', '-', '_':
		return true
	}
	return false
}

package search

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"path-pilot/internal/domain/catalog"
)

// A term matches when it is not glued to other word characters. '+' and '#'
// count as word characters so "c" never matches inside "c++" or "c#".
const (
	boundaryBefore = `(?:^|[^\p{L}\p{N}_+#])`
	boundaryAfter  = `(?:[^\p{L}\p{N}_+#]|$)`
)

var spaceRun = regexp.MustCompile(`\s+`)

// Matcher detects whole-word skill mentions in free text, including any alias
// whose canonical form is the skill. Safe for concurrent use.
type Matcher struct {
	aliases  map[string][]string
	patterns sync.Map
}

func NewMatcher(aliases AliasTable) *Matcher {
	return &Matcher{aliases: aliases.Index()}
}

// Aliases returns the aliases known for skill.
func (m *Matcher) Aliases(skill string) []string {
	return append([]string(nil), m.aliases[NormalizeTerm(skill)]...)
}

// IsMentioned matches the skill name as written, punctuation included, and
// then its aliases.
func (m *Matcher) IsMentioned(skill, text string) bool {
	term := strings.Join(strings.Fields(catalog.SkillKey(skill)), " ")
	if term == "" || strings.TrimSpace(text) == "" {
		return false
	}
	text = strings.ToLower(text)

	if m.pattern(term).MatchString(text) {
		return true
	}
	for _, alias := range m.aliases[NormalizeTerm(skill)] {
		if m.pattern(alias).MatchString(text) {
			return true
		}
	}
	return false
}

// MentionedSkills returns the display names of catalog skills mentioned in text,
// in catalog first-encounter order.
func (m *Matcher) MentionedSkills(cat *catalog.Catalog, text string) []string {
	out := []string{}
	for _, key := range cat.SkillKeys() {
		if m.IsMentioned(key, text) {
			out = append(out, cat.DisplayName(key))
		}
	}
	return out
}

// Coverage is the percentage of distinct catalog skills mentioned in text,
// rounded to two decimals.
func (m *Matcher) Coverage(cat *catalog.Catalog, text string) float64 {
	keys := cat.SkillKeys()
	if len(keys) == 0 {
		return 0
	}
	n := 0
	for _, key := range keys {
		if m.IsMentioned(key, text) {
			n++
		}
	}
	return math.Round(float64(n)/float64(len(keys))*100*100) / 100
}

func (m *Matcher) pattern(term string) *regexp.Regexp {
	if re, ok := m.patterns.Load(term); ok {
		return re.(*regexp.Regexp)
	}
	quoted := spaceRun.ReplaceAllString(regexp.QuoteMeta(term), `\s+`)
	re := regexp.MustCompile(boundaryBefore + quoted + boundaryAfter)
	actual, _ := m.patterns.LoadOrStore(term, re)
	return actual.(*regexp.Regexp)
}

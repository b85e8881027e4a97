package search

import (
	"sync"
	"testing"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *catalog.Catalog {
	return catalog.New([]course.Course{
		{ID: "c1", Title: "Intro", Skills: []string{"Python", "Java"}},
		{ID: "c2", Title: "Web", Skills: []string{"JavaScript", "Node.js"}},
		{ID: "c3", Title: "ML", Skills: []string{"Machine Learning", "python"}},
		{ID: "c4", Title: "Systems", Skills: []string{"C++", "Go"}},
	})
}

func TestIsMentioned_WordBoundary(t *testing.T) {
	m := NewMatcher(DefaultAliases)

	assert.False(t, m.IsMentioned("Java", "I love javascript"))
	assert.True(t, m.IsMentioned("Java", "I code in Java daily"))
	assert.True(t, m.IsMentioned("java", "JAVA"))
	assert.False(t, m.IsMentioned("Go", "going to the gym"))
	assert.True(t, m.IsMentioned("Go", "services in go, mostly"))
	assert.False(t, m.IsMentioned("C", "five years of c++"))
	assert.True(t, m.IsMentioned("C++", "five years of c++ and rust"))
}

func TestIsMentioned_MultiWordSkill(t *testing.T) {
	m := NewMatcher(DefaultAliases)

	assert.True(t, m.IsMentioned("Machine Learning", "some machine\n learning at work"))
	assert.False(t, m.IsMentioned("Machine Learning", "machinelearning"))
}

func TestIsMentioned_Aliases(t *testing.T) {
	m := NewMatcher(DefaultAliases)

	assert.True(t, m.IsMentioned("JavaScript", "frontend work in JS and css"))
	assert.True(t, m.IsMentioned("Go", "backend in Golang"))
	assert.True(t, m.IsMentioned("Machine Learning", "applied ML engineer"))
	assert.False(t, m.IsMentioned("Machine Learning", "html and xml"))
	assert.False(t, m.IsMentioned("Python", "I like JS"))
}

func TestIsMentioned_PunctuatedSkillNames(t *testing.T) {
	m := NewMatcher(DefaultAliases)

	assert.True(t, m.IsMentioned("R&D", "I have years of R&D experience"))
	assert.True(t, m.IsMentioned("C (Programming)", "firmware written in C (programming) daily"))
	assert.True(t, m.IsMentioned("Q&A Testing", "led q&a   testing for a mobile team"))
	assert.True(t, m.IsMentioned("Node.js", "apis on node.js"))
	assert.False(t, m.IsMentioned("R&D", "r and d"))
	assert.False(t, m.IsMentioned("Q&A Testing", "qa testing"))
}

func TestCoverage_PunctuatedSkills(t *testing.T) {
	m := NewMatcher(nil)
	cat := catalog.New([]course.Course{
		{ID: "a", Skills: []string{"R&D"}},
		{ID: "b", Skills: []string{"Q&A Testing"}},
	})

	assert.Equal(t, []string{"R&D"}, m.MentionedSkills(cat, "Ran R&D projects"))
	assert.Equal(t, 100.0, m.Coverage(cat, "R&D plus Q&A testing"))
}

func TestIsMentioned_EmptyInputs(t *testing.T) {
	m := NewMatcher(nil)
	assert.False(t, m.IsMentioned("", "anything"))
	assert.False(t, m.IsMentioned("Python", ""))
	assert.False(t, m.IsMentioned("Python", "   "))
}

func TestIsMentioned_Concurrent(t *testing.T) {
	m := NewMatcher(DefaultAliases)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, m.IsMentioned("Kubernetes", "ops with k8s"))
		}()
	}
	wg.Wait()
}

func TestMentionedSkills(t *testing.T) {
	m := NewMatcher(DefaultAliases)
	got := m.MentionedSkills(sampleCatalog(), "Python and nodejs, some Go")
	assert.Equal(t, []string{"Python", "Node.js", "Go"}, got)

	assert.Empty(t, m.MentionedSkills(sampleCatalog(), ""))
	assert.NotNil(t, m.MentionedSkills(catalog.New(nil), "python"))
}

func TestCoverage(t *testing.T) {
	m := NewMatcher(DefaultAliases)
	cat := sampleCatalog()

	assert.Equal(t, 0.0, m.Coverage(cat, ""))
	assert.Equal(t, 0.0, m.Coverage(catalog.New(nil), "python"))

	// 7 distinct skills, "python" counted once.
	assert.Equal(t, 14.29, m.Coverage(cat, "python python PYTHON"))
	assert.Equal(t, 28.57, m.Coverage(cat, "python and java"))
	assert.Equal(t, 100.0, m.Coverage(cat, "python java javascript node.js machine learning c++ go"))
}

func TestAliasTable(t *testing.T) {
	tbl := DefaultAliases.WithOverrides(map[string]string{
		" PySpark ": "Spark",
		"":          "Nothing",
		"blank":     " ",
	})

	canon, ok := tbl.Canonical("pyspark")
	require.True(t, ok)
	assert.Equal(t, "Spark", canon)

	_, ok = tbl.Canonical("blank")
	assert.False(t, ok)

	_, ok = DefaultAliases.Canonical("pyspark")
	assert.False(t, ok, "overrides must not mutate the defaults")

	m := NewMatcher(tbl)
	assert.Equal(t, []string{"node", "nodejs"}, m.Aliases("node.js"))
	assert.True(t, m.IsMentioned("Spark", "batch jobs in pyspark"))
}

func TestNormalizeTerm(t *testing.T) {
	assert.Equal(t, "node.js", NormalizeTerm("  Node.js "))
	assert.Equal(t, "machine learning", NormalizeTerm("Machine \t Learning"))
	assert.Equal(t, "c++", NormalizeTerm("C++!"))
	assert.Equal(t, "", NormalizeTerm("   "))
}

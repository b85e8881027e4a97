package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"path-pilot/internal/database"
	"path-pilot/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestJSONCourseRepository(t *testing.T) {
	p := writeFile(t, "courses.json", `[
		{"id":"c1","title":"Python Basics","difficulty":"Beginner","time":"4h","skills":["Python"],"prerequisites":[],"url":"https://x/c1"},
		{"id":"c2","title":"Data Science","difficulty":"Intermediate","time":"6h","skills":["Data Science"],"prerequisites":["c1"]}
	]`)

	got, err := NewJSONCourseRepository(p).LoadCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, course.Intermediate, got[1].Difficulty)
	assert.Equal(t, []string{"c1"}, got[1].Prerequisites)
	assert.Empty(t, got[1].URL)
}

func TestJSONCourseRepository_Errors(t *testing.T) {
	_, err := NewJSONCourseRepository(filepath.Join(t.TempDir(), "nope.json")).LoadCourses(context.Background())
	assert.Error(t, err)

	_, err = NewJSONCourseRepository(writeFile(t, "bad.json", `{"id":`)).LoadCourses(context.Background())
	assert.ErrorContains(t, err, "decode courses")
}

func TestPostgresCourseRepository_NilDB(t *testing.T) {
	var db database.DB
	_, err := NewPostgresCourseRepository(db).LoadCourses(context.Background())
	assert.ErrorIs(t, err, database.ErrNilDB)
}

func TestQuestionRepository(t *testing.T) {
	p := writeFile(t, "questions.json", `[{"id":"q1","skill":"Python","difficulty":"Beginner","question":"?","options":["a","b"],"correctAnswer":1,"explanation":"e"}]`)
	qs, err := NewQuestionRepository(p).LoadQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 1, qs[0].CorrectAnswer)

	qs, err = NewQuestionRepository(filepath.Join(t.TempDir(), "missing.json")).LoadQuestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestAchievementRepository(t *testing.T) {
	p := writeFile(t, "achievements.json", `{"levels":[{"level":1,"title":"Novice"}],
		"achievements":[{"id":"a","name":"A","description":"d","icon":"*","points":5,"condition":{"type":"courses_completed","value":1}}]}`)
	cfg, err := NewAchievementRepository(p).LoadProgressConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Novice", cfg.Levels[0].Title)
	assert.Equal(t, "courses_completed", cfg.Achievements[0].Condition.Type)

	cfg, err = NewAchievementRepository(filepath.Join(t.TempDir(), "x.json")).LoadProgressConfig(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cfg.Levels)
	assert.NotNil(t, cfg.Achievements)
}

func TestRoadmapRepository(t *testing.T) {
	p := writeFile(t, "roadmaps.yaml", `
roadmaps:
  - name: " Data Scientist "
    keywords: [data scientist, machine learning engineer]
    required_skills: [Python, SQL]
  - name: Web Developer
    keywords: [web developer]
    required_skills: [JavaScript]
aliases:
  pyspark: Spark
`)
	cfg, err := NewRoadmapRepository(p).LoadRoadmaps(context.Background())
	require.NoError(t, err)
	require.Len(t, cfg.Roadmaps, 2)
	assert.Equal(t, "Data Scientist", cfg.Roadmaps[0].Name)
	assert.Equal(t, "Web Developer", cfg.Roadmaps[1].Name)
	assert.Equal(t, []string{"Python", "SQL"}, cfg.Roadmaps[0].RequiredSkills)
	assert.Equal(t, "Spark", cfg.Aliases["pyspark"])
}

func TestRoadmapRepository_Errors(t *testing.T) {
	p := writeFile(t, "dup.yaml", "roadmaps:\n  - name: A\n  - name: a\n")
	_, err := NewRoadmapRepository(p).LoadRoadmaps(context.Background())
	assert.ErrorContains(t, err, "duplicate roadmap")

	p = writeFile(t, "noname.yaml", "roadmaps:\n  - keywords: [x]\n")
	_, err = NewRoadmapRepository(p).LoadRoadmaps(context.Background())
	assert.ErrorContains(t, err, "has no name")

	cfg, err := NewRoadmapRepository(filepath.Join(t.TempDir(), "none.yaml")).LoadRoadmaps(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.Roadmaps)
}

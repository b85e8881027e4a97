package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"path-pilot/internal/delivery/http/handler"
	"path-pilot/internal/delivery/http/middleware"
	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/progress"
	"path-pilot/internal/domain/quiz"
	"path-pilot/internal/repository"
	"path-pilot/internal/search"
	"path-pilot/internal/snapshot"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSnapshots struct{ s *snapshot.Snapshot }

func (p staticSnapshots) Current() *snapshot.Snapshot { return p.s }

type fakeReloader struct {
	s   *snapshot.Snapshot
	err error
}

func (r fakeReloader) Reload(context.Context) (*snapshot.Snapshot, error) { return r.s, r.err }

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testSnapshot() *snapshot.Snapshot {
	courses := []course.Course{
		{ID: "py1", Title: "Python Basics", Difficulty: course.Beginner, Time: "3h", Skills: []string{"Python"}},
		{ID: "py2", Title: "Python for Data", Difficulty: course.Intermediate, Time: "5h", Skills: []string{"Python", "Data Analysis"}, Prerequisites: []string{"py1"}},
		{ID: "ml1", Title: "Machine Learning", Difficulty: course.Advanced, Time: "10h", Skills: []string{"Machine Learning", "Python"}, Prerequisites: []string{"py2"}},
	}
	questions := []quiz.Question{
		{ID: "q1", Skill: "Python", Difficulty: course.Beginner, Question: "len([1,2])?", Options: []string{"2", "1"}, CorrectAnswer: 0},
		{ID: "q2", Skill: "Python", Difficulty: course.Beginner, Question: "type(1)?", Options: []string{"str", "int"}, CorrectAnswer: 1},
		{ID: "q3", Skill: "Python", Difficulty: course.Intermediate, Question: "yield?", Options: []string{"generator", "list"}, CorrectAnswer: 0},
	}
	prog := progress.Config{
		Levels: []progress.Level{{Level: 1, Title: "Novice"}, {Level: 3, Title: "Explorer"}},
		Achievements: []progress.Achievement{
			{ID: "first_step", Name: "First Step", Points: 10, Condition: progress.Condition{Type: "courses_completed", Value: 1}},
			{ID: "quiz_master", Name: "Quiz Master", Points: 50, Condition: progress.Condition{Type: "quizzes_passed", Value: 10}},
		},
	}
	roadmaps := repository.RoadmapConfig{Roadmaps: []search.Roadmap{
		{Name: "Data Scientist", Keywords: []string{"data scientist"}, RequiredSkills: []string{"Python", "Machine Learning"}},
	}}
	return snapshot.Build(courses, questions, prog, roadmaps)
}

func newTestApp(snap *snapshot.Snapshot, reloader usecase.Reloader) *fiber.App {
	snaps := staticSnapshots{s: snap}
	catalogUC := usecase.NewCatalogUsecase(snaps)

	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	NewRegistry(Handlers{
		Health:         handler.NewHealthHandler(catalogUC),
		Course:         handler.NewCourseHandler(catalogUC),
		Recommendation: handler.NewRecommendationHandler(usecase.NewRecommendationUsecase(snaps, nil, nil), usecase.NewSkillGapUsecase(snaps, nil, nil)),
		Quiz:           handler.NewQuizHandler(usecase.NewQuizUsecase(snaps)),
		Progress:       handler.NewProgressHandler(usecase.NewProgressUsecase(snaps)),
		Admin:          handler.NewAdminHandler(usecase.NewAdminUsecase(reloader)),
	}).Register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rdr = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rdr = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp, env
}

func decode(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestHealth(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	for _, path := range []string{"/health", "/api/v1/health"} {
		resp, env := do(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

		var data struct {
			Status        string `json:"status"`
			CoursesLoaded int    `json:"courses_loaded"`
		}
		decode(t, env, &data)
		assert.Equal(t, "ok", data.Status)
		assert.Equal(t, 3, data.CoursesLoaded)
	}
}

func TestCourses(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Courses []course.Course `json:"courses"`
		Total   int             `json:"total"`
	}
	decode(t, env, &list)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "py1", list.Courses[0].ID)

	resp, env = do(t, app, http.MethodGet, "/api/v1/courses/py2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var one course.Course
	decode(t, env, &one)
	assert.Equal(t, "Python for Data", one.Title)

	resp, env = do(t, app, http.MethodGet, "/api/v1/courses/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found", env.Message)
}

func TestCourseDependencies(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	for _, path := range []string{"/api/v1/courses/ml1/dependencies", "/api/v1/course/ml1/dependencies"} {
		resp, env := do(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var deps struct {
			CourseID     string          `json:"course_id"`
			CourseTitle  string          `json:"course_title"`
			Dependencies []course.Course `json:"dependencies"`
			Total        int             `json:"total"`
		}
		decode(t, env, &deps)
		assert.Equal(t, "ml1", deps.CourseID)
		assert.Equal(t, 2, deps.Total)
		require.Len(t, deps.Dependencies, 2)
	}
}

func TestCoursesBySkillAndSkills(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/courses/by-skill/python", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var by struct {
		Skill string `json:"skill"`
		Total int    `json:"total"`
	}
	decode(t, env, &by)
	assert.Equal(t, "python", by.Skill)
	assert.Equal(t, 3, by.Total)

	resp, env = do(t, app, http.MethodGet, "/api/v1/skills", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var skills struct {
		Skills []string `json:"skills"`
		Total  int      `json:"total"`
	}
	decode(t, env, &skills)
	assert.Equal(t, 3, skills.Total)
	assert.Contains(t, skills.Skills, "Machine Learning")
}

func TestRecommend(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodPost, "/api/v1/recommend", map[string]any{"skill": "Python", "level": "Intermediate"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	var rec usecase.Recommendation
	decode(t, env, &rec)
	require.Len(t, rec.Path, 2)
	assert.Equal(t, "py1", rec.Path[0].ID)
	assert.Equal(t, "py2", rec.Path[1].ID)
	assert.Equal(t, "8h", rec.Stats.TotalTime)
	assert.NotEmpty(t, rec.CatalogVersion)
}

func TestRecommend_BadRequests(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/recommend", map[string]any{"skill": "Python", "level": "Expert"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/recommend", map[string]any{"skill": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/recommend", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSkillGap(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodPost, "/api/v1/skill-gap", map[string]any{
		"profile": "i know python and want to become a data scientist",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep usecase.SkillGapReport
	decode(t, env, &rep)
	assert.Equal(t, []string{"Python"}, rep.MentionedSkills)
	require.NotNil(t, rep.DetectedGoal)
	assert.Equal(t, "Data Scientist", *rep.DetectedGoal)
	assert.Equal(t, 3, rep.TotalSkillsAvailable)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/skill-gap", map[string]any{"profile": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuizFlow(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodPost, "/api/v1/quiz/generate", map[string]any{"skill": "Python", "num_questions": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var qz quiz.Quiz
	decode(t, env, &qz)
	assert.Equal(t, 2, qz.TotalQuestions)
	assert.NotEmpty(t, qz.QuizID)

	resp, env = do(t, app, http.MethodPost, "/api/v1/quiz/generate", map[string]any{"skill": []string{"Python"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, env, &qz)
	assert.Equal(t, 3, qz.TotalQuestions)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/quiz/generate", map[string]any{"skill": "Cobol"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/quiz/generate", map[string]any{"skill": 42})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = do(t, app, http.MethodPost, "/api/v1/quiz/evaluate", map[string]any{
		"quiz_id": qz.QuizID,
		"answers": map[string]any{"q1": 0, "q2": 0},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res quiz.Result
	decode(t, env, &res)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, 1, res.CorrectAnswers)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/quiz/evaluate", map[string]any{"quiz_id": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuizSkillsAndCount(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/quiz/skills", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var skills struct {
		Skills []string `json:"skills"`
	}
	decode(t, env, &skills)
	assert.Equal(t, []string{"Python"}, skills.Skills)

	resp, env = do(t, app, http.MethodGet, "/api/v1/quiz/count/Python?difficulty=Beginner", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count struct {
		Count      int     `json:"count"`
		Difficulty *string `json:"difficulty"`
	}
	decode(t, env, &count)
	assert.Equal(t, 2, count.Count)
	require.NotNil(t, count.Difficulty)

	resp, env = do(t, app, http.MethodGet, "/api/v1/quiz/count/Python", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	count.Difficulty = nil
	decode(t, env, &count)
	assert.Equal(t, 3, count.Count)
	assert.Nil(t, count.Difficulty)
}

func TestProgress(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodPost, "/api/v1/progress/level", map[string]any{"xp": 250})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info progress.LevelInfo
	decode(t, env, &info)
	assert.Equal(t, 3, info.CurrentLevel)
	assert.Equal(t, "Explorer", info.CurrentTitle)

	resp, _ = do(t, app, http.MethodPost, "/api/v1/progress/level", map[string]any{"xp": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = do(t, app, http.MethodPost, "/api/v1/progress/achievements/check", map[string]any{
		"user_stats": map[string]any{"courses_completed": 2},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var check struct {
		NewlyUnlocked []progress.Unlocked `json:"newly_unlocked"`
		TotalUnlocked int                 `json:"total_unlocked"`
	}
	decode(t, env, &check)
	assert.Equal(t, 1, check.TotalUnlocked)
	assert.Equal(t, "first_step", check.NewlyUnlocked[0].ID)

	resp, env = do(t, app, http.MethodGet, "/api/v1/progress/achievements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all struct {
		Total int `json:"total"`
	}
	decode(t, env, &all)
	assert.Equal(t, 2, all.Total)

	resp, env = do(t, app, http.MethodPost, "/api/v1/progress/xp/calculate", map[string]any{
		"action_type": "course_complete",
		"details":     map[string]any{"difficulty": "Advanced"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var xp struct {
		XPEarned int `json:"xp_earned"`
	}
	decode(t, env, &xp)
	assert.Equal(t, 100, xp.XPEarned)

	resp, env = do(t, app, http.MethodPost, "/api/v1/progress/leaderboard", map[string]any{
		"user_stats": map[string]any{"total_xp": 120},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entry progress.LeaderboardEntry
	decode(t, env, &entry)
	assert.Equal(t, "Anonymous", entry.Username)
	assert.Equal(t, 2, entry.Level)
}

func TestCatalogValidate(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/catalog/validate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep struct {
		Courses int `json:"courses"`
	}
	decode(t, env, &rep)
	assert.Equal(t, 3, rep.Courses)
}

func TestAdminReload(t *testing.T) {
	snap := testSnapshot()

	app := newTestApp(snap, fakeReloader{s: snap})
	resp, env := do(t, app, http.MethodPost, "/api/v1/admin/reload", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		CatalogVersion string `json:"catalog_version"`
		Courses        int    `json:"courses"`
	}
	decode(t, env, &out)
	assert.Equal(t, snap.Version, out.CatalogVersion)
	assert.Equal(t, 3, out.Courses)

	app = newTestApp(snap, fakeReloader{err: errors.New("disk gone")})
	resp, env = do(t, app, http.MethodPost, "/api/v1/admin/reload", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.NotContains(t, env.Message, "disk gone")
}

func TestCatalogNotLoaded(t *testing.T) {
	app := newTestApp(nil, nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/courses", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Catalog not loaded", env.Message)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(testSnapshot(), nil)

	resp, env := do(t, app, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

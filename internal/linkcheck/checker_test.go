package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"path-pilot/internal/config"
	"path-pilot/internal/domain/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_ReportsBrokenLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	courses := []course.Course{
		{ID: "c1", URL: srv.URL + "/ok"},
		{ID: "c2", URL: srv.URL + "/missing"},
		{ID: "c3", URL: "#"},
		{ID: "c4"},
		{ID: "c5", URL: "mailto:someone@example.com"},
	}

	chk := NewChecker(config.LinkCheckConfig{Workers: 2, RatePerSecond: 0, Timeout: 2 * time.Second}, nil)
	rep, err := chk.Check(context.Background(), courses)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Checked)
	assert.Equal(t, 3, rep.Skipped)
	assert.False(t, rep.OK())
	require.Len(t, rep.Broken, 1)
	assert.Equal(t, "c2", rep.Broken[0].CourseID)
	assert.Equal(t, http.StatusNotFound, rep.Broken[0].StatusCode)

	require.Len(t, rep.Results, 5)
	assert.Equal(t, StatusOK, rep.Results[0].Status)
	assert.Equal(t, StatusSkipped, rep.Results[2].Status)
}

func TestChecker_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chk := NewChecker(config.LinkCheckConfig{Workers: 1}, nil)
	_, err := chk.Check(ctx, []course.Course{{ID: "c1", URL: "http://127.0.0.1:1/x"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckable(t *testing.T) {
	assert.True(t, checkable("https://example.com/course"))
	assert.False(t, checkable(""))
	assert.False(t, checkable("#"))
	assert.False(t, checkable("ftp://example.com"))
	assert.False(t, checkable("/relative/path"))
}

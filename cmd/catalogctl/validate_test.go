package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCourses(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(body), 0o600))
	return dir
}

func runValidate(t *testing.T, dir string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("COURSES_FILE", "courses.json")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"validate", "--data-dir", dir})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidate_CleanCatalog(t *testing.T) {
	dir := writeCourses(t, `[
		{"id":"a","title":"A","difficulty":"Beginner","time":"2h","skills":["Go"],"prerequisites":[]},
		{"id":"b","title":"B","difficulty":"Intermediate","time":"3h","skills":["Go"],"prerequisites":["a"]}
	]`)

	out, err := runValidate(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "courses=2")
}

func TestValidate_CycleFails(t *testing.T) {
	dir := writeCourses(t, `[
		{"id":"a","title":"A","time":"2h","skills":["Go"],"prerequisites":["b"]},
		{"id":"b","title":"B","time":"3h","skills":["Go"],"prerequisites":["a"]}
	]`)

	_, err := runValidate(t, dir)
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := runValidate(t, t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, errCheckFailed)
}

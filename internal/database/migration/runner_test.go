package migration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "V2__add_index.sql", "CREATE INDEX x ON courses (position);")
	write(t, dir, "V1__create_courses.sql", "\nCREATE TABLE courses (id TEXT);\n")
	write(t, dir, "README.md", "ignored")

	migs, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create_courses", migs[0].Name)
	assert.Equal(t, "CREATE TABLE courses (id TEXT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "V1__empty.sql", "   ")
	_, err := Load(dir)
	assert.Error(t, err)

	dir = t.TempDir()
	write(t, dir, "V1__a.sql", "SELECT 1;")
	write(t, dir, "V01__b.sql", "SELECT 2;")
	_, err = Load(dir)
	assert.ErrorContains(t, err, "duplicate migration version")

	migs, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, err)
	assert.Empty(t, migs)
}

func TestPending(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "a", Checksum: "aa"},
		{Version: 2, Name: "b", Checksum: "bb"},
	}

	pending, err := Pending(migs, map[int64]string{1: "aa"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].Version)

	_, err = Pending(migs, map[int64]string{1: "changed"})
	assert.True(t, errors.Is(err, ErrChecksumMismatch))
}

func TestRun_NilDB(t *testing.T) {
	_, err := Runner{Dir: t.TempDir()}.Run(t.Context(), nil)
	assert.Error(t, err)
}

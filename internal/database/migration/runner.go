package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"path-pilot/internal/database"

	"github.com/charmbracelet/log"
)

// lockKey serializes concurrent catalogctl migrate runs.
const lockKey int64 = 5_713_220_418

var ErrChecksumMismatch = errors.New("migration checksum mismatch")

type Runner struct {
	Dir    string
	Logger *log.Logger
}

// Run applies pending migrations in version order and returns the ones it applied.
func (r Runner) Run(ctx context.Context, db *sql.DB) ([]Migration, error) {
	if db == nil {
		return nil, database.ErrNilDB
	}

	dir, err := resolveDir(r.Dir)
	if err != nil {
		return nil, err
	}

	migs, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if len(migs) == 0 {
		r.logf("no migrations found", "dir", dir)
		return nil, nil
	}

	if err := ensureSchemaMigrations(ctx, db); err != nil {
		return nil, err
	}

	if err := advisoryLock(ctx, db, lockKey); err != nil {
		return nil, err
	}
	defer func() {
		_ = advisoryUnlock(context.Background(), db, lockKey)
	}()

	applied, err := getApplied(ctx, db)
	if err != nil {
		return nil, err
	}

	pending, err := Pending(migs, applied)
	if err != nil {
		return nil, err
	}
	for _, m := range pending {
		if err := applyOne(ctx, db, m); err != nil {
			return nil, err
		}
		r.logf("migration applied", "version", m.Version, "name", m.Name)
	}
	return pending, nil
}

// Pending returns the migrations not yet applied. An applied migration whose
// file content changed fails with ErrChecksumMismatch.
func Pending(migs []Migration, applied map[int64]string) ([]Migration, error) {
	out := make([]Migration, 0, len(migs))
	for _, m := range migs {
		sum, ok := applied[m.Version]
		if !ok {
			out = append(out, m)
			continue
		}
		if sum != m.Checksum {
			return nil, fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
		}
	}
	return out, nil
}

func (r Runner) logf(msg string, kv ...any) {
	if r.Logger != nil {
		r.Logger.Info(msg, kv...)
	}
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

func resolveDir(dir string) (string, error) {
	if strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "migrations"), nil
}

// Load reads V<version>__<name>.sql files from dir, sorted by version.
func Load(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	migs := make([]Migration, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		m := fileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version: %s", name)
		}

		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		sqlText := strings.TrimSpace(string(b))
		if sqlText == "" {
			return nil, fmt.Errorf("empty migration file: %s", name)
		}

		h := sha256.Sum256([]byte(sqlText))
		migs = append(migs, Migration{
			Version:  v,
			Name:     m[2],
			Filename: name,
			SQL:      sqlText,
			Checksum: hex.EncodeToString(h[:]),
		})
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d", migs[i].Version)
		}
	}

	return migs, nil
}

func ensureSchemaMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func advisoryLock(ctx context.Context, db *sql.DB, key int64) error {
	_, err := db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, key)
	return err
}

func advisoryUnlock(ctx context.Context, db *sql.DB, key int64) error {
	_, err := db.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, key)
	return err
}

func getApplied(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var v int64
		var c string
		if err := rows.Scan(&v, &c); err != nil {
			return nil, err
		}
		out[v] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func applyOne(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}

	appliedAt := time.Now().UTC()
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
		m.Version,
		m.Name,
		m.Checksum,
		appliedAt,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

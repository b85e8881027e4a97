package postgres

import (
	"context"
	"errors"
	"testing"

	"path-pilot/internal/config"
	"path-pilot/internal/database"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{DBHost: "db", DBName: "catalog", DBUser: "pilot", DBPassword: "secret"})
	assert.Equal(t, "postgres://pilot:secret@db:5432/catalog?sslmode=disable", dsn)

	dsn = DSN(config.DatabaseConfig{DBHost: "db", DBPort: "6543", DBName: "c", DBUser: "u", DBSSLMode: "require"})
	assert.Equal(t, "postgres://u:@db:6543/c?sslmode=require", dsn)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.True(t, errors.Is(p.Ping(ctx), database.ErrNilDB))
	_, err := p.Exec(ctx, "SELECT 1")
	assert.True(t, errors.Is(err, database.ErrNilDB))
	assert.True(t, errors.Is(p.QueryRow(ctx, "SELECT 1").Scan(), database.ErrNilDB))
	assert.NoError(t, p.Close())
}

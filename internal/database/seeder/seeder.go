// Package seeder loads reference data into Postgres for CATALOG_SOURCE=postgres.
package seeder

import (
	"context"

	"path-pilot/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

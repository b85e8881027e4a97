package main

import (
	"context"
	"time"

	"path-pilot/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := migration.Runner{Dir: dir, Logger: lg}.Run(ctx, db.SQLDB())
		if err != nil {
			return err
		}
		lg.Info("migrations complete", "applied", len(applied))
		return nil
	},
}

func init() {
	migrateCmd.Flags().String("dir", "migrations", "Directory holding V<version>__<name>.sql files")
}

package main

import (
	"context"
	"time"

	"path-pilot/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the JSON course catalog into Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		courses, err := loadCourses(ctx, true)
		if err != nil {
			return err
		}

		db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		r := seeder.Runner{
			Seeders: []seeder.Seeder{seeder.CoursesSeeder{Courses: courses}},
			Logger:  lg,
		}
		if err := r.Run(ctx, db); err != nil {
			return err
		}
		lg.Info("catalog seeded", "courses", len(courses))
		return nil
	},
}

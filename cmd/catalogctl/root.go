package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"path-pilot/internal/config"
	"path-pilot/internal/database"
	dbpostgres "path-pilot/internal/database/postgres"
	"path-pilot/internal/domain/course"
	"path-pilot/internal/pkg/logger"
	"path-pilot/internal/repository"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// errCheckFailed marks a command that ran but found problems. Its report has
// already been printed.
var errCheckFailed = errors.New("check failed")

var (
	cfg config.Config
	lg  *log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Manage the learning path course catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if p, _ := cmd.Flags().GetString("config"); p != "" {
			if err := os.Setenv("CONFIG_FILE", p); err != nil {
				return err
			}
		}
		if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
			if err := os.Setenv("DATA_DIR", d); err != nil {
				return err
			}
		}

		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		lg = logger.New(cfg.App)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (overrides DATA_DIR)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(linkcheckCmd)
}

func connect(ctx context.Context) (database.DB, error) {
	if !cfg.Database.Configured() {
		return nil, fmt.Errorf("database is not configured: set DB_HOST, DB_NAME and DB_USER")
	}
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(connectCtx, cfg.Database)
}

// loadCourses reads the catalog from the configured source, or from the JSON
// file when fromFile is set.
func loadCourses(ctx context.Context, fromFile bool) ([]course.Course, error) {
	if fromFile || cfg.Data.CatalogSource != config.CatalogSourcePostgres {
		return repository.NewJSONCourseRepository(cfg.Data.Path(cfg.Data.CoursesFile)).LoadCourses(ctx)
	}

	db, err := connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return repository.NewPostgresCourseRepository(db).LoadCourses(ctx)
}

package app

import (
	"context"
	"errors"
	"time"

	"path-pilot/internal/config"
	"path-pilot/internal/database"
	dbpostgres "path-pilot/internal/database/postgres"
	"path-pilot/internal/infrastructure/cache"
	"path-pilot/internal/repository"
	"path-pilot/internal/snapshot"
	"path-pilot/internal/usecase"
	"path-pilot/internal/ws"

	"github.com/charmbracelet/log"
)

// Container owns the long lived dependencies of the server process.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Store  *snapshot.Store
	Hub    *ws.Hub

	Catalog        *usecase.CatalogUsecase
	Recommendation *usecase.RecommendationUsecase
	SkillGap       *usecase.SkillGapUsecase
	Quiz           *usecase.QuizUsecase
	Progress       *usecase.ProgressUsecase
	Admin          *usecase.AdminUsecase
}

// NewContainer wires the stores and use cases and loads the first snapshot.
// A failed initial load is fatal.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	courses, err := c.courseSource(ctx)
	if err != nil {
		return nil, err
	}

	c.Store = snapshot.NewStore(snapshot.Sources{
		Courses:      courses,
		Questions:    repository.NewQuestionRepository(cfg.Data.Path(cfg.Data.QuestionsFile)),
		Achievements: repository.NewAchievementRepository(cfg.Data.Path(cfg.Data.AchievementsFile)),
		Roadmaps:     repository.NewRoadmapRepository(cfg.Data.Path(cfg.Data.RoadmapsFile)),
	}, logger)

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
	c.Hub = ws.NewHub(logger)

	c.Store.OnReload(ws.ReloadListener(c.Hub))
	c.Store.OnReload(func(ctx context.Context, _ *snapshot.Snapshot) {
		if err := c.Cache.Purge(ctx); err != nil {
			logger.Warn("cache purge failed", "err", err)
		}
	})

	c.Catalog = usecase.NewCatalogUsecase(c.Store)
	c.Recommendation = usecase.NewRecommendationUsecase(c.Store, c.Cache, logger)
	c.SkillGap = usecase.NewSkillGapUsecase(c.Store, c.Cache, logger)
	c.Quiz = usecase.NewQuizUsecase(c.Store)
	c.Progress = usecase.NewProgressUsecase(c.Store)
	c.Admin = usecase.NewAdminUsecase(c.Store)

	if _, err := c.Store.Reload(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) courseSource(ctx context.Context) (repository.CourseSource, error) {
	if c.Config.Data.CatalogSource != config.CatalogSourcePostgres {
		return repository.NewJSONCourseRepository(c.Config.Data.Path(c.Config.Data.CoursesFile)), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
	if err != nil {
		return nil, err
	}
	c.DB = db
	return repository.NewPostgresCourseRepository(db), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

// Package snapshot holds the immutable catalog state served to requests and
// swaps it atomically on reload.
package snapshot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/pathing"
	"path-pilot/internal/domain/progress"
	"path-pilot/internal/domain/quiz"
	"path-pilot/internal/domain/skillgap"
	"path-pilot/internal/repository"
	"path-pilot/internal/search"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

var ErrNotLoaded = errors.New("snapshot not loaded")

type Snapshot struct {
	// Version is a content hash of the catalog and goal configuration.
	Version  string
	LoadedAt time.Time

	Catalog   *catalog.Catalog
	Report    catalog.Report
	Matcher   *search.Matcher
	Analyzer  *skillgap.Analyzer
	Roadmaps  []search.Roadmap
	Questions *quiz.Bank
	Progress  *progress.Config
}

type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]quiz.Question, error)
}

type ProgressSource interface {
	LoadProgressConfig(ctx context.Context) (progress.Config, error)
}

type RoadmapSource interface {
	LoadRoadmaps(ctx context.Context) (repository.RoadmapConfig, error)
}

type Sources struct {
	Courses      repository.CourseSource
	Questions    QuestionSource
	Achievements ProgressSource
	Roadmaps     RoadmapSource
}

// Listener runs after a successful swap.
type Listener func(ctx context.Context, s *Snapshot)

type Store struct {
	sources Sources
	logger  *log.Logger

	cur atomic.Pointer[Snapshot]

	reloadMu  sync.Mutex
	mu        sync.RWMutex
	listeners []Listener
}

func NewStore(sources Sources, logger *log.Logger) *Store {
	return &Store{sources: sources, logger: logger}
}

// Current returns the live snapshot, or nil before the first Reload.
func (s *Store) Current() *Snapshot {
	return s.cur.Load()
}

func (s *Store) OnReload(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Reload loads every source concurrently and swaps in the new snapshot. On
// failure the previous snapshot stays live.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	if s.sources.Courses == nil {
		return nil, errors.New("no course source configured")
	}

	var (
		courses   []course.Course
		questions []quiz.Question
		prog      progress.Config
		roadmaps  repository.RoadmapConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.sources.Courses.LoadCourses(gctx)
		return err
	})
	if s.sources.Questions != nil {
		g.Go(func() error {
			var err error
			questions, err = s.sources.Questions.LoadQuestions(gctx)
			return err
		})
	}
	if s.sources.Achievements != nil {
		g.Go(func() error {
			var err error
			prog, err = s.sources.Achievements.LoadProgressConfig(gctx)
			return err
		})
	}
	if s.sources.Roadmaps != nil {
		g.Go(func() error {
			var err error
			roadmaps, err = s.sources.Roadmaps.LoadRoadmaps(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if s.logger != nil {
			s.logger.Error("catalog reload failed, keeping previous snapshot", "err", err)
		}
		return nil, fmt.Errorf("reload snapshot: %w", err)
	}

	snap := Build(courses, questions, prog, roadmaps)
	s.cur.Store(snap)

	if s.logger != nil {
		s.logger.Info("catalog loaded",
			"version", snap.Version,
			"courses", snap.Catalog.Len(),
			"skills", len(snap.Catalog.SkillKeys()),
			"questions", snap.Questions.Len(),
			"roadmaps", len(snap.Roadmaps),
		)
		if !snap.Report.OK() {
			s.logger.Warn("catalog validation found problems", "report", snap.Report.String())
		}
	}

	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(ctx, snap)
	}
	return snap, nil
}

// Build assembles a snapshot from already loaded data.
func Build(courses []course.Course, questions []quiz.Question, prog progress.Config, roadmaps repository.RoadmapConfig) *Snapshot {
	cat := catalog.New(courses)
	matcher := search.NewMatcher(search.DefaultAliases.WithOverrides(roadmaps.Aliases))
	rms := roadmaps.Roadmaps
	if rms == nil {
		rms = []search.Roadmap{}
	}

	return &Snapshot{
		Version:   version(courses, roadmaps),
		LoadedAt:  time.Now().UTC(),
		Catalog:   cat,
		Report:    cat.Validate(pathing.ParseHours),
		Matcher:   matcher,
		Analyzer:  skillgap.NewAnalyzer(matcher, rms),
		Roadmaps:  rms,
		Questions: quiz.NewBank(questions),
		Progress:  &prog,
	}
}

func version(courses []course.Course, roadmaps repository.RoadmapConfig) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(courses)
	_ = enc.Encode(roadmaps)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

package usecase

import (
	"errors"
	"fmt"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/snapshot"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidLevel        = errors.New("invalid level")
	ErrCourseNotFound      = catalog.ErrCourseNotFound
	ErrNoQuestions         = errors.New("no quiz questions available")
	ErrCatalogUnavailable  = errors.New("catalog not loaded")
	ErrMalformedCourseData = errors.New("malformed course data")
)

// SnapshotProvider exposes the live catalog snapshot.
type SnapshotProvider interface {
	Current() *snapshot.Snapshot
}

func currentSnapshot(p SnapshotProvider) (*snapshot.Snapshot, error) {
	if p == nil {
		return nil, ErrCatalogUnavailable
	}
	s := p.Current()
	if s == nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, snapshot.ErrNotLoaded)
	}
	return s, nil
}

package usecase

import (
	"context"
	"fmt"

	"path-pilot/internal/snapshot"
)

// Reloader rebuilds the catalog snapshot from its sources.
type Reloader interface {
	Reload(ctx context.Context) (*snapshot.Snapshot, error)
}

type AdminUsecase struct {
	reloader Reloader
}

func NewAdminUsecase(reloader Reloader) *AdminUsecase {
	return &AdminUsecase{reloader: reloader}
}

// Reload swaps in a freshly loaded snapshot. A failed reload leaves the
// previous snapshot serving and is reported as ErrCatalogUnavailable.
func (u *AdminUsecase) Reload(ctx context.Context) (CatalogStatus, error) {
	if u.reloader == nil {
		return CatalogStatus{}, ErrCatalogUnavailable
	}
	s, err := u.reloader.Reload(ctx)
	if err != nil {
		return CatalogStatus{}, fmt.Errorf("%w: reload: %w", ErrCatalogUnavailable, err)
	}
	return CatalogStatus{
		Version:   s.Version,
		LoadedAt:  s.LoadedAt,
		Courses:   s.Catalog.Len(),
		Skills:    len(s.Catalog.SkillKeys()),
		Questions: s.Questions.Len(),
	}, nil
}

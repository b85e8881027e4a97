package usecase

import (
	"context"
	"strings"
	"time"

	"path-pilot/internal/domain/catalog"
	"path-pilot/internal/domain/course"
)

type CourseDependencies struct {
	Course       course.Course
	Dependencies []course.Course
	// Total counts every resolved prerequisite id, including ids missing from the catalog.
	Total int
}

type CatalogStatus struct {
	Version   string
	LoadedAt  time.Time
	Courses   int
	Skills    int
	Questions int
}

type CatalogUsecase struct {
	snaps SnapshotProvider
}

func NewCatalogUsecase(snaps SnapshotProvider) *CatalogUsecase {
	return &CatalogUsecase{snaps: snaps}
}

func (u *CatalogUsecase) Status(_ context.Context) (CatalogStatus, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return CatalogStatus{}, err
	}
	return CatalogStatus{
		Version:   s.Version,
		LoadedAt:  s.LoadedAt,
		Courses:   s.Catalog.Len(),
		Skills:    len(s.Catalog.SkillKeys()),
		Questions: s.Questions.Len(),
	}, nil
}

func (u *CatalogUsecase) ListCourses(_ context.Context) ([]course.Course, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return nil, err
	}
	return s.Catalog.Courses(), nil
}

func (u *CatalogUsecase) GetCourse(_ context.Context, id string) (course.Course, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return course.Course{}, err
	}
	c, ok := s.Catalog.Find(strings.TrimSpace(id))
	if !ok {
		return course.Course{}, ErrCourseNotFound
	}
	return c, nil
}

func (u *CatalogUsecase) Dependencies(_ context.Context, id string) (CourseDependencies, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return CourseDependencies{}, err
	}
	id = strings.TrimSpace(id)
	c, ok := s.Catalog.Find(id)
	if !ok {
		return CourseDependencies{}, ErrCourseNotFound
	}
	return CourseDependencies{
		Course:       c,
		Dependencies: s.Catalog.DependencyCourses(id),
		Total:        len(s.Catalog.Dependencies(id)),
	}, nil
}

func (u *CatalogUsecase) CoursesBySkill(_ context.Context, skill string) ([]course.Course, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(skill) == "" {
		return nil, ErrInvalidInput
	}
	return s.Catalog.BySkill(skill), nil
}

func (u *CatalogUsecase) Skills(_ context.Context) ([]string, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return nil, err
	}
	return s.Catalog.Skills(), nil
}

func (u *CatalogUsecase) Validate(_ context.Context) (catalog.Report, error) {
	s, err := currentSnapshot(u.snaps)
	if err != nil {
		return catalog.Report{}, err
	}
	return s.Report, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"path-pilot/internal/search"

	"gopkg.in/yaml.v3"
)

// RoadmapConfig is the goal table, kept in file order, plus alias overrides
// layered over search.DefaultAliases.
type RoadmapConfig struct {
	Roadmaps []search.Roadmap  `yaml:"roadmaps"`
	Aliases  map[string]string `yaml:"aliases"`
}

type RoadmapRepository struct {
	path string
}

func NewRoadmapRepository(path string) *RoadmapRepository {
	return &RoadmapRepository{path: path}
}

func (r *RoadmapRepository) LoadRoadmaps(_ context.Context) (RoadmapConfig, error) {
	cfg := RoadmapConfig{Roadmaps: []search.Roadmap{}, Aliases: map[string]string{}}

	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return RoadmapConfig{}, fmt.Errorf("load roadmaps: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RoadmapConfig{}, fmt.Errorf("decode roadmaps %s: %w", r.path, err)
	}

	seen := make(map[string]struct{}, len(cfg.Roadmaps))
	for i, rm := range cfg.Roadmaps {
		name := strings.TrimSpace(rm.Name)
		if name == "" {
			return RoadmapConfig{}, fmt.Errorf("decode roadmaps %s: roadmap %d has no name", r.path, i)
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			return RoadmapConfig{}, fmt.Errorf("decode roadmaps %s: duplicate roadmap %q", r.path, name)
		}
		seen[strings.ToLower(name)] = struct{}{}
		cfg.Roadmaps[i].Name = name
	}
	if cfg.Roadmaps == nil {
		cfg.Roadmaps = []search.Roadmap{}
	}
	return cfg, nil
}

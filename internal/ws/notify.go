package ws

import (
	"context"
	"encoding/json"
	"time"

	"path-pilot/internal/snapshot"
)

const EventCatalogReloaded = "catalog_reloaded"

type CatalogReloadedEvent struct {
	Type      string `json:"type"`
	Version   string `json:"version"`
	Courses   int    `json:"courses"`
	Timestamp string `json:"timestamp"`
}

func NotifyCatalogReloaded(h *Hub, version string, courses int) {
	if h == nil {
		return
	}
	b, err := json.Marshal(CatalogReloadedEvent{
		Type:      EventCatalogReloaded,
		Version:   version,
		Courses:   courses,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}

// ReloadListener adapts the hub to snapshot reload notifications.
func ReloadListener(h *Hub) snapshot.Listener {
	return func(_ context.Context, s *snapshot.Snapshot) {
		if s == nil {
			return
		}
		NotifyCatalogReloaded(h, s.Version, s.Catalog.Len())
	}
}

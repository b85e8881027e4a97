package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"path-pilot/internal/domain/course"
	"path-pilot/internal/domain/progress"
	"path-pilot/internal/repository"
	"path-pilot/internal/snapshot"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastsCatalogReloaded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewServer("", NewHandler(hub, nil)).Handler)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	snap := snapshot.Build(
		[]course.Course{{ID: "c1", Title: "Intro", Skills: []string{"Python"}, Time: "2h"}},
		nil, progress.Config{}, repository.RoadmapConfig{},
	)
	ReloadListener(hub)(ctx, snap)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt CatalogReloadedEvent
	require.NoError(t, json.Unmarshal(msg, &evt))
	assert.Equal(t, EventCatalogReloaded, evt.Type)
	assert.Equal(t, snap.Version, evt.Version)
	assert.Equal(t, 1, evt.Courses)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(NewServer("", NewHandler(hub, nil)).Handler)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestNilHubIsSafe(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	NotifyCatalogReloaded(h, "v", 0)
	assert.Equal(t, 0, h.ClientCount())
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshd/internal/api"
	"freshd/internal/config"
)

// mockUpdater implements api.UpdaterHandler.
type mockUpdater struct {
	mu         sync.Mutex
	status     api.UpdateStatus
	checkCalls int
	events     chan api.PhaseEvent
}

func (m *mockUpdater) GetStatus() api.UpdateStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *mockUpdater) CheckForUpdate(ctx context.Context) api.UpdateStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkCalls++
	return m.status
}

func (m *mockUpdater) SubscribePhases() (<-chan api.PhaseEvent, func()) {
	return m.events, func() {}
}

// mockDiscovery implements api.DiscoveryHandler.
type mockDiscovery struct {
	features []string
}

func (m *mockDiscovery) DiscoverFeatures(ctx context.Context) []string {
	return m.features
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(config.ServerConfig{Host: "localhost", Port: 0})
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleUpdateStatus(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)

	updater := &mockUpdater{status: api.UpdateStatus{
		CurrentVersion: "2.0.0-alpha.90",
		LatestVersion:  "2.0.0-alpha.90",
		NewFeatures:    []string{"swarm"},
	}}
	api.RegisterUpdater(updater)

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/update-status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var status api.UpdateStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "2.0.0-alpha.90", status.CurrentVersion)
	assert.Equal(t, 0, updater.checkCalls, "status read must not trigger a cycle")
}

func TestHandleCheckUpdate(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)

	updater := &mockUpdater{status: api.UpdateStatus{CurrentVersion: "1.0.0"}}
	api.RegisterUpdater(updater)

	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/check-update", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, updater.checkCalls)
}

func TestHandleCheckUpdate_MethodNotAllowed(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)
	api.RegisterUpdater(&mockUpdater{})

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/check-update")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleFeatures(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)
	api.RegisterDiscovery(&mockDiscovery{features: []string{"swarm", "agent", "neural"}})

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/features")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body featuresResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"swarm", "agent", "neural"}, body.Features)
}

func TestHandlersWithoutRegisteredHandlers(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)

	ts := newTestServer(t)

	for _, path := range []string{"/api/update-status", "/api/features"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestHandleHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleEvents_StreamsPhases(t *testing.T) {
	api.ResetForTest()
	t.Cleanup(api.ResetForTest)

	events := make(chan api.PhaseEvent, 4)
	updater := &mockUpdater{
		status: api.UpdateStatus{CurrentVersion: "1.0.0"},
		events: events,
	}
	api.RegisterUpdater(updater)

	ts := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/events"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// First frame is the current status.
	var status api.UpdateStatus
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, "1.0.0", status.CurrentVersion)

	// Published phases arrive as subsequent frames.
	events <- api.PhaseEvent{Phase: api.PhaseChecking, CycleID: "c1"}

	var event api.PhaseEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, api.PhaseChecking, event.Phase)
	assert.Equal(t, "c1", event.CycleID)
}

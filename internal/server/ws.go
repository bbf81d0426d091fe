package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"freshd/internal/api"
	"freshd/pkg/logging"
)

// upgrader configures the WebSocket handshake for the event stream.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // status stream carries no secrets and has no auth layer
	},
}

// wsWriteTimeout bounds a single frame write to a slow client.
const wsWriteTimeout = 10 * time.Second

// handleEvents upgrades the connection and streams phase-transition events
// until the client disconnects. Each client gets its own subscription; the
// unsubscribe runs on disconnect so repeated reconnects cannot leak
// listeners.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	updater := api.GetUpdater()
	if updater == nil {
		writeError(w, http.StatusServiceUnavailable, "updater not initialized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Server", "WebSocket upgrade failed: %v", err)
		return
	}

	events, unsubscribe := updater.SubscribePhases()
	logging.Debug("Server", "Event stream client connected from %s", r.RemoteAddr)

	// Reader goroutine: we expect no client messages, but reading is what
	// detects disconnects and control frames.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		unsubscribe()
		conn.Close()
		logging.Debug("Server", "Event stream client disconnected from %s", r.RemoteAddr)
	}()

	// Send the current status first so clients need no separate fetch.
	if err := writeFrame(conn, updater.GetStatus()); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeFrame(conn, event); err != nil {
				return
			}
		}
	}
}

func writeFrame(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(v)
}

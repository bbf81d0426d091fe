package server

import (
	"encoding/json"
	"net/http"

	"freshd/internal/api"
	"freshd/pkg/logging"
)

// errorResponse is the JSON body for non-2xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// featuresResponse is the JSON body for /api/features.
type featuresResponse struct {
	Features []string `json:"features"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Warn("Server", "Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleUpdateStatus returns the current status. It never triggers a cycle.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	updater := api.GetUpdater()
	if updater == nil {
		writeError(w, http.StatusServiceUnavailable, "updater not initialized")
		return
	}
	writeJSON(w, http.StatusOK, updater.GetStatus())
}

// handleCheckUpdate runs one reconciliation cycle and returns the resulting
// status. If a cycle is already in flight the unchanged current status is
// returned; the request is dropped, not deferred.
func (s *Server) handleCheckUpdate(w http.ResponseWriter, r *http.Request) {
	updater := api.GetUpdater()
	if updater == nil {
		writeError(w, http.StatusServiceUnavailable, "updater not initialized")
		return
	}
	writeJSON(w, http.StatusOK, updater.CheckForUpdate(r.Context()))
}

// handleFeatures runs capability discovery independently of the main cycle.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	discovery := api.GetDiscovery()
	if discovery == nil {
		writeError(w, http.StatusServiceUnavailable, "discovery not initialized")
		return
	}
	writeJSON(w, http.StatusOK, featuresResponse{Features: discovery.DiscoverFeatures(r.Context())})
}

// handleHealthz is a liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

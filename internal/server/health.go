package server

import "net/http"

// HealthResponse reports process liveness and the live session count. With
// all state in memory there are no backing services to probe.
type HealthResponse struct {
	Status       string `json:"status"`
	LiveSessions int    `json:"liveSessions"`
}

func handleHealth(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:       "ok",
			LiveSessions: registry.Count(),
		})
	}
}

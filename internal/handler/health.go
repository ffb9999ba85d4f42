package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pattarin-dev/webboard/internal/api"
)

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Ready reports whether the server can actually serve requests,
// 503 when the database is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, api.MessageResponse{Message: "database unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "ok"})
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pattarin-dev/webboard/internal/logger"
	"github.com/pattarin-dev/webboard/internal/service"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	thread service.ThreadService
	health HealthChecker
}

func New(auth service.AuthService, thread service.ThreadService, health HealthChecker) *Handler {
	return &Handler{auth: auth, thread: thread, health: health}
}

// writeJSON marshals before touching the ResponseWriter so an encoding
// failure can still produce a clean 500.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

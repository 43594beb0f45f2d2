package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker reports whether an optional dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ready is a readiness probe endpoint. It returns 503 when the session
// snapshot store is configured but unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.HealthChecker == nil {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
		return
	}

	// Use a short timeout for health checks
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.HealthChecker.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("session store unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

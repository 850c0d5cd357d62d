package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-casino-backend/internal/logger"
)

// DatabasePinger reports database connectivity.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger reports Redis connectivity.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse reports component connectivity
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status, ok or unavailable
	// default: ok
	Status string `json:"status"`

	// Database connectivity
	// default: ok
	Database string `json:"database"`

	// Cache connectivity
	// default: ok
	Cache string `json:"cache"`
}

// NewHealthHandler returns a probe that checks Postgres and Redis.
// Connectivity failures answer 503 so they are distinguishable from
// business errors.
// @Summary Health probe
// @Description Check database and cache connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "All components reachable"
// @Failure 503 {object} handlers.HealthResponse "A component is unreachable"
// @Router /health [get]
func NewHealthHandler(db DatabasePinger, cache CachePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("database health check failed", "error", err)
			resp.Status = "unavailable"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		}

		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				logger.Log.Errorw("cache health check failed", "error", err)
				resp.Status = "unavailable"
				resp.Cache = "unreachable"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, resp)
	}
}

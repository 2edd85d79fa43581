package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats is the connection-pool snapshot included in health responses.
type PoolStats struct {
	TotalConns    int32  `json:"total_conns"`
	IdleConns     int32  `json:"idle_conns"`
	AcquiredConns int32  `json:"acquired_conns"`
	MaxConns      int32  `json:"max_conns"`
	AcquireCount  int64  `json:"acquire_count"`
	AcquireWait   string `json:"acquire_wait"`
}

// GetPoolStats snapshots the pool counters.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
		AcquireCount:  stat.AcquireCount(),
		AcquireWait:   stat.AcquireDuration().String(),
	}
}

// buildHealth assembles the health response from a pool snapshot and the
// outcome of a ping. Separated from the handler so the response shape is
// testable without a live database.
func buildHealth(stats *PoolStats, pingErr error) (int, echo.Map) {
	if pingErr != nil {
		return http.StatusServiceUnavailable, echo.Map{
			"status":   "unavailable",
			"error":    pingErr.Error(),
			"database": stats,
		}
	}
	return http.StatusOK, echo.Map{
		"status":   "ok",
		"database": stats,
	}
}

// HealthHandler reports service liveness and pool state. An unreachable
// database returns 503 so orchestration restarts the service instead of
// routing report requests into it.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		code, body := buildHealth(GetPoolStats(pool), pool.Ping(ctx))
		return c.JSON(code, body)
	}
}

// Package handlers holds the gin endpoint handlers for the optional HTTP
// API surface, grounded on the teacher's services/*/internal/api/handlers
// shape: one struct per concern, constructed with its collaborators and
// registered against a *gin.Engine in cmd/teamselect-api.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HealthStatus mirrors the teacher's shared HealthStatus response shape.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler reports liveness/readiness. Redis is optional: the report
// cache is an ambient convenience, never a dependency of the core solver.
type HealthHandler struct {
	redis  *redis.Client
	logger *logrus.Logger
}

// NewHealthHandler creates a HealthHandler. redis may be nil when the cache
// is disabled (config.CacheEnabled == false).
func NewHealthHandler(redis *redis.Client, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{redis: redis, logger: logger}
}

// GetHealth reports whether the process is up and whether its optional
// Redis-backed cache is reachable.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	resp := HealthStatus{
		Status:    "ok",
		Service:   "teamselect-api",
		Timestamp: time.Now(),
		Checks:    map[string]string{},
	}

	if h.redis == nil {
		resp.Checks["redis"] = "not_configured"
	} else if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
		resp.Status = "degraded"
		resp.Checks["redis"] = "failed: " + err.Error()
	} else {
		resp.Checks["redis"] = "ok"
	}

	status := http.StatusOK
	if resp.Status == "degraded" {
		status = http.StatusPartialContent
	}
	c.JSON(status, resp)
}

// GetReady reports whether the service can currently accept work. Unlike
// GetHealth, a configured-but-unreachable cache makes the service not ready
// — a request would otherwise silently skip memoization.
func (h *HealthHandler) GetReady(c *gin.Context) {
	resp := HealthStatus{
		Status:    "ready",
		Service:   "teamselect-api",
		Timestamp: time.Now(),
		Checks:    map[string]string{},
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			resp.Status = "not_ready"
			resp.Checks["redis"] = "failed: " + err.Error()
		} else {
			resp.Checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if resp.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

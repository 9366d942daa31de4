// Package api assembles the gin router for the optional HTTP surface
// (cmd/teamselect-api), grounded on the teacher's cmd/server/main.go route
// grouping: a versioned API group for the domain endpoint, a bare WebSocket
// route, and unversioned health/ready endpoints.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/fm-teamselect/internal/api/handlers"
	"github.com/jstittsworth/fm-teamselect/internal/cache"
	"github.com/jstittsworth/fm-teamselect/internal/config"
	"github.com/jstittsworth/fm-teamselect/internal/progress"
)

// NewRouter builds the gin engine wiring every handler together.
func NewRouter(cfg *config.Config, redisClient *redis.Client, reportCache *cache.ReportCache, hub *progress.Hub, logger *logrus.Logger) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	teamSelect := handlers.NewTeamSelectHandler(reportCache, cfg.CacheTTL, cfg.CacheEnabled, hub, logger)
	health := handlers.NewHealthHandler(redisClient, logger)
	progressHandler := handlers.NewProgressHandler(hub, logger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/select", teamSelect.Select)
	}

	router.GET("/ws/progress/:run_id", progressHandler.Subscribe)

	router.GET("/health", health.GetHealth)
	router.GET("/ready", health.GetReady)

	return router
}

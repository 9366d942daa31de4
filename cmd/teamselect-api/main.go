// Command teamselect-api serves the team selection pipeline over HTTP,
// wiring configuration, structured logging, the Redis-backed report cache,
// and the WebSocket progress hub together — the same graceful-shutdown
// shape as the teacher's services/*/cmd/server/main.go.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/fm-teamselect/internal/api"
	"github.com/jstittsworth/fm-teamselect/internal/cache"
	"github.com/jstittsworth/fm-teamselect/internal/config"
	"github.com/jstittsworth/fm-teamselect/internal/obslog"
	"github.com/jstittsworth/fm-teamselect/internal/progress"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := obslog.Init(cfg.LogLevel, cfg.IsDevelopment())
	log.WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("starting teamselect-api")

	var redisClient *redis.Client
	var reportCache *cache.ReportCache
	if cfg.CacheEnabled {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to parse redis url: %v", err)
		}
		opt.DB = cfg.RedisDB
		redisClient = redis.NewClient(opt)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		reportCache = cache.New(redisClient, log)
	}

	hub := progress.NewHub(log)
	go hub.Run()

	router := api.NewRouter(cfg, redisClient, reportCache, hub, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("teamselect-api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down teamselect-api")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Info("teamselect-api exited")
}

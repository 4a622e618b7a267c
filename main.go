// File: studiobook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiobook/client"
	"studiobook/config"
	"studiobook/cron"
	"studiobook/devserver"
	"studiobook/store"
	"studiobook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.DevServer {
		runDevServer(logger)
		return
	}
	runSyncAgent(logger)
}

// runDevServer serves the in-memory backend stub until interrupted.
func runDevServer(logger *zap.Logger) {
	server := devserver.New(devserver.Config{
		RatePerMin:     config.AppConfig.DevServerRatePerMin,
		Seed:           config.AppConfig.DevServerSeed,
		RequestLogging: true,
		Logger:         logger,
	})

	port := config.AppConfig.DevServerPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: server.Handler(),
	}

	logger.Sugar().Infof("Starting dev server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: dev server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: dev server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: dev server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: dev server stopped gracefully")
}

// runSyncAgent loads the cache snapshot, refreshes it from the API, and
// keeps it fresh on the configured schedule until interrupted.
func runSyncAgent(logger *zap.Logger) {
	cfg := config.AppConfig

	var snapshots store.SnapshotStore
	var redisClient *redis.Client
	switch cfg.CacheBackend {
	case "redis":
		redisClient = utils.GetCacheClient()
		snapshots = store.NewRedisSnapshotStore(redisClient, utils.SnapshotCacheTTL)
	default:
		snapshots = store.NewFileSnapshotStore(cfg.CacheFile)
	}

	cache := store.New(store.Options{
		Snapshots: snapshots,
		Logger:    logger,
	})
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cache.Load(loadCtx); err != nil {
		logger.Warn("Starting with an empty cache", zap.Error(err))
	}
	cancelLoad()

	api := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: time.Duration(cfg.APITimeoutSeconds) * time.Second,
		Tokens:  client.NewFileTokenStore(cfg.TokenFile),
		Logger:  logger,
	})

	utils.StartHealthMonitor(60*time.Second, func(ctx context.Context) error {
		_, err := api.Health(ctx)
		return err
	}, redisClient)

	refresher := cron.NewRefresher(api, cache, cron.RefresherConfig{
		Spec:       cfg.RefreshSpec,
		StudioID:   cfg.StudioID,
		StudioSlug: cfg.StudioSlug,
		Logger:     logger,
	})

	refreshCtx, cancelRefresh := context.WithTimeout(context.Background(), 2*time.Minute)
	// A failed first pass is not fatal; the loaded snapshot serves until
	// the schedule catches up.
	_ = refresher.RefreshOnce(refreshCtx)
	cancelRefresh()

	if err := refresher.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start refresh scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: sync agent is shutting down...")

	refresher.Stop()

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if err := cache.Flush(flushCtx); err != nil {
		logger.Warn("Failed to flush cache snapshot", zap.Error(err))
	}

	logger.Sugar().Info("main: sync agent stopped gracefully")
}

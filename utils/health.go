package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents the current status of external services.
type HealthStatus struct {
	Backend   bool      `json:"backend"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates
// in-memory state. pingBackend probes the booking API; redisClient may
// be nil when the cache snapshot lives on disk, in which case the cache
// is reported healthy.
func StartHealthMonitor(interval time.Duration, pingBackend func(ctx context.Context) error, redisClient *redis.Client) {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			backendHealthy := pingBackend != nil && pingBackend(ctx) == nil
			cacheHealthy := true
			if redisClient != nil {
				cacheHealthy = redisClient.Ping(ctx).Err() == nil
			}
			cancel()

			healthMu.Lock()
			currentHealth = HealthStatus{
				Backend:   backendHealthy,
				Cache:     cacheHealthy,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}

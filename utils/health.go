package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings the backing stores and keeps the latest result.
type HealthMonitor struct {
	mongo    *mongo.Client
	redis    *redis.Client
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor. A nil redis client is reported as unhealthy.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		mongo:    mongoClient,
		redis:    redisClient,
		interval: interval,
	}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Start checks once immediately and then on every tick until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.check(ctx)
			}
		}
	}()
}

func (h *HealthMonitor) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if h.mongo != nil {
		status.Mongo = h.mongo.Ping(ctx, nil) == nil
	}
	if h.redis != nil {
		status.Redis = h.redis.Ping(ctx).Err() == nil
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
}

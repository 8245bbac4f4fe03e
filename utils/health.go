package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of the stores behind the service: the
// mongo database holding rooms, bookings, users and offers, the generic
// cache and the auth token denylist.
type HealthStatus struct {
	Database      bool      `json:"database"`
	Cache         bool      `json:"cache"`
	TokenDenylist bool      `json:"tokenDenylist"`
	CheckedAt     time.Time `json:"checkedAt"`
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

type pingFunc func(context.Context) error

// checkHealth pings each dependency and assembles a snapshot.
func checkHealth(ctx context.Context, database, cache, denylist pingFunc) HealthStatus {
	return HealthStatus{
		Database:      database(ctx) == nil,
		Cache:         cache(ctx) == nil,
		TokenDenylist: denylist(ctx) == nil,
		CheckedAt:     time.Now().UTC(),
	}
}

// StartHealthMonitor checks the backing stores once a minute and keeps the
// latest snapshot in memory for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client, cache, denylist *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := checkHealth(ctx,
				func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
				func(ctx context.Context) error { return cache.Ping(ctx).Err() },
				func(ctx context.Context) error { return denylist.Ping(ctx).Err() },
			)
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}

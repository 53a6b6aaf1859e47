package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// appDatabase is the mongo database all repositories read and write.
const appDatabase = "atelier"

// HealthStatus reports reachability of the stores behind the studio and
// notebook apps.
type HealthStatus struct {
	Mongo         bool      `json:"mongo"`
	SessionCache  bool      `json:"sessionCache"`
	NotebookCache bool      `json:"notebookCache"`
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

func setHealthStatus(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

func probeHealth(ctx context.Context, sessionCache, notebookCache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	mongoHealthy := mongoClient.Database(appDatabase).
		RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err() == nil

	return HealthStatus{
		Mongo:         mongoHealthy,
		SessionCache:  sessionCache.Ping(ctx).Err() == nil,
		NotebookCache: notebookCache.Ping(ctx).Err() == nil,
		CheckedAt:     time.Now(),
	}
}

// StartHealthMonitor probes the conversation cache, the notebook cache,
// and mongo every minute, updating the in-memory snapshot.
func StartHealthMonitor(sessionCache, notebookCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			setHealthStatus(probeHealth(ctx, sessionCache, notebookCache, mongoClient))
		}
	}()
}

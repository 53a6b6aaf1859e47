// File: services/memory/store.go
package memory

import (
	"context"
	"encoding/json"
	"time"

	"atelier/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "chat:session:"

// maxMessages caps how much history is retained per session.
const maxMessages = 50

// Store is the durable conversation memory. Get returns (nil, nil) when
// the session does not exist or has expired. Sessions are never deleted
// explicitly; expiry is the TTL's job.
type Store interface {
	Save(ctx context.Context, session *models.ConversationSession) error
	Get(ctx context.Context, sessionID string) (*models.ConversationSession, error)
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save persists the session with a fresh TTL, trimming the stored history
// to the most recent maxMessages entries.
func (s *RedisStore) Save(ctx context.Context, session *models.ConversationSession) error {
	stored := *session
	if len(stored.Messages) > maxMessages {
		stored.Messages = stored.Messages[len(stored.Messages)-maxMessages:]
	}
	b, err := json.Marshal(&stored)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.ID, b, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.ConversationSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.ConversationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

package memory

import (
	"context"
	"encoding/json"

	"atelier/models"

	"github.com/go-redis/redis/v8"
)

const historyPrefix = "notebook:chat:"

// HistoryStore is the append-only message log behind the notebook
// co-writer chat. Unlike booking sessions it does not expire.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, msg models.ChatMessage) error
	List(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

type RedisHistoryStore struct {
	client *redis.Client
}

func NewRedisHistoryStore(client *redis.Client) *RedisHistoryStore {
	return &RedisHistoryStore{client: client}
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, msg models.ChatMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, historyPrefix+sessionID, b).Err()
}

func (s *RedisHistoryStore) List(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	entries, err := s.client.LRange(ctx, historyPrefix+sessionID, 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	messages := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

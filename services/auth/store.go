package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tablebook/models"
	"tablebook/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds the server-side session flag keyed by session ID.
// It is injected into the session service and the gate middleware rather
// than reached through package state.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session models.Session, ttl time.Duration) error
	// Get returns (nil, nil) when no live session exists for the ID.
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore implements SessionStore on a dedicated Redis client.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.SessionKeyPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.Client.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	// The Redis TTL already bounds the key lifetime; the expiry stamp is
	// still checked on every lookup so a lagging TTL cannot extend a session.
	if session.Expired(time.Now()) {
		_ = s.Client.Del(ctx, utils.SessionKeyPrefix+sessionID).Err()
		return nil, nil
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, utils.SessionKeyPrefix+sessionID).Err()
}

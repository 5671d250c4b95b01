package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"trainingcentre/internal/domain"
)

// RedisSessionStore keeps each session's user record under one key with a
// TTL matching the session token lifetime.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:user:" + sessionID
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*domain.User, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		// Broken payload: drop the slot and act as if it never existed.
		log.Printf("session %s: malformed payload, discarding: %v", sessionID, err)
		_ = s.client.Del(ctx, sessionKey(sessionID)).Err()
		return nil, nil
	}
	return &user, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, user *domain.User) error {
	if user == nil {
		return s.Delete(ctx, sessionID)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "artist-site:session:"

// SessionStore keeps admin session ids in redis so they survive restarts
// and are shared between instances.
type SessionStore struct {
	Client *redis.Client
}

func NewSessionStore(addr, password string, db int) *SessionStore {
	return &SessionStore{
		Client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
	}
}

func (s *SessionStore) Connect(ctx context.Context) error {
	log.Info().Msg("[REDIS] Connecting to Redis...")
	if err := s.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	log.Info().Msg("[REDIS] Connected successfully")
	return nil
}

func (s *SessionStore) Put(ctx context.Context, id string, ttl time.Duration) error {
	return s.Client.Set(ctx, keyPrefix+id, 1, ttl).Err()
}

func (s *SessionStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.Client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, keyPrefix+id).Err()
}

func (s *SessionStore) Close() error {
	if s.Client != nil {
		return s.Client.Close()
	}
	return nil
}

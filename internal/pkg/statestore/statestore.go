// Package statestore persists step-scoped navigation state per flow
// session in Redis. Losing a stored state is recoverable (the user restarts
// the flow), so every failure here degrades to "no persisted state" instead
// of surfacing an error.
package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	KeyTopicSelection    = "TOPIC_SELECTION_STATE"
	KeyQuizConfiguration = "QUIZ_CONFIG_STATE"

	namespace  = "eduai:flow"
	defaultTTL = 2 * time.Hour
)

// Client is the subset of redis.Cmdable the store needs. *redis.Client
// satisfies it; tests provide an in-memory fake.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Store struct {
	client Client
	log    *logrus.Logger
	ttl    time.Duration
}

func New(client Client, log *logrus.Logger, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, log: log, ttl: ttl}
}

// NewClient dials Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

func storeKey(sessionID, key string) string {
	return fmt.Sprintf("%s:%s:%s", namespace, sessionID, key)
}

// Save serializes state under the namespaced key, overwriting any prior
// value. Serialization and Redis failures are logged no-ops.
func (s *Store) Save(ctx context.Context, sessionID, key string, state any) {
	payload, err := json.Marshal(state)
	if err != nil {
		s.warn(key, "serialize state", err)
		return
	}
	if err := s.client.Set(ctx, storeKey(sessionID, key), payload, s.ttl).Err(); err != nil {
		s.warn(key, "save state", err)
	}
}

// Load deserializes the stored state into dest. Returns false when the key
// is absent, the read fails, or the payload is corrupt.
func (s *Store) Load(ctx context.Context, sessionID, key string, dest any) bool {
	payload, err := s.client.Get(ctx, storeKey(sessionID, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.warn(key, "load state", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		s.warn(key, "decode state", err)
		return false
	}
	return true
}

func (s *Store) Clear(ctx context.Context, sessionID, key string) {
	if err := s.client.Del(ctx, storeKey(sessionID, key)).Err(); err != nil {
		s.warn(key, "clear state", err)
	}
}

// ClearAll removes every step entry for a flow session.
func (s *Store) ClearAll(ctx context.Context, sessionID string) {
	keys := []string{
		storeKey(sessionID, KeyTopicSelection),
		storeKey(sessionID, KeyQuizConfiguration),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.warn("*", "clear all state", err)
	}
}

func (s *Store) warn(key, op string, err error) {
	if s.log != nil {
		s.log.Warnf("statestore: failed to %s for %s: %v", op, key, err)
	}
}

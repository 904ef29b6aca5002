package storage

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chuwg/change-work/internal/keyring"
)

const redisOpTimeout = 3 * time.Second

// HasEmbeddedCredentials reports whether a store URL carries a password
// inline. Credentials belong in the OS keyring, never in the URL.
func HasEmbeddedCredentials(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// RedisStore backs the shared store with a Redis instance, for setups where
// the main application publishes the snapshot over the network instead of a
// shared file. The password, if any, is resolved from the OS keyring.
type RedisStore struct {
	url    string
	client *redis.Client
}

func NewRedisStore(rawURL string) *RedisStore {
	return &RedisStore{url: rawURL}
}

func (s *RedisStore) Init() error {
	opts, err := redis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("invalid redis URL: %w", err)
	}

	if opts.Password == "" {
		password, err := keyring.GetStoreSecret()
		if err == nil {
			opts.Password = password
		} else if err != keyring.ErrNotFound {
			return fmt.Errorf("failed to read store credentials: %w", err)
		}
	}

	s.client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Refresh is a no-op: every read goes to the server.
func (s *RedisStore) Refresh() error {
	return nil
}

func (s *RedisStore) get(key string) (string, bool) {
	if s.client == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *RedisStore) set(key, value string) error {
	if s.client == nil {
		return fmt.Errorf("store not initialized")
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) GetString(key string) (string, bool) {
	return s.get(key)
}

func (s *RedisStore) SetString(key, value string) error {
	return s.set(key, value)
}

func (s *RedisStore) GetInt(key string) (int64, bool) {
	raw, ok := s.get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *RedisStore) SetInt(key string, value int64) error {
	return s.set(key, strconv.FormatInt(value, 10))
}

func (s *RedisStore) GetFloat(key string) (float64, bool) {
	raw, ok := s.get(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s *RedisStore) SetFloat(key string, value float64) error {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

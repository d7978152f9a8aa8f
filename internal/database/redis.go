package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKVStore keeps key-value pairs in redis under a common key prefix.
type RedisKVStore struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisKVStore connects to redis. addr is either a redis:// URL or host:port.
func NewRedisKVStore(addr string, prefix string) (*RedisKVStore, error) {
	if addr == "" {
		return nil, errors.New("redis backend requires an address")
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		var err error
		opts, err = redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
	} else {
		opts = &redis.Options{Addr: addr}
	}

	s := newRedisKVStore(redis.NewClient(opts), prefix)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return s, nil
}

func newRedisKVStore(client *redis.Client, prefix string) *RedisKVStore {
	return &RedisKVStore{
		client:  client,
		prefix:  prefix,
		timeout: 5 * time.Second,
	}
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *RedisKVStore) ReadKey(key []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading from redis: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key, without expiration.
func (s *RedisKVStore) UpdateKey(key []byte, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("writing to redis: %w", err)
	}

	return nil
}

// DeleteKey removes given key.
func (s *RedisKVStore) DeleteKey(key []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("deleting from redis: %w", err)
	}

	return nil
}

// Close closes redis client.
func (s *RedisKVStore) Close() error {
	return s.client.Close()
}

func (s *RedisKVStore) key(key []byte) string {
	if s.prefix == "" {
		return string(key)
	}
	return s.prefix + ":" + string(key)
}

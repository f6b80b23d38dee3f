package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// RedisConfig holds redis connection parameters for the blob store.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// RedisStore persists the blob under a single redis key.  The value carries
// no TTL: reminders live until explicitly deleted.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore constructs a RedisStore and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeServiceUnavailable, "failed to connect to redis")
	}
	return &RedisStore{client: client, key: cfg.KeyPrefix + StorageKey}, nil
}

// Load implements BlobStore.
func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBlobNotFound
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "failed to read blob from redis")
	}
	return data, nil
}

// Save implements BlobStore.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to write blob to redis")
	}
	return nil
}

// Close releases the underlying redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

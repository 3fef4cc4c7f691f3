package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of shortlink.Repository.
type RedisStore struct {
	client *redis.Client
	prefix string // "shortlink:" for code -> JSON record
}

type redisRecord struct {
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRedisStore creates a new Redis-backed short link store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "shortlink:",
	}
}

// Save writes the record with SETNX so an existing code is never replaced.
func (r *RedisStore) Save(ctx context.Context, link *shortlink.ShortLink) error {
	payload, err := json.Marshal(redisRecord{
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	})
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, r.prefix+string(link.Code), payload, 0).Result()
	if err != nil {
		return err
	}

	if !created {
		return shortlink.ErrCodeConflict
	}

	return nil
}

func (r *RedisStore) GetByCode(ctx context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	payload, err := r.client.Get(ctx, r.prefix+string(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortlink.ErrNotFound
		}

		return nil, err
	}

	var record redisRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, err
	}

	return &shortlink.ShortLink{
		Code:        code,
		OriginalURL: record.OriginalURL,
		CreatedAt:   record.CreatedAt,
	}, nil
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ shortlink.Repository = (*RedisStore)(nil)

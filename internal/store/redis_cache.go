package store

import (
	"context"
	"strconv"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/redis/go-redis/v9"
)

// RedisCacheRepository wraps a Repository with Redis caching for reads.
// Links never change once created, so cached entries cannot go stale.
type RedisCacheRepository struct {
	store  shortlink.Repository
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCacheRepository creates a new Redis-cached repository decorator.
func NewRedisCacheRepository(
	store shortlink.Repository, client *redis.Client, ttl time.Duration,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		store:  store,
		client: client,
		prefix: "shortlink-cache:",
		ttl:    ttl,
	}
}

// Save stores a short link in the underlying store and updates the cache.
func (r *RedisCacheRepository) Save(ctx context.Context, link *shortlink.ShortLink) error {
	if err := r.store.Save(ctx, link); err != nil {
		return err
	}

	// Write-through: update cache after successful save
	r.cacheLink(ctx, link)

	return nil
}

// GetByCode retrieves a short link by its code, checking cache first.
func (r *RedisCacheRepository) GetByCode(ctx context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	if link, err := r.getFromCache(ctx, code); err == nil {
		return link, nil
	}

	// Cache miss - fetch from store
	link, err := r.store.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	r.cacheLink(ctx, link)

	return link, nil
}

func (r *RedisCacheRepository) getFromCache(ctx context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	result, err := r.client.HGetAll(ctx, r.prefix+string(code)).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, shortlink.ErrNotFound
	}

	var createdAt time.Time

	if ts, ok := result["created_at"]; ok {
		if nanos, err := strconv.ParseInt(ts, 10, 64); err == nil {
			createdAt = time.Unix(0, nanos)
		}
	}

	return &shortlink.ShortLink{
		Code:        code,
		OriginalURL: result["original_url"],
		CreatedAt:   createdAt,
	}, nil
}

func (r *RedisCacheRepository) cacheLink(ctx context.Context, link *shortlink.ShortLink) {
	pipe := r.client.Pipeline()
	key := r.prefix + string(link.Code)

	pipe.HSet(ctx, key, map[string]interface{}{
		"original_url": link.OriginalURL,
		"created_at":   link.CreatedAt.UnixNano(),
	})

	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	// Cache failures only cost a future store read.
	_, _ = pipe.Exec(ctx)
}

// Shutdown is a no-op for RedisCacheRepository (client managed externally).
func (r *RedisCacheRepository) Shutdown() error {
	return nil
}

var _ shortlink.Repository = (*RedisCacheRepository)(nil)

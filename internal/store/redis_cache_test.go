package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis returns a client whose every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisCacheRepository_DegradesToStore(t *testing.T) {
	t.Run("save reaches the underlying store when cache is down", func(t *testing.T) {
		mem := store.NewMemoryStore()
		cached := store.NewRedisCacheRepository(mem, unreachableRedis(t), time.Minute)

		err := cached.Save(context.Background(), &shortlink.ShortLink{Code: "cch01", OriginalURL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, 1, mem.Len())
	})

	t.Run("get falls back to the underlying store when cache is down", func(t *testing.T) {
		mem := store.NewMemoryStore()
		_ = mem.Save(context.Background(), &shortlink.ShortLink{Code: "cch02", OriginalURL: "https://example.com"})
		cached := store.NewRedisCacheRepository(mem, unreachableRedis(t), time.Minute)

		link, err := cached.GetByCode(context.Background(), "cch02")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", link.OriginalURL)
	})

	t.Run("conflicts from the store are passed through", func(t *testing.T) {
		mem := store.NewMemoryStore()
		_ = mem.Save(context.Background(), &shortlink.ShortLink{Code: "cch03", OriginalURL: "https://example.com"})
		cached := store.NewRedisCacheRepository(mem, unreachableRedis(t), time.Minute)

		err := cached.Save(context.Background(), &shortlink.ShortLink{Code: "cch03", OriginalURL: "https://other.com"})

		assert.ErrorIs(t, err, shortlink.ErrCodeConflict)
	})

	t.Run("not found from the store is passed through", func(t *testing.T) {
		cached := store.NewRedisCacheRepository(store.NewMemoryStore(), unreachableRedis(t), time.Minute)

		link, err := cached.GetByCode(context.Background(), "missing")

		assert.Nil(t, link)
		assert.ErrorIs(t, err, shortlink.ErrNotFound)
	})
}

//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGormStore(t *testing.T) {
	dsn := os.Getenv("ANALYTICS_DATABASE_URL")
	if dsn == "" {
		t.Skip("ANALYTICS_DATABASE_URL not set")
	}

	s, err := store.OpenGormStore(dsn, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Shutdown() })

	ctx := context.Background()
	code := uuid.NewString()[:8]

	require.NoError(t, s.SaveLinkRegistered(ctx, &analytics.LinkRegisteredEvent{
		Code:        code,
		OriginalURL: "https://example.com",
		CreatedAt:   time.Now(),
	}))

	for range 3 {
		require.NoError(t, s.SaveLinkResolved(ctx, &analytics.LinkResolvedEvent{
			Code:       code,
			ResolvedAt: time.Now(),
		}))
	}

	count, err := s.VisitCount(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

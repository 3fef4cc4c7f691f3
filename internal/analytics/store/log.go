package store

import (
	"context"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"go.uber.org/zap"
)

// LogStore writes analytics events to the log instead of a database.
type LogStore struct {
	logger *zap.Logger
}

// NewLogStore creates an analytics store backed by logger.
func NewLogStore(logger *zap.Logger) *LogStore {
	return &LogStore{logger: logger}
}

func (s *LogStore) SaveLinkRegistered(_ context.Context, event *analytics.LinkRegisteredEvent) error {
	s.logger.Info("link registered",
		zap.String("code", event.Code),
		zap.String("originalUrl", event.OriginalURL),
		zap.Time("createdAt", event.CreatedAt),
		zap.String("clientIp", event.ClientIP),
	)

	return nil
}

func (s *LogStore) SaveLinkResolved(_ context.Context, event *analytics.LinkResolvedEvent) error {
	s.logger.Info("link resolved",
		zap.String("code", event.Code),
		zap.Time("resolvedAt", event.ResolvedAt),
		zap.String("referrer", event.Referrer),
	)

	return nil
}

package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/messaging"
	"go.uber.org/zap"
)

// Store defines the interface for persisting analytics events.
type Store interface {
	SaveLinkRegistered(ctx context.Context, event *LinkRegisteredEvent) error
	SaveLinkResolved(ctx context.Context, event *LinkResolvedEvent) error
}

// AddConsumers registers one consumer per analytics topic on group, each
// persisting its events into store.
func AddConsumers(group *messaging.ConsumerGroup, subscriber message.Subscriber, store Store, logger *zap.Logger) {
	group.Add(messaging.NewConsumer(subscriber, TopicLinkRegistered, store.SaveLinkRegistered, logger))
	group.Add(messaging.NewConsumer(subscriber, TopicLinkResolved, store.SaveLinkResolved, logger))
}

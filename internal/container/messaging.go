package container

import (
	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	analyticsstore "github.com/ebashirli/elvinbashirlisportfolio/internal/analytics/store"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/messaging"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// DefaultConsumerGroup is the Redis Streams consumer group for analytics.
const DefaultConsumerGroup = "shortlink-analytics"

// PublisherGroupPackage provides the analytics publishers. With analytics
// disabled the publishers discard events and no broker is contacted.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		redisConn := do.MustInvoke[*Redis](i)
		logger := do.MustInvoke[*zap.Logger](i)

		publisher, err := messaging.NewRedisPublisher(redisConn.Client, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (analytics.Publishers, error) {
		if !do.MustInvoke[*Options](i).Analytics {
			return analytics.DiscardPublishers(), nil
		}

		group, err := do.Invoke[*messaging.PublisherGroup](i)
		if err != nil {
			return analytics.Publishers{}, err
		}

		return analytics.NewPublishers(group.Publisher()), nil
	})
}

// ConsumerGroupPackage provides the analytics consumer group. Events go to
// Postgres through GORM when a database URL is configured, otherwise to the log.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		options := do.MustInvoke[*ConsumerOptions](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.DatabaseURL == "" {
			return analyticsstore.NewLogStore(logger), nil
		}

		return analyticsstore.OpenGormStore(options.DatabaseURL, logger)
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		options := do.MustInvoke[*ConsumerOptions](i)
		redisConn := do.MustInvoke[*Redis](i)
		logger := do.MustInvoke[*zap.Logger](i)
		eventStore := do.MustInvoke[analytics.Store](i)

		group := options.ConsumerGroup
		if group == "" {
			group = DefaultConsumerGroup
		}

		subscriber, err := messaging.NewRedisSubscriber(redisConn.Client, group, messaging.NewZapLogger(logger))
		if err != nil {
			return nil, err
		}

		consumers := messaging.NewConsumerGroup(subscriber, logger)
		analytics.AddConsumers(consumers, subscriber, eventStore, logger)

		return consumers, nil
	})
}

package analytics

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/messaging"
)

// Publishers bundles the typed publish functions for every analytics topic.
type Publishers struct {
	Registered messaging.Publish[LinkRegisteredEvent]
	Resolved   messaging.Publish[LinkResolvedEvent]
}

// NewPublishers binds each analytics topic to publisher.
func NewPublishers(publisher message.Publisher) Publishers {
	return Publishers{
		Registered: messaging.NewPublishFunc[LinkRegisteredEvent](publisher, TopicLinkRegistered),
		Resolved:   messaging.NewPublishFunc[LinkResolvedEvent](publisher, TopicLinkResolved),
	}
}

// DiscardPublishers returns publishers that drop every event, used when
// analytics is disabled.
func DiscardPublishers() Publishers {
	return Publishers{
		Registered: messaging.Discard[LinkRegisteredEvent](),
		Resolved:   messaging.Discard[LinkResolvedEvent](),
	}
}

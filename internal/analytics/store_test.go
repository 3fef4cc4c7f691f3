package analytics_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"github.com/ebashirli/elvinbashirlisportfolio/internal/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type topicSubscriber struct {
	mu       sync.Mutex
	channels map[string]chan *message.Message
}

func newTopicSubscriber() *topicSubscriber {
	return &topicSubscriber{channels: map[string]chan *message.Message{
		analytics.TopicLinkRegistered: make(chan *message.Message, 1),
		analytics.TopicLinkResolved:   make(chan *message.Message, 1),
	}}
}

func (s *topicSubscriber) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	return s.channels[topic], nil
}

func (s *topicSubscriber) Close() error {
	return nil
}

func (s *topicSubscriber) send(t *testing.T, topic string, event any) *message.Message {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := message.NewMessage(uuid.NewString(), payload)

	s.mu.Lock()
	s.channels[topic] <- msg
	s.mu.Unlock()

	return msg
}

type recordingStore struct {
	registered chan *analytics.LinkRegisteredEvent
	resolved   chan *analytics.LinkResolvedEvent
}

func (r *recordingStore) SaveLinkRegistered(_ context.Context, event *analytics.LinkRegisteredEvent) error {
	r.registered <- event

	return nil
}

func (r *recordingStore) SaveLinkResolved(_ context.Context, event *analytics.LinkResolvedEvent) error {
	r.resolved <- event

	return nil
}

func TestAddConsumers(t *testing.T) {
	sub := newTopicSubscriber()
	rec := &recordingStore{
		registered: make(chan *analytics.LinkRegisteredEvent, 1),
		resolved:   make(chan *analytics.LinkResolvedEvent, 1),
	}
	group := messaging.NewConsumerGroup(sub, zap.NewNop())

	analytics.AddConsumers(group, sub, rec, zap.NewNop())
	require.Equal(t, 2, group.Len())
	require.NoError(t, group.Start(context.Background()))

	t.Cleanup(func() { _ = group.Shutdown() })

	sub.send(t, analytics.TopicLinkRegistered, analytics.LinkRegisteredEvent{Code: "reg01"})
	sub.send(t, analytics.TopicLinkResolved, analytics.LinkResolvedEvent{Code: "res01"})

	select {
	case event := <-rec.registered:
		assert.Equal(t, "reg01", event.Code)
	case <-time.After(time.Second):
		t.Fatal("registered event not stored")
	}

	select {
	case event := <-rec.resolved:
		assert.Equal(t, "res01", event.Code)
	case <-time.After(time.Second):
		t.Fatal("resolved event not stored")
	}
}

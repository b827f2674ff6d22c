package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"easyrent-server/internal/infra/pubsub"
)

// Subscriber starts one consumer per registered topic and routes its
// messages to the topic handler.
type Subscriber struct {
	consumerFactory pubsub.ConsumerFactory
	handlers        map[pubsub.Topic]TopicHandler
	mu              sync.RWMutex
	cancel          context.CancelFunc
}

func NewSubscriber(consumerFactory pubsub.ConsumerFactory) *Subscriber {
	return &Subscriber{
		consumerFactory: consumerFactory,
		handlers:        make(map[pubsub.Topic]TopicHandler),
	}
}

func (s *Subscriber) RegisterHandler(handler TopicHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic := handler.TopicName()
	if _, exists := s.handlers[topic]; exists {
		return fmt.Errorf("handler already registered for topic: %s", topic)
	}

	s.handlers[topic] = handler
	slog.Debug("registered topic handler", slog.String("topic", string(topic)))

	return nil
}

// Start subscribes every registered handler. Consumers stop when ctx is
// done or Stop is called.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.handlers) == 0 {
		slog.Warn("no topic handlers registered, subscriber not started")
		return nil
	}

	ctx, s.cancel = context.WithCancel(ctx)

	for topic, handler := range s.handlers {
		consumer := s.consumerFactory.New()
		if err := consumer.Consume(ctx, topic, s.route(topic, handler), handler.Prototype()); err != nil {
			s.cancel()
			return fmt.Errorf("consuming %s: %w", topic, err)
		}
		slog.Debug("consuming topic", slog.String("topic", string(topic)))
	}

	slog.Info("subscriber started", slog.Int("topics", len(s.handlers)))
	return nil
}

func (s *Subscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		slog.Info("subscriber stopped")
	}
}

func (s *Subscriber) route(topic pubsub.Topic, handler TopicHandler) pubsub.MessageHandler {
	return func(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error {
		if err := handler.Handle(ctx, key, message); err != nil {
			slog.Error("handling event",
				slog.String("topic", string(topic)),
				slog.String("key", string(key)),
				slog.String("error", err.Error()))
			return fmt.Errorf("handling %s event: %w", topic, err)
		}
		return nil
	}
}

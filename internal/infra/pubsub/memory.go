package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"easyrent-server/internal/infra/async"

	"go.opentelemetry.io/otel/trace"
)

var (
	defaultBroker     *async.LocalBroker
	defaultBrokerOnce sync.Once
)

// DefaultMemoryBroker is the process wide broker shared by memory publishers
// and consumers created without an explicit broker.
func DefaultMemoryBroker() *async.LocalBroker {
	defaultBrokerOnce.Do(func() {
		defaultBroker = async.NewLocalBroker()
	})
	return defaultBroker
}

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

type MemoryPublisherFactory struct {
	broker async.InternalBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return NewMemoryPublisherFactoryWithBroker(DefaultMemoryBroker())
}

func NewMemoryPublisherFactoryWithBroker(broker async.InternalBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: broker}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{broker: f.broker, topic: topic}, nil
}

type MemoryPublisher struct {
	broker async.InternalBroker
	topic  Topic
}

// Publish drops the message when nobody listens on the topic, like a kafka
// topic without consumer groups.
func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	err := p.broker.Publish(ctx, async.BrokerTopicName(p.topic), async.BrokerMessage{
		Event: string(key),
		Value: message,
	})
	if errors.Is(err, async.ErrTopicNotFound) {
		slog.Debug("no consumers for topic", slog.String("topic", string(p.topic)))
		return nil
	}
	return err
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker async.InternalBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return NewMemoryConsumerFactoryWithBroker(DefaultMemoryBroker(), group)
}

func NewMemoryConsumerFactoryWithBroker(broker async.InternalBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{broker: broker, group: group}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{broker: f.broker, group: f.group}
}

var _ Consumer = (*MemoryConsumer)(nil)

type MemoryConsumer struct {
	broker async.InternalBroker
	group  string
}

func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	brokerTopic := async.BrokerTopicName(topic)
	subscription, err := c.broker.Subscribe(brokerTopic)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = c.broker.Unsubscribe(brokerTopic, subscription)
				return
			case msg, ok := <-subscription.Receiver:
				if !ok {
					return
				}
				c.dispatch(msg, handler)
			}
		}
	}()

	return nil
}

func (c *MemoryConsumer) dispatch(msg async.BrokerMessage, handler MessageHandler) {
	ctx := context.Background()
	if msg.Span != nil {
		ctx = trace.ContextWithSpanContext(ctx, msg.Span.SpanContext())
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.String("group", c.group), slog.Any("panic", r))
		}
	}()

	if err := handler(ctx, Key(msg.Event), msg.Value); err != nil {
		slog.Error("handling message",
			slog.String("group", c.group),
			slog.String("key", msg.Event),
			slog.String("error", err.Error()))
	}
}

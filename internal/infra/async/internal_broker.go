package async

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=internal_broker.go -destination=../../../test/unit/doubles/infra/async/internal_broker_mock.go -package=async -mock_names=InternalBroker=MockInternalBroker

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptorNotFound = errors.New("subscriptor not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		subscriptors: make(map[BrokerTopicName][]*subscriptor),
	}
}

// LocalBroker fans messages out to every active subscription of a topic.
// Delivery to a subscription happens on its own goroutine, in publish order.
type LocalBroker struct {
	mu           sync.RWMutex
	subscriptors map[BrokerTopicName][]*subscriptor
}

type subscriptor struct {
	mu           sync.Mutex
	active       bool
	queue        chan BrokerMessage
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	subscription := Subscription{ID: uuid.NewString(), Receiver: make(chan BrokerMessage)}
	s := &subscriptor{subscription: subscription, active: true, queue: make(chan BrokerMessage, 256)}
	go s.forward()

	b.mu.Lock()
	active := slices.DeleteFunc(slices.Clone(b.subscriptors[topic]), func(s *subscriptor) bool { return !s.isActive() })
	b.subscriptors[topic] = append(active, s)
	b.mu.Unlock()

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.subscriptors[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].safeClose()

	return nil
}

func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	topicSubscriptors, ok := b.subscriptors[topic]
	b.mu.RUnlock()
	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range topicSubscriptors {
		s.enqueue(msg)
	}

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, subscriptors := range b.subscriptors {
		for _, s := range subscriptors {
			s.safeClose()
		}
	}
}

func (s *subscriptor) enqueue(msg BrokerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.queue <- msg
	}
}

func (s *subscriptor) isActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *subscriptor) forward() {
	for msg := range s.queue {
		s.subscription.Receiver <- msg
	}
	close(s.subscription.Receiver)
}

func (s *subscriptor) safeClose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.active = false
		close(s.queue)
	}
}

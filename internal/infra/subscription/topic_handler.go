package subscription

import (
	"context"

	"easyrent-server/internal/infra/pubsub"
)

// TopicHandler reacts to the events of one topic.
type TopicHandler interface {
	TopicName() pubsub.Topic

	// Prototype is the value consumers decode messages into.
	Prototype() pubsub.Prototype

	Handle(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error
}

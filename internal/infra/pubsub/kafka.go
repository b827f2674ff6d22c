package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"easyrent-server/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
)

const (
	maxRetries int = 10
)

type publisherKey struct {
	brokers           string
	topic             string
	prototypeType     string
	schemaRegistryURL string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// newCodec picks the Confluent wire format when a schema registry is
// configured and the static schema codec otherwise.
func newCodec(prototype any, schemaRegistryURL string) (goka.Codec, error) {
	if schemaRegistryURL == "" {
		return avro.NewAvroCodec(prototype)
	}
	return avro.NewConfluentAvroCodec(prototype, avro.NewSchemaRegistryClient(schemaRegistryURL))
}

func NewKafkaPublisher(brokers []string, topic string, prototype any, schemaRegistryURL string) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:           strings.Join(brokers, ","),
		topic:             topic,
		prototypeType:     fmt.Sprintf("%T", prototype),
		schemaRegistryURL: schemaRegistryURL,
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("schemaRegistryURL", schemaRegistryURL),
			slog.String("topic", topic),
			slog.String("prototypeType", key.prototypeType))

		codec, err := newCodec(prototype, schemaRegistryURL)
		if err != nil {
			instance.err = fmt.Errorf("creating avro codec: %w", err)
			return
		}

		for i := 0; i < maxRetries; i++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers))
			e, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err != nil {
				time.Sleep(5 * time.Second)
				continue
			}
			instance.publisher = &SimpleKafkaPublisher{e}
			return
		}

		instance.err = fmt.Errorf("imposible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	err := p.emitter.EmitSync(string(key), message)
	if err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return err
	}

	return nil
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers           []string
	group             goka.Group
	schemaRegistryURL string
}

func NewKafkaConsumer(brokers []string, group string, schemaRegistryURL string) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers:           brokers,
		group:             goka.Group(group),
		schemaRegistryURL: schemaRegistryURL,
	}
}

func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, prototype Prototype) error {
	codec, err := newCodec(prototype, c.schemaRegistryURL)
	if err != nil {
		return fmt.Errorf("creating avro codec: %w", err)
	}

	cb := func(gctx goka.Context, msg any) {
		key := Key(gctx.Key())
		if err := handler(ctx, key, msg); err != nil {
			slog.Error("handling message",
				slog.String("topic", string(topic)),
				slog.String("key", string(key)),
				slog.String("error", err.Error()))
		}
	}

	gg := goka.DefineGroup(
		c.group,
		goka.Input(goka.Stream(topic), codec, cb),
	)

	p, err := goka.NewProcessor(c.brokers, gg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	go func() {
		if err := p.Run(ctx); err != nil {
			slog.Error("running kafka processor",
				slog.String("group", string(c.group)),
				slog.String("error", err.Error()))
		}
	}()

	return nil
}

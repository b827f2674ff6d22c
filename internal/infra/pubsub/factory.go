package pubsub

import "easyrent-server/internal/infra/async"

// Factory creates the appropriate pubsub implementation based on environment
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == "local" {
		broker := async.NewLocalBroker()
		return &Factory{
			publisherFactory: NewMemoryPublisherFactoryWithBroker(broker),
			consumerFactory:  NewMemoryConsumerFactoryWithBroker(broker, opts.ConsumerGroup),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers:           opts.KafkaBrokers,
			SchemaRegistryURL: opts.SchemaRegistryURL,
		}),
		consumerFactory: NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup, opts.SchemaRegistryURL),
	}
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}

package persistence

import (
	"context"
	"fmt"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/onboarding/usecases"
	"easyrent-server/internal/shared_kernel/avro"
)

const _onboardingCompletedTopic = "onboarding_completed"

func NewCompletionPublisher(publisherFactory pubsub.PublisherFactory) (*SimpleCompletionPublisher, error) {
	publisher, err := publisherFactory.New(_onboardingCompletedTopic, &avro.AvroOnboardingCompleted{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}
	return &SimpleCompletionPublisher{publisher: publisher}, nil
}

var _ usecases.CompletionPublisher = (*SimpleCompletionPublisher)(nil)

type SimpleCompletionPublisher struct {
	publisher pubsub.Publisher
}

func (p *SimpleCompletionPublisher) PublishCompleted(ctx context.Context, event usecases.OnboardingCompleted) error {
	message := &avro.AvroOnboardingCompleted{
		InviteID:        event.InviteID.String(),
		TenantProfileID: event.ProfileID.String(),
		LandlordID:      event.LandlordID.String(),
		PropertyID:      event.PropertyID.String(),
		TenantEmail:     event.TenantEmail,
		TenantName:      event.TenantName,
		CompletedAt:     event.CompletedAt,
	}
	if event.GuarantorID != nil {
		id := event.GuarantorID.String()
		message.GuarantorID = &id
	}

	return p.publisher.Publish(ctx, pubsub.Key(event.InviteID), message)
}

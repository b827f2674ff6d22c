package consumers

import (
	"context"
	"fmt"
	"log/slog"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/subscription"
	"easyrent-server/internal/onboarding/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const CompletedTopic pubsub.Topic = "onboarding_completed"

var _ subscription.TopicHandler = (*CompletionNotifier)(nil)

// CompletionNotifier emails the landlord when a tenant finishes the
// onboarding wizard.
type CompletionNotifier struct {
	invites usecases.InviteRepository
	mailer  *usecases.Mailer
}

func NewCompletionNotifier(invites usecases.InviteRepository, mailer *usecases.Mailer) *CompletionNotifier {
	return &CompletionNotifier{
		invites: invites,
		mailer:  mailer,
	}
}

func (n *CompletionNotifier) TopicName() pubsub.Topic {
	return CompletedTopic
}

func (n *CompletionNotifier) Prototype() pubsub.Prototype {
	return &avro.AvroOnboardingCompleted{}
}

func (n *CompletionNotifier) Handle(ctx context.Context, _ pubsub.Key, message pubsub.Prototype) error {
	var event avro.AvroOnboardingCompleted
	switch v := message.(type) {
	case *avro.AvroOnboardingCompleted:
		event = *v
	case avro.AvroOnboardingCompleted:
		event = v
	default:
		return fmt.Errorf("unexpected message type %T", message)
	}

	invite, err := n.invites.GetByID(ctx, shareddomain.ID(event.InviteID))
	if err != nil {
		return fmt.Errorf("loading invite %s: %w", event.InviteID, err)
	}

	if invite.LandlordEmail == "" {
		slog.Warn("landlord has no email, skipping onboarding notification",
			slog.String("invite_id", event.InviteID))
		return nil
	}

	if err := n.mailer.SendCompletion(ctx, invite, event.GuarantorID != nil); err != nil {
		return fmt.Errorf("notifying landlord: %w", err)
	}

	slog.Info("landlord notified of onboarding",
		slog.String("invite_id", event.InviteID),
		slog.String("landlord_id", event.LandlordID))
	return nil
}

package consumers_test

import (
	"context"
	"time"

	"easyrent-server/internal/infra/notification"
	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/onboarding/consumers"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	mockusecases "easyrent-server/test/unit/doubles/onboarding/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("CompletionNotifier", func() {
	var (
		ctx      context.Context
		ctrl     *gomock.Controller
		invites  *mockusecases.MockInviteRepository
		emails   *notification.LogClient
		notifier *consumers.CompletionNotifier
		event    *avro.AvroOnboardingCompleted
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		invites = mockusecases.NewMockInviteRepository(ctrl)
		emails = notification.NewLogClient()
		notifier = consumers.NewCompletionNotifier(invites, usecases.NewMailer(emails, "https://app.easyrent.example"))
		event = &avro.AvroOnboardingCompleted{
			InviteID:    "invite-1",
			LandlordID:  "landlord-1",
			TenantEmail: "jane@example.com",
			TenantName:  "Jane Doe",
			CompletedAt: time.Now(),
		}
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("should listen to completed onboardings", func() {
		gomega.Expect(notifier.TopicName()).To(gomega.Equal(pubsub.Topic("onboarding_completed")))
		gomega.Expect(notifier.Prototype()).To(gomega.BeAssignableToTypeOf(&avro.AvroOnboardingCompleted{}))
	})

	ginkgo.It("should email the landlord of the invite", func() {
		invites.EXPECT().GetByID(ctx, shareddomain.ID("invite-1")).Return(onboardingDomain.Invite{
			ID:            "invite-1",
			LandlordEmail: "owner@example.com",
			LandlordName:  "Olivia Owner",
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
		}, nil)

		guarantorID := "guarantor-1"
		event.GuarantorID = &guarantorID
		gomega.Expect(notifier.Handle(ctx, "invite-1", event)).To(gomega.Succeed())

		sent := emails.Sent()
		gomega.Expect(sent).To(gomega.HaveLen(1))
		gomega.Expect(sent[0].To).To(gomega.Equal("owner@example.com"))
		gomega.Expect(sent[0].Subject).To(gomega.Equal(usecases.CompletionSubject))
		gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("A guarantor was provided."))
	})

	ginkgo.It("should skip landlords without an email", func() {
		invites.EXPECT().GetByID(ctx, shareddomain.ID("invite-1")).Return(onboardingDomain.Invite{ID: "invite-1"}, nil)

		gomega.Expect(notifier.Handle(ctx, "invite-1", event)).To(gomega.Succeed())
		gomega.Expect(emails.Sent()).To(gomega.BeEmpty())
	})

	ginkgo.It("should fail on unknown invites so the message is reported", func() {
		invites.EXPECT().GetByID(ctx, shareddomain.ID("invite-1")).Return(onboardingDomain.Invite{}, usecases.ErrInviteNotFound)

		err := notifier.Handle(ctx, "invite-1", event)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
	})

	ginkgo.It("should reject foreign messages", func() {
		err := notifier.Handle(ctx, "invite-1", &avro.AvroLease{})
		gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("unexpected message type")))
	})
})

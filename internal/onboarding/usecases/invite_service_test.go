package usecases_test

import (
	"context"
	"errors"
	"time"

	"easyrent-server/internal/infra/notification"
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/usecases"
	propertyDomain "easyrent-server/internal/property/domain"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	mocknotification "easyrent-server/test/unit/doubles/infra/notification"
	mockusecases "easyrent-server/test/unit/doubles/onboarding/usecases"
	mockproperty "easyrent-server/test/unit/doubles/property/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("InviteService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockInviteRepository
		properties *mockproperty.MockPropertyService
		emails     *notification.LogClient
		service    *usecases.SimpleInviteService
		invite     onboardingDomain.Invite
		property   propertyDomain.Property
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockInviteRepository(ctrl)
		properties = mockproperty.NewMockPropertyService(ctrl)
		emails = notification.NewLogClient()
		service = usecases.NewInviteService(repository, properties, usecases.NewMailer(emails, "https://app.easyrent.example/"))

		start := utils.Today(time.UTC).AddMonths(1)
		var err error
		invite, err = onboardingDomain.NewInviteBuilder().
			WithLandlord(shareddomain.Principal{UserID: "landlord-1", Email: "owner@example.com", Name: "Olivia Owner"}).
			WithPropertyID("property-1").
			WithTenant("Jane", "Doe", "jane+test@example.com", "+33612345678").
			WithTerm(leaseDomain.LeaseTerm{Start: start, End: start.AddMonths(12)}).
			WithRentAmount(850).
			WithDepositAmount(1700).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		property = propertyDomain.Property{
			ID:      "property-1",
			OwnerID: "landlord-1",
			Address: propertyDomain.Address{Street: "12 Rue de la Paix", PostalCode: "75002", City: "Paris", Country: "France"},
		}
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("CreateInvite", func() {
		ginkgo.It("should store the invite and email the tenant", func() {
			properties.EXPECT().GetAvailableProperty(ctx, shareddomain.ID("landlord-1"), shareddomain.ID("property-1")).Return(property, nil)
			gomock.InOrder(
				repository.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, i onboardingDomain.Invite) error {
						gomega.Expect(i.EmailSent).To(gomega.BeFalse())
						return nil
					}),
				repository.EXPECT().Update(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, i onboardingDomain.Invite) error {
						gomega.Expect(i.EmailSent).To(gomega.BeTrue())
						return nil
					}),
			)

			created, err := service.CreateInvite(ctx, invite)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.EmailSent).To(gomega.BeTrue())

			sent := emails.Sent()
			gomega.Expect(sent).To(gomega.HaveLen(1))
			gomega.Expect(sent[0].To).To(gomega.Equal("jane+test@example.com"))
			gomega.Expect(sent[0].Subject).To(gomega.Equal("Welcome to EasyRent - Complete Your Tenant Profile"))
			gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("Welcome to EasyRent, Jane!"))
			gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("12 Rue de la Paix, 75002 Paris, France"))
			gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("Complete Your Profile"))
			gomega.Expect(sent[0].Body).To(gomega.ContainSubstring(
				"https://app.easyrent.example/onboarding?email=jane%2Btest%40example.com&token=" + invite.Token))
		})

		ginkgo.It("should keep the invite when the email cannot be sent", func() {
			failing := mocknotification.NewMockNotificationClient(ctrl)
			failing.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(&notification.NotificationError{Message: "MailerSend API error"})
			service = usecases.NewInviteService(repository, properties, usecases.NewMailer(failing, "https://app.easyrent.example"))

			properties.EXPECT().GetAvailableProperty(ctx, gomock.Any(), gomock.Any()).Return(property, nil)
			repository.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			repository.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

			created, err := service.CreateInvite(ctx, invite)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.ID).To(gomega.Equal(invite.ID))
			gomega.Expect(created.EmailSent).To(gomega.BeFalse())
		})

		ginkgo.It("should refuse a leased property", func() {
			properties.EXPECT().GetAvailableProperty(ctx, gomock.Any(), gomock.Any()).Return(propertyDomain.Property{}, propertyUsecases.ErrPropertyUnavailable)
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := service.CreateInvite(ctx, invite)
			gomega.Expect(err).To(gomega.MatchError(propertyUsecases.ErrPropertyUnavailable))
			gomega.Expect(emails.Sent()).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("GetInvite", func() {
		ginkgo.It("should hide invites of other landlords", func() {
			repository.EXPECT().GetByID(ctx, invite.ID).Return(invite, nil)

			_, err := service.GetInvite(ctx, "landlord-2", invite.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
		})
	})

	ginkgo.Context("VerifyInvite", func() {
		ginkgo.It("should return a pending invite", func() {
			repository.EXPECT().FindPendingByEmailAndToken(ctx, invite.Email, invite.Token).Return(invite, nil)

			found, err := service.VerifyInvite(ctx, invite.Email, invite.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(invite.ID))
		})

		ginkgo.It("should reject an expired invite", func() {
			expired := invite
			expired.ExpiresAt = utils.Time{Time: time.Now().Add(-time.Minute)}
			repository.EXPECT().FindPendingByEmailAndToken(ctx, invite.Email, invite.Token).Return(expired, nil)

			_, err := service.VerifyInvite(ctx, invite.Email, invite.Token)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteExpired))
		})

		ginkgo.It("should not look up empty credentials", func() {
			_, err := service.VerifyInvite(ctx, invite.Email, "")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
		})
	})

	ginkgo.Context("ExpireInvites", func() {
		ginkgo.It("should expire overdue invites and skip failed updates", func() {
			first := invite
			first.ID = "invite-1"
			first.ExpiresAt = utils.Time{Time: time.Now().Add(-time.Hour)}
			second := first
			second.ID = "invite-2"

			repository.EXPECT().FindAllPendingExpiredBefore(ctx, gomock.Any()).Return([]onboardingDomain.Invite{first, second}, nil)
			repository.EXPECT().Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, i onboardingDomain.Invite) error {
					gomega.Expect(i.Status).To(gomega.Equal(onboardingDomain.InviteExpired))
					if i.ID == "invite-2" {
						return errors.New("connection reset")
					}
					return nil
				}).Times(2)

			count, err := service.ExpireInvites(ctx)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(1))
		})

		ginkgo.It("should run as a cron job", func() {
			invites := mockusecases.NewMockInviteService(ctrl)
			invites.EXPECT().ExpireInvites(gomock.Any()).Return(0, nil)

			job := usecases.NewExpiryJob(invites)
			gomega.Expect(job.Name()).To(gomega.Equal("invite_expiry"))
			gomega.Expect(job.Execute(ctx)).To(gomega.Succeed())
		})
	})
})

var _ = ginkgo.Describe("Mailer", func() {
	ginkgo.It("should format amounts as euros", func() {
		mailer := usecases.NewMailer(notification.NewLogClient(), "https://app.easyrent.example")
		gomega.Expect(mailer.Money(1700)).To(gomega.ContainSubstring("1,700.00"))
		gomega.Expect(mailer.Money(1700)).To(gomega.ContainSubstring("€"))
	})

	ginkgo.It("should email the landlord when onboarding completes", func() {
		emails := notification.NewLogClient()
		mailer := usecases.NewMailer(emails, "https://app.easyrent.example")

		err := mailer.SendCompletion(context.Background(), onboardingDomain.Invite{
			LandlordEmail: "owner@example.com",
			LandlordName:  "Olivia Owner",
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
		}, false)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		sent := emails.Sent()
		gomega.Expect(sent).To(gomega.HaveLen(1))
		gomega.Expect(sent[0].To).To(gomega.Equal("owner@example.com"))
		gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("Jane Doe (jane@example.com) has completed"))
		gomega.Expect(sent[0].HTML).To(gomega.ContainSubstring("No guarantor was provided."))
	})
})

package persistence_test

import (
	"context"
	"time"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/persistence"
	"easyrent-server/internal/onboarding/persistence/internal"
	"easyrent-server/internal/onboarding/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("InviteRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleInviteRepository
		created    time.Time
	)

	newInvite := func(landlordID shareddomain.ID, email string) onboardingDomain.Invite {
		invite, err := onboardingDomain.NewInviteBuilder().
			WithLandlord(shareddomain.Principal{UserID: landlordID, Email: "owner@example.com", Name: "Olivia"}).
			WithPropertyID("property-1").
			WithTenant("Jane", "Doe", email, "+33612345678").
			WithTerm(leaseDomain.LeaseTerm{
				Start: utils.NewDate(2025, time.June, 1),
				End:   utils.NewDate(2026, time.May, 31),
			}).
			WithRentAmount(850).
			WithDepositAmount(1700).
			WithClock(created, utils.NewDate(2025, time.May, 10)).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return invite
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		created = time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)

		orm, err := sql.NewMemoryORM("", nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repository, err = persistence.NewInviteRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("should store the invite with its lease terms", func() {
		invite := newInvite("landlord-1", "jane@example.com")
		gomega.Expect(repository.Create(ctx, invite)).To(gomega.Succeed())

		stored, err := repository.GetByID(ctx, invite.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.Token).To(gomega.Equal(invite.Token))
		gomega.Expect(stored.LandlordEmail).To(gomega.Equal("owner@example.com"))
		gomega.Expect(stored.Term.Start.String()).To(gomega.Equal("2025-06-01"))
		gomega.Expect(stored.DepositAmount).To(gomega.Equal(1700.0))
		gomega.Expect(stored.Status).To(gomega.Equal(onboardingDomain.InvitePending))
	})

	ginkgo.It("should report missing invites", func() {
		_, err := repository.GetByID(ctx, "missing")
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
	})

	ginkgo.Context("FindPendingByEmailAndToken", func() {
		ginkgo.It("should match the email case insensitively", func() {
			invite := newInvite("landlord-1", "jane@example.com")
			gomega.Expect(repository.Create(ctx, invite)).To(gomega.Succeed())

			found, err := repository.FindPendingByEmailAndToken(ctx, "Jane@Example.com", invite.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(invite.ID))
		})

		ginkgo.It("should not find a completed invite", func() {
			invite := newInvite("landlord-1", "jane@example.com")
			gomega.Expect(repository.Create(ctx, invite)).To(gomega.Succeed())
			gomega.Expect(invite.Complete()).To(gomega.Succeed())
			gomega.Expect(repository.Update(ctx, invite)).To(gomega.Succeed())

			_, err := repository.FindPendingByEmailAndToken(ctx, "jane@example.com", invite.Token)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
		})

		ginkgo.It("should not find an invite with another token", func() {
			invite := newInvite("landlord-1", "jane@example.com")
			gomega.Expect(repository.Create(ctx, invite)).To(gomega.Succeed())

			_, err := repository.FindPendingByEmailAndToken(ctx, "jane@example.com", "guess")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteNotFound))
		})
	})

	ginkgo.It("should list the invites of a landlord", func() {
		gomega.Expect(repository.Create(ctx, newInvite("landlord-1", "a@example.com"))).To(gomega.Succeed())
		gomega.Expect(repository.Create(ctx, newInvite("landlord-1", "b@example.com"))).To(gomega.Succeed())
		gomega.Expect(repository.Create(ctx, newInvite("landlord-2", "c@example.com"))).To(gomega.Succeed())

		invites, total, err := repository.FindAllByLandlord(ctx, "landlord-1", usecases.Pagination{Limit: 1})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(total).To(gomega.Equal(2))
		gomega.Expect(invites).To(gomega.HaveLen(1))
	})

	ginkgo.It("should find pending invites past their deadline", func() {
		invite := newInvite("landlord-1", "jane@example.com")
		gomega.Expect(repository.Create(ctx, invite)).To(gomega.Succeed())

		found, err := repository.FindAllPendingExpiredBefore(ctx, created.Add(6*24*time.Hour))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(found).To(gomega.BeEmpty())

		found, err = repository.FindAllPendingExpiredBefore(ctx, created.Add(8*24*time.Hour))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(found).To(gomega.HaveLen(1))
		gomega.Expect(found[0].ID).To(gomega.Equal(invite.ID))
	})
})

var _ = ginkgo.Describe("ProfileRepository", func() {
	var (
		ctx        context.Context
		orm        sql.ORM
		repository *persistence.SimpleProfileRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		var err error
		orm, err = sql.NewMemoryORM("", nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repository, err = persistence.NewProfileRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("should store the emergency contact and document arrays", func() {
		profile := onboardingDomain.TenantProfile{
			ID:          "profile-1",
			InviteID:    "invite-1",
			DateOfBirth: utils.NewDate(1990, time.March, 14),
			Occupation:  "Engineer",
			EmergencyContact: onboardingDomain.EmergencyContact{
				Name:  "John Doe",
				Phone: "+33600000000",
				Email: "john@example.com",
			},
			IncomeProof: []string{"https://files.example.com/payslip.pdf"},
		}
		gomega.Expect(repository.CreateProfile(ctx, profile)).To(gomega.Succeed())
		gomega.Expect(repository.CreateDocuments(ctx, onboardingDomain.TenantDocuments{
			ID:         "documents-1",
			ProfileID:  "profile-1",
			IDDocument: []string{"https://files.example.com/passport.pdf"},
		})).To(gomega.Succeed())

		var storedProfile internal.TenantProfile
		gomega.Expect(orm.First(&storedProfile, "id = ?", "profile-1").Error()).To(gomega.Succeed())
		gomega.Expect(storedProfile.EmergencyContact.Data.Name).To(gomega.Equal("John Doe"))
		gomega.Expect(storedProfile.IncomeProof.Data).To(gomega.ConsistOf("https://files.example.com/payslip.pdf"))
		gomega.Expect(storedProfile.DateOfBirth.String()).To(gomega.Equal("1990-03-14"))

		var storedDocuments internal.TenantDocuments
		gomega.Expect(orm.First(&storedDocuments, "tenant_profile_id = ?", "profile-1").Error()).To(gomega.Succeed())
		gomega.Expect(storedDocuments.IDDocument.Data).To(gomega.HaveLen(1))
		gomega.Expect(storedDocuments.ProofOfIncome.Data).To(gomega.BeEmpty())
	})
})

package usecases_test

import (
	"context"
	"errors"
	"time"

	"easyrent-server/internal/infra/storage"
	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	mocklease "easyrent-server/test/unit/doubles/lease/usecases"
	mockusecases "easyrent-server/test/unit/doubles/onboarding/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("AcceptService", func() {
	var (
		ctx      context.Context
		ctrl     *gomock.Controller
		invites  *mockusecases.MockInviteService
		inviteDB *mockusecases.MockInviteRepository
		tenants  *mockusecases.MockTenantRepository
		leases   *mocklease.MockLeaseService
		service  *usecases.SimpleAcceptService
		invite   onboardingDomain.Invite
		request  usecases.AcceptRequest
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		invites = mockusecases.NewMockInviteService(ctrl)
		inviteDB = mockusecases.NewMockInviteRepository(ctrl)
		tenants = mockusecases.NewMockTenantRepository(ctrl)
		leases = mocklease.NewMockLeaseService(ctrl)
		orchestrator := submission.NewOrchestrator(storage.NewMemoryStorage("https://files.example.com"), nil)
		service = usecases.NewAcceptService(invites, inviteDB, tenants, leases, orchestrator)

		start := utils.NewDate(2025, time.June, 1)
		invite = onboardingDomain.Invite{
			ID:            "invite-1",
			LandlordID:    "landlord-1",
			PropertyID:    "property-1",
			Email:         "jane@example.com",
			FirstName:     "Jane",
			LastName:      "Doe",
			Phone:         "+33612345678",
			Term:          leaseDomain.LeaseTerm{Start: start, End: start.AddMonths(12)},
			RentAmount:    850,
			DepositAmount: 1700,
			Status:        onboardingDomain.InvitePending,
		}
		request = usecases.AcceptRequest{Email: "jane@example.com", Token: "token-1", FirstName: "Janet"}
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("should create the tenant and an active lease, then complete the invite", func() {
		var (
			tenant onboardingDomain.Tenant
			lease  leaseDomain.Lease
		)

		invites.EXPECT().VerifyInvite(ctx, "jane@example.com", "token-1").Return(invite, nil)
		gomock.InOrder(
			tenants.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, t onboardingDomain.Tenant) error {
					tenant = t
					return nil
				}),
			leases.EXPECT().CreateLease(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, l leaseDomain.Lease) error {
					lease = l
					return nil
				}),
			inviteDB.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, i onboardingDomain.Invite) error {
					gomega.Expect(i.Status).To(gomega.Equal(onboardingDomain.InviteCompleted))
					return nil
				}),
		)

		acceptance, err := service.AcceptInvite(ctx, request)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(acceptance.TenantID).To(gomega.Equal(tenant.ID))
		gomega.Expect(acceptance.LeaseID).To(gomega.Equal(lease.ID))
		gomega.Expect(acceptance.JournalID).NotTo(gomega.BeEmpty())

		gomega.Expect(tenant.FirstName).To(gomega.Equal("Janet"))
		gomega.Expect(tenant.LandlordID).To(gomega.Equal(shareddomain.ID("landlord-1")))

		gomega.Expect(lease.Status).To(gomega.Equal(leaseDomain.StatusActive))
		gomega.Expect(lease.OwnerID).To(gomega.Equal(shareddomain.ID("landlord-1")))
		gomega.Expect(lease.TenantID).To(gomega.Equal(tenant.ID))
		gomega.Expect(lease.DepositAmount).To(gomega.Equal(1700.0))
		gomega.Expect(lease.Term).To(gomega.Equal(invite.Term))
	})

	ginkgo.It("should leave the invite pending when the property was leased meanwhile", func() {
		invites.EXPECT().VerifyInvite(ctx, gomock.Any(), gomock.Any()).Return(invite, nil)
		tenants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		leases.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(propertyUsecases.ErrPropertyUnavailable)
		inviteDB.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.AcceptInvite(ctx, request)
		gomega.Expect(submission.PhaseOf(err)).To(gomega.Equal(submission.PhaseDependents))
		gomega.Expect(errors.Is(err, propertyUsecases.ErrPropertyUnavailable)).To(gomega.BeTrue())
	})

	ginkgo.It("should not write anything for an expired invite", func() {
		invites.EXPECT().VerifyInvite(ctx, gomock.Any(), gomock.Any()).Return(onboardingDomain.Invite{}, usecases.ErrInviteExpired)
		tenants.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.AcceptInvite(ctx, request)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrInviteExpired))
	})

	ginkgo.It("should reject an invalid phone correction before writing", func() {
		request.Phone = "0612"
		invites.EXPECT().VerifyInvite(ctx, gomock.Any(), gomock.Any()).Return(invite, nil)
		tenants.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := service.AcceptInvite(ctx, request)
		gomega.Expect(err).To(gomega.MatchError(onboardingDomain.ErrInvalidPhone))
	})
})

package usecases_test

import (
	"context"
	"errors"
	"time"

	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	"easyrent-server/internal/lease/usecases"
	propertyDomain "easyrent-server/internal/property/domain"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	mockusecases "easyrent-server/test/unit/doubles/lease/usecases"
	mockproperty "easyrent-server/test/unit/doubles/property/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("LeaseService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockLeaseRepository
		properties *mockproperty.MockPropertyService
		service    *usecases.SimpleLeaseService
		ownerID    shareddomain.ID
	)

	newLease := func(status leaseDomain.Status) leaseDomain.Lease {
		return leaseDomain.Lease{
			ID:         "lease-1",
			Version:    1,
			OwnerID:    ownerID,
			TenantID:   "tenant-1",
			PropertyID: "property-1",
			Term: leaseDomain.LeaseTerm{
				Start: utils.NewDate(2025, time.June, 1),
				End:   utils.NewDate(2026, time.May, 31),
			},
			RentAmount:    900,
			DepositAmount: 1800,
			PaymentDueDay: 5,
			Status:        status,
		}
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockLeaseRepository(ctrl)
		properties = mockproperty.NewMockPropertyService(ctrl)
		service = usecases.NewLeaseService(repository, properties)
		ownerID = "owner-1"
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("CreateLease", func() {
		ginkgo.It("should require an available property for active leases", func() {
			lease := newLease(leaseDomain.StatusActive)
			properties.EXPECT().
				GetAvailableProperty(ctx, ownerID, lease.PropertyID).
				Return(propertyDomain.Property{}, propertyUsecases.ErrPropertyUnavailable)

			err := service.CreateLease(ctx, lease)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrPropertyLeased))
		})

		ginkgo.It("should only check ownership for drafts", func() {
			lease := newLease(leaseDomain.StatusDraft)
			properties.EXPECT().GetProperty(ctx, ownerID, lease.PropertyID).Return(propertyDomain.Property{ID: lease.PropertyID}, nil)
			repository.EXPECT().Create(ctx, lease).Return(nil)

			gomega.Expect(service.CreateLease(ctx, lease)).To(gomega.Succeed())
		})

		ginkgo.It("should pass not found properties through", func() {
			lease := newLease(leaseDomain.StatusDraft)
			properties.EXPECT().GetProperty(ctx, ownerID, lease.PropertyID).Return(propertyDomain.Property{}, propertyUsecases.ErrPropertyNotFound)

			err := service.CreateLease(ctx, lease)
			gomega.Expect(err).To(gomega.MatchError(propertyUsecases.ErrPropertyNotFound))
		})

		ginkgo.It("should reject invalid terms before any lookup", func() {
			lease := newLease(leaseDomain.StatusActive)
			lease.Term.End = lease.Term.Start

			err := service.CreateLease(ctx, lease)
			gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrEndNotAfterStart))
		})
	})

	ginkgo.Context("GetLease", func() {
		ginkgo.It("should hide leases of other owners", func() {
			lease := newLease(leaseDomain.StatusActive)
			lease.OwnerID = "owner-2"
			repository.EXPECT().GetByID(ctx, lease.ID).Return(lease, nil)

			_, err := service.GetLease(ctx, ownerID, lease.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrLeaseNotFound))
		})

		ginkgo.It("should wrap repository failures", func() {
			repository.EXPECT().GetByID(ctx, shareddomain.ID("lease-1")).Return(leaseDomain.Lease{}, errors.New("boom"))

			_, err := service.GetLease(ctx, ownerID, "lease-1")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("getting lease")))
		})
	})

	ginkgo.Context("UpdateLease", func() {
		ginkgo.It("should check the property when a draft becomes active", func() {
			existing := newLease(leaseDomain.StatusDraft)
			updated := newLease(leaseDomain.StatusActive)

			repository.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
			properties.EXPECT().GetAvailableProperty(ctx, ownerID, updated.PropertyID).Return(propertyDomain.Property{ID: updated.PropertyID}, nil)
			repository.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, lease leaseDomain.Lease) error {
				gomega.Expect(lease.Version).To(gomega.Equal(shareddomain.Version(2)))
				gomega.Expect(lease.Status).To(gomega.Equal(leaseDomain.StatusActive))
				return nil
			})

			gomega.Expect(service.UpdateLease(ctx, updated)).To(gomega.Succeed())
		})

		ginkgo.It("should not check the property of an already active lease", func() {
			existing := newLease(leaseDomain.StatusActive)
			updated := newLease(leaseDomain.StatusActive)
			updated.RentAmount = 950

			repository.EXPECT().GetByID(ctx, existing.ID).Return(existing, nil)
			repository.EXPECT().Update(ctx, gomock.Any()).Return(nil)

			gomega.Expect(service.UpdateLease(ctx, updated)).To(gomega.Succeed())
		})
	})

	ginkgo.Context("TerminateLease", func() {
		ginkgo.It("should store the terminated lease", func() {
			repository.EXPECT().GetByID(ctx, shareddomain.ID("lease-1")).Return(newLease(leaseDomain.StatusActive), nil)
			repository.EXPECT().Update(ctx, gomock.Any()).Return(nil)

			lease, err := service.TerminateLease(ctx, ownerID, "lease-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(lease.Status).To(gomega.Equal(leaseDomain.StatusTerminated))
		})

		ginkgo.It("should refuse expired leases", func() {
			repository.EXPECT().GetByID(ctx, shareddomain.ID("lease-1")).Return(newLease(leaseDomain.StatusExpired), nil)

			_, err := service.TerminateLease(ctx, ownerID, "lease-1")
			gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrInvalidTransition))
		})
	})

	ginkgo.Context("DeleteLease", func() {
		ginkgo.It("should delete owned leases", func() {
			repository.EXPECT().GetByID(ctx, shareddomain.ID("lease-1")).Return(newLease(leaseDomain.StatusDraft), nil)
			repository.EXPECT().Delete(ctx, shareddomain.ID("lease-1")).Return(nil)

			gomega.Expect(service.DeleteLease(ctx, ownerID, "lease-1")).To(gomega.Succeed())
		})
	})
})

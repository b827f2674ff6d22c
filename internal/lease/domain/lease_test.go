package domain_test

import (
	"time"

	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Lease", func() {
	term := leaseDomain.LeaseTerm{
		Start: utils.NewDate(2025, time.June, 1),
		End:   utils.NewDate(2026, time.May, 31),
	}

	builder := func() interface {
		Build() (leaseDomain.Lease, error)
	} {
		return leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithPropertyID("property-1").
			WithTerm(term).
			WithRentAmount(850.456).
			WithDepositAmount(1700)
	}

	ginkgo.It("should default to a draft due on the first", func() {
		lease, err := builder().Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(lease.ID).NotTo(gomega.BeEmpty())
		gomega.Expect(lease.Version).To(gomega.Equal(shareddomain.Version(1)))
		gomega.Expect(lease.Status).To(gomega.Equal(leaseDomain.StatusDraft))
		gomega.Expect(lease.PaymentDueDay).To(gomega.Equal(1))
		gomega.Expect(lease.RentAmount).To(gomega.Equal(850.46))
	})

	ginkgo.It("should require a tenant and a property", func() {
		_, err := leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithPropertyID("property-1").
			WithTerm(term).
			Build()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrTenantRequired))

		_, err = leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithTerm(term).
			Build()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrPropertyRequired))
	})

	ginkgo.It("should reject negative amounts and impossible due days", func() {
		_, err := leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithPropertyID("property-1").
			WithTerm(term).
			WithDepositAmount(-1).
			Build()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrInvalidAmount))

		_, err = leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithPropertyID("property-1").
			WithTerm(term).
			WithPaymentDueDay(32).
			Build()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrInvalidPaymentDueDay))
	})

	ginkgo.It("should reject unknown statuses", func() {
		_, err := leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithPropertyID("property-1").
			WithTerm(term).
			WithStatus("signed").
			Build()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrInvalidStatus))
	})

	ginkgo.It("should terminate active leases only once", func() {
		lease, err := leaseDomain.NewLeaseBuilder().
			WithOwnerID("owner-1").
			WithTenantID("tenant-1").
			WithPropertyID("property-1").
			WithTerm(term).
			WithStatus("active").
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(lease.IsActive()).To(gomega.BeTrue())

		gomega.Expect(lease.Terminate()).To(gomega.Succeed())
		gomega.Expect(lease.Status).To(gomega.Equal(leaseDomain.StatusTerminated))
		gomega.Expect(lease.Version).To(gomega.Equal(shareddomain.Version(2)))
		gomega.Expect(lease.Terminate()).To(gomega.MatchError(leaseDomain.ErrInvalidTransition))
	})
})

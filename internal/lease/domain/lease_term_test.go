package domain_test

import (
	"time"

	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("LeaseTerm", func() {
	date := func(value string) utils.Date {
		d, err := utils.ParseDate(value)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return d
	}

	ginkgo.DescribeTable("validation",
		func(start, end string, expected error) {
			err := leaseDomain.LeaseTerm{Start: date(start), End: date(end)}.Validate()
			if expected == nil {
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				return
			}
			gomega.Expect(err).To(gomega.MatchError(expected))
		},
		ginkgo.Entry("end equal to start", "2025-06-01", "2025-06-01", leaseDomain.ErrEndNotAfterStart),
		ginkgo.Entry("end before start", "2025-06-10", "2025-06-01", leaseDomain.ErrEndNotAfterStart),
		ginkgo.Entry("one day short of a month", "2025-06-01", "2025-06-30", leaseDomain.ErrTermTooShort),
		ginkgo.Entry("exactly one month", "2025-06-01", "2025-07-01", nil),
		ginkgo.Entry("month end clamps to february", "2025-01-31", "2025-02-28", nil),
		ginkgo.Entry("short february from january 31", "2025-01-31", "2025-02-27", leaseDomain.ErrTermTooShort),
		ginkgo.Entry("leap year february", "2024-01-31", "2024-02-29", nil),
		ginkgo.Entry("one year", "2025-06-01", "2026-05-31", nil),
	)

	ginkgo.It("should require both dates", func() {
		err := leaseDomain.LeaseTerm{Start: date("2025-06-01")}.Validate()
		gomega.Expect(err).To(gomega.MatchError(leaseDomain.ErrTermDatesRequired))
	})

	ginkgo.It("should include both ends", func() {
		term, err := leaseDomain.NewLeaseTerm(date("2025-06-01"), date("2025-12-31"))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(term.Contains(utils.NewDate(2025, time.June, 1))).To(gomega.BeTrue())
		gomega.Expect(term.Contains(utils.NewDate(2025, time.December, 31))).To(gomega.BeTrue())
		gomega.Expect(term.Contains(utils.NewDate(2026, time.January, 1))).To(gomega.BeFalse())
	})
})

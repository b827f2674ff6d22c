package sql_test

import (
	"easyrent-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("JSON column", func() {
	ginkgo.It("should round-trip values", func() {
		column := sql.NewJSON([]string{"water", "electricity"})

		value, err := column.Value()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(value).To(gomega.Equal(`["water","electricity"]`))

		var scanned sql.JSON[[]string]
		gomega.Expect(scanned.Scan([]byte(`["gas"]`))).To(gomega.Succeed())
		gomega.Expect(scanned.Data).To(gomega.Equal([]string{"gas"}))
	})

	ginkgo.It("should reset on NULL", func() {
		scanned := sql.NewJSON(map[string]int{"a": 1})
		gomega.Expect(scanned.Scan(nil)).To(gomega.Succeed())
		gomega.Expect(scanned.Data).To(gomega.BeNil())
	})

	ginkgo.It("should reject unsupported sources", func() {
		var scanned sql.JSON[[]string]
		gomega.Expect(scanned.Scan(42)).To(gomega.HaveOccurred())
	})
})

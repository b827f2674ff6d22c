package utils_test

import (
	"time"

	"easyrent-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Timezone", func() {
	ginkgo.Context("ValidateTimezone", func() {
		ginkgo.When("validating timezones", func() {
			ginkgo.It("should validate UTC timezone", func() {
				err := utils.ValidateTimezone("UTC")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})

			ginkgo.It("should validate Europe/Paris timezone", func() {
				err := utils.ValidateTimezone("Europe/Paris")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})
		})

		ginkgo.When("validating invalid timezones", func() {
			ginkgo.It("should return error for empty timezone", func() {
				err := utils.ValidateTimezone("")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should return error for random string timezone", func() {
				err := utils.ValidateTimezone("Invalid/Timezone/Name")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should return error for timezone with spaces", func() {
				err := utils.ValidateTimezone("America/New York")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Context("MustLoadLocation", func() {
		ginkgo.It("should fall back to UTC", func() {
			gomega.Expect(utils.MustLoadLocation("")).To(gomega.Equal(time.UTC))
			gomega.Expect(utils.MustLoadLocation("Nowhere/Land")).To(gomega.Equal(time.UTC))
		})

		ginkgo.It("should load a known zone", func() {
			gomega.Expect(utils.MustLoadLocation("Europe/Paris").String()).To(gomega.Equal("Europe/Paris"))
		})
	})
})

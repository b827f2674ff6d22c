package domain_test

import (
	"easyrent-server/internal/infra/utils"
	"easyrent-server/internal/property/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Attributes", func() {
	ginkgo.Context("ParseType", func() {
		ginkgo.It("should accept every known type", func() {
			for _, t := range domain.Types() {
				parsed, err := domain.ParseType(string(t))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(parsed).To(gomega.Equal(t))
			}
		})

		ginkgo.It("should reject unknown types", func() {
			_, err := domain.ParseType("castle")
			gomega.Expect(err).To(gomega.MatchError(domain.ErrUnknownPropertyType))
		})
	})

	ginkgo.Context("LandAttributes", func() {
		ginkgo.It("should derive services in a fixed order", func() {
			land := domain.LandAttributes{SewerService: true, WaterService: true, GasService: true}
			gomega.Expect(land.AvailableServices()).To(gomega.Equal([]string{"water", "gas", "sewer"}))
		})

		ginkgo.It("should ignore the internet flag", func() {
			land := domain.LandAttributes{InternetService: true}
			gomega.Expect(land.AvailableServices()).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("Columns", func() {
		ginkgo.It("should map garage attributes to their columns", func() {
			columns, err := domain.Columns(domain.GarageAttributes{
				GarageType:   "enclosed_box",
				SecureAccess: "key",
				ParkingSpots: 2,
				Height:       2.5,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(columns).To(gomega.HaveKeyWithValue("garage_type", "enclosed_box"))
			gomega.Expect(columns).To(gomega.HaveKeyWithValue("secure_access", "key"))
			gomega.Expect(columns).To(gomega.HaveKeyWithValue("has_interior_lighting", false))
			gomega.Expect(columns).NotTo(gomega.HaveKey("num_rooms"))
		})

		ginkgo.It("should share residential columns between homes and apartments", func() {
			residential := domain.Residential{NumRooms: 4, HeatingType: "gas", CO2EmissionClass: "B"}

			home, err := domain.Columns(domain.HomeAttributes{Residential: residential, GardenArea: utils.Float64Ptr(30)})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			apartment, err := domain.Columns(domain.ApartmentAttributes{Residential: residential, FloorNumber: 3})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(home).To(gomega.HaveKeyWithValue("num_rooms", 4))
			gomega.Expect(apartment).To(gomega.HaveKeyWithValue("num_rooms", 4))
			gomega.Expect(home).To(gomega.HaveKey("has_swimming_pool"))
			gomega.Expect(apartment).NotTo(gomega.HaveKey("has_swimming_pool"))
			gomega.Expect(apartment).To(gomega.HaveKeyWithValue("floor_number", 3))
		})

		ginkgo.It("should include the derived land services", func() {
			columns, err := domain.Columns(domain.LandAttributes{SoilType: "clay", ElectricityService: true})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(columns).To(gomega.HaveKeyWithValue("available_services", []string{"electricity"}))
		})

		ginkgo.It("should fail without attributes", func() {
			_, err := domain.Columns(nil)
			gomega.Expect(err).To(gomega.MatchError(domain.ErrUnknownPropertyType))
		})
	})
})

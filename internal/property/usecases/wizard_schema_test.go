package usecases_test

import (
	propertyDomain "easyrent-server/internal/property/domain"
	"easyrent-server/internal/property/usecases"
	"easyrent-server/internal/wizard"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func generalFields() map[string]any {
	return map[string]any{
		"title": "Box fermé Bastille",
		"address": map[string]any{
			"street":     "12 Rue des Lilas",
			"postalCode": "75011",
			"city":       "Paris",
			"country":    "France",
		},
		"totalArea":   18.0,
		"rentAmount":  120.0,
		"description": "Closed box in a secure building, close to the metro.",
		"photos":      []any{"https://cdn.example.com/box.jpg"},
	}
}

func specificFields(t propertyDomain.Type) map[string]any {
	switch t {
	case propertyDomain.TypeHome:
		return map[string]any{
			"num_rooms": 5.0, "num_bedrooms": 3.0, "num_bathrooms": 2.0,
			"heating_type": "gas", "property_condition": "good_condition",
			"energy_class": "C", "co2_emission_class": "D",
			"has_garden": true, "garden_area": 120.0,
		}
	case propertyDomain.TypeApartment:
		return map[string]any{
			"num_rooms": 3.0, "num_bedrooms": 2.0, "num_bathrooms": 1.0,
			"heating_type": "collective", "property_condition": "new",
			"energy_class": "B", "co2_emission_class": "B",
			"floor_number": 0.0, "has_elevator": true,
		}
	case propertyDomain.TypeGarage:
		return map[string]any{
			"garageType": "enclosed_box", "secureAccessType": "key",
			"parkingSpots": 1.0, "height": 2.1,
		}
	case propertyDomain.TypeLand:
		return map[string]any{
			"soilType": "loam", "landUseZone": "agricultural",
			"maxBuildingCoverage": 30.0, "waterService": true,
		}
	default:
		return map[string]any{
			"typeDescription":   "Warehouse",
			"propertyDetails":   "Former printing workshop with a loading bay.",
			"propertyCondition": "needs_renovation",
			"propertyCategory":  "industrial",
		}
	}
}

func propertyDraft(t propertyDomain.Type) wizard.Draft {
	fields := generalFields()
	fields["type"] = string(t)
	fields["specificFields"] = specificFields(t)
	return wizard.NewDraft(fields)
}

var requiredSpecificFields = map[propertyDomain.Type][]string{
	propertyDomain.TypeHome: {
		"num_rooms", "num_bedrooms", "num_bathrooms", "heating_type",
		"property_condition", "energy_class", "co2_emission_class",
	},
	propertyDomain.TypeApartment: {
		"num_rooms", "num_bedrooms", "num_bathrooms", "heating_type",
		"property_condition", "energy_class", "co2_emission_class", "floor_number",
	},
	propertyDomain.TypeGarage: {"garageType", "secureAccessType", "parkingSpots", "height"},
	propertyDomain.TypeLand:   {"soilType", "landUseZone"},
	propertyDomain.TypeOther:  {"typeDescription", "propertyDetails", "propertyCondition", "propertyCategory"},
}

func requiredSpecificEntries() []ginkgo.TableEntry {
	var entries []ginkgo.TableEntry
	for _, t := range propertyDomain.Types() {
		for _, field := range requiredSpecificFields[t] {
			entries = append(entries, ginkgo.Entry(string(t)+" "+field, t, field))
		}
	}
	return entries
}

var _ = ginkgo.Describe("Property wizard schema", func() {
	ginkgo.DescribeTable("should accept a complete draft of every type",
		func(t propertyDomain.Type) {
			definition := usecases.WizardDefinition()
			review := definition.Steps[definition.Last()]
			gomega.Expect(review.Schema.Validate(propertyDraft(t))).To(gomega.BeEmpty())
		},
		ginkgo.Entry("home", propertyDomain.TypeHome),
		ginkgo.Entry("apartment", propertyDomain.TypeApartment),
		ginkgo.Entry("garage", propertyDomain.TypeGarage),
		ginkgo.Entry("land", propertyDomain.TypeLand),
		ginkgo.Entry("other", propertyDomain.TypeOther),
	)

	ginkgo.DescribeTable("should report a missing required field at its path",
		func(t propertyDomain.Type, field string) {
			draft := propertyDraft(t).Delete("specificFields." + field)
			schema, err := usecases.AttributesSchema(t)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			issues := schema.Validate(draft)
			gomega.Expect(issues.Has("specificFields." + field)).To(gomega.BeTrue())
			gomega.Expect(issues.Map()["specificFields."+field]).To(gomega.Equal("is required"))
		},
		requiredSpecificEntries(),
	)

	ginkgo.DescribeTable("should fail the review step when a general field is missing",
		func(path string) {
			definition := usecases.WizardDefinition()
			review := definition.Steps[definition.Last()]

			issues := review.Schema.Validate(propertyDraft(propertyDomain.TypeGarage).Delete(path))
			gomega.Expect(issues.Paths()).To(gomega.ConsistOf(path))
		},
		ginkgo.Entry(nil, "type"),
		ginkgo.Entry(nil, "title"),
		ginkgo.Entry(nil, "address.street"),
		ginkgo.Entry(nil, "address.postalCode"),
		ginkgo.Entry(nil, "address.city"),
		ginkgo.Entry(nil, "address.country"),
		ginkgo.Entry(nil, "totalArea"),
		ginkgo.Entry(nil, "rentAmount"),
		ginkgo.Entry(nil, "description"),
		ginkgo.Entry(nil, "photos"),
	)

	ginkgo.It("should reject a garage type outside the allowed values", func() {
		draft := propertyDraft(propertyDomain.TypeGarage).Set("specificFields.garageType", "carport")
		schema, _ := usecases.AttributesSchema(propertyDomain.TypeGarage)

		issues := schema.Validate(draft)
		gomega.Expect(issues).To(gomega.HaveLen(1))
		gomega.Expect(issues[0].Code).To(gomega.Equal(wizard.CodeInvalidEnum))
	})

	ginkgo.It("should bound the building coverage of land", func() {
		draft := propertyDraft(propertyDomain.TypeLand).Set("specificFields.maxBuildingCoverage", 140.0)
		schema, _ := usecases.AttributesSchema(propertyDomain.TypeLand)

		gomega.Expect(schema.Validate(draft).Has("specificFields.maxBuildingCoverage")).To(gomega.BeTrue())
	})

	ginkgo.It("should default absent booleans to false", func() {
		attributes, err := usecases.AttributesFromDraft(propertyDraft(propertyDomain.TypeGarage))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		garage := attributes.(propertyDomain.GarageAttributes)
		gomega.Expect(garage.HasAutomaticDoor).To(gomega.BeFalse())
		gomega.Expect(garage.GarageType).To(gomega.Equal("enclosed_box"))
		gomega.Expect(garage.SecureAccess).To(gomega.Equal("key"))
	})

	ginkgo.It("should refuse an unknown type", func() {
		_, err := usecases.AttributesSchema("castle")
		gomega.Expect(err).To(gomega.MatchError(propertyDomain.ErrUnknownPropertyType))
	})

	ginkgo.It("should validate the general step on its own", func() {
		definition := usecases.WizardDefinition()
		general := definition.Steps[definition.Index("general")]

		draft := propertyDraft(propertyDomain.TypeHome).Set("title", "Box").Set("photos", []any{})
		issues := general.Schema.Validate(draft)
		gomega.Expect(issues.Paths()).To(gomega.ConsistOf("title", "photos"))
	})
})

package usecases

import (
	propertyDomain "easyrent-server/internal/property/domain"
	"easyrent-server/internal/wizard"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
)

const WizardKind wizard.Kind = "property"

var (
	heatingTypes       = []string{"gas", "electric", "wood", "heat_pump", "collective"}
	propertyConditions = []string{"new", "good_condition", "needs_renovation"}
	energyClasses      = []string{"A", "B", "C", "D", "E", "F", "G"}
	garageTypes        = []string{"enclosed_box", "outdoor_parking", "underground"}
	secureAccessTypes  = []string{"badge", "key", "keypad", "remote", "none"}
	soilTypes          = []string{"clay", "loam", "sand", "silt", "rock", "mixed"}
	landUseZones       = []string{"residential", "commercial", "industrial", "agricultural", "mixed"}
	propertyCategories = []string{"commercial", "industrial", "agricultural", "institutional", "mixed_use", "special_purpose"}
	occupancyStatuses  = []string{"vacant", "occupied", "partially_occupied"}
)

func specific(name string) string {
	return "specificFields." + name
}

func typeNames() []string {
	types := propertyDomain.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func typeSchema() wizard.Schema {
	return wizard.NewSchema(g.Object().
		Field("type", wizard.Value(wizard.OneOf(typeNames()...))).Required().
		UnknownStrip().
		MustBuild())
}

func generalSchema() wizard.Schema {
	return wizard.NewSchema(g.Object().
		Field("title", wizard.Value(wizard.Text(5, 100))).Required().
		Field("address.street", wizard.Value(wizard.Text(5, 200))).Required().
		Field("address.postalCode", wizard.Value(wizard.Text(4, 10))).Required().
		Field("address.city", wizard.Value(wizard.Text(2, 100))).Required().
		Field("address.country", wizard.Value(wizard.Text(2, 100))).Required().
		Field("totalArea", wizard.Value(wizard.Positive(), wizard.Max(100_000))).Required().
		Field("rentAmount", wizard.Value(wizard.Positive(), wizard.Max(1_000_000))).Required().
		Field("description", wizard.Value(wizard.Text(20, 2000))).Required().
		Field("photos", wizard.Value(wizard.Items(1, 10))).Required().
		UnknownStrip().
		MustBuild())
}

func residentialFields() []wizard.FieldSpec {
	return []wizard.FieldSpec{
		wizard.Field(specific("num_rooms"), wizard.Integer(), wizard.Positive()),
		wizard.Field(specific("num_bedrooms"), wizard.Integer(), wizard.Positive()),
		wizard.Field(specific("num_bathrooms"), wizard.Integer(), wizard.Positive()),
		wizard.Field(specific("heating_type"), wizard.OneOf(heatingTypes...)),
		wizard.Field(specific("property_condition"), wizard.OneOf(propertyConditions...)),
		wizard.Field(specific("energy_class"), wizard.OneOf(energyClasses...)),
		wizard.Field(specific("co2_emission_class"), wizard.OneOf(energyClasses...)),
	}
}

func bools(names ...string) []wizard.FieldSpec {
	fields := make([]wizard.FieldSpec, len(names))
	for i, name := range names {
		fields[i] = wizard.Bool(specific(name))
	}
	return fields
}

// AttributesSchema is the schema of the type specific section.
func AttributesSchema(t propertyDomain.Type) (wizard.Schema, error) {
	object, err := attributesObject(t)
	if err != nil {
		return wizard.Schema{}, err
	}
	return wizard.NewSchema(object), nil
}

// attributesObject returns the object schema of one variant. Every type has
// one; the switch keeps the table exhaustive.
func attributesObject(t propertyDomain.Type) (goskema.Schema[map[string]any], error) {
	switch t {
	case propertyDomain.TypeHome:
		fields := residentialFields()
		fields = append(fields, bools("has_garden", "has_garage", "has_swimming_pool", "has_terrace", "has_balcony", "has_basement", "has_air_conditioning")...)
		fields = append(fields,
			wizard.Optional(specific("garden_area"), wizard.Min(0)),
			wizard.Optional(specific("garage_capacity"), wizard.Min(0)),
			wizard.Optional(specific("garage_size"), wizard.Min(0)),
		)
		return wizard.Object(fields...), nil
	case propertyDomain.TypeApartment:
		fields := residentialFields()
		fields = append(fields, wizard.Field(specific("floor_number"), wizard.Integer(), wizard.Min(0)))
		fields = append(fields, bools("wheelchair_accessible", "has_elevator", "has_storage_room", "has_balcony", "has_terrace", "has_garage", "has_air_conditioning")...)
		fields = append(fields,
			wizard.Optional(specific("balcony_size"), wizard.Min(0)),
			wizard.Optional(specific("terrace_size"), wizard.Min(0)),
			wizard.Optional(specific("garage_size"), wizard.Min(0)),
		)
		return wizard.Object(fields...), nil
	case propertyDomain.TypeGarage:
		fields := []wizard.FieldSpec{
			wizard.Field(specific("garageType"), wizard.OneOf(garageTypes...)),
			wizard.Field(specific("secureAccessType"), wizard.OneOf(secureAccessTypes...)),
			wizard.Field(specific("parkingSpots"), wizard.Integer(), wizard.Positive()),
			wizard.Field(specific("height"), wizard.Positive()),
		}
		fields = append(fields, bools("interiorLighting", "electricalOutlet", "waterSupply", "securityCamera", "automaticDoor")...)
		return wizard.Object(fields...), nil
	case propertyDomain.TypeLand:
		fields := []wizard.FieldSpec{
			wizard.Field(specific("soilType"), wizard.OneOf(soilTypes...)),
			wizard.Field(specific("landUseZone"), wizard.OneOf(landUseZones...)),
			wizard.Optional(specific("maxBuildingCoverage"), wizard.Between(0, 100)),
		}
		fields = append(fields, bools("buildable", "serviced", "fenced", "vehicleAccess", "waterService", "electricityService", "gasService", "sewerService", "internetService")...)
		return wizard.Object(fields...), nil
	case propertyDomain.TypeOther:
		fields := []wizard.FieldSpec{
			wizard.Field(specific("typeDescription"), wizard.Text(5, 50)),
			wizard.Field(specific("propertyDetails"), wizard.Text(20, 1000)),
			wizard.Field(specific("propertyCondition"), wizard.OneOf(propertyConditions...)),
			wizard.Field(specific("propertyCategory"), wizard.OneOf(propertyCategories...)),
			wizard.Optional(specific("occupancyStatus"), wizard.OneOf(occupancyStatuses...)),
		}
		fields = append(fields, bools("parking", "loadingDock", "securitySystem", "fireSafety", "airConditioning")...)
		return wizard.Object(fields...), nil
	default:
		return nil, propertyDomain.ErrUnknownPropertyType
	}
}

func specificSchema() wizard.Schema {
	variants := map[string]goskema.Schema[map[string]any]{}
	for _, t := range propertyDomain.Types() {
		object, err := attributesObject(t)
		if err != nil {
			panic(err)
		}
		variants[string(t)] = object
	}
	return wizard.Switch("type", variants)
}

// WizardDefinition is the property creation wizard: type, general
// information, type specific fields and a review step that checks
// everything again.
func WizardDefinition() wizard.Definition {
	specificFields := specificSchema()

	return wizard.Definition{
		Kind: WizardKind,
		Steps: []wizard.Step{
			{ID: "type", Section: "type", Schema: typeSchema(), Renderer: "property_type"},
			{ID: "general", Section: "general", Schema: generalSchema(), Renderer: "property_general"},
			{ID: "specific", Section: "specificFields", Schema: specificFields, Renderer: "property_specific"},
			{ID: "review", Section: "review", Schema: generalSchema().Extend(specificFields), Renderer: "property_review"},
		},
	}
}

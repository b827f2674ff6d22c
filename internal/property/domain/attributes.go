package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownPropertyType = errors.New("unknown property type")

type Type string

const (
	TypeHome      Type = "home"
	TypeApartment Type = "apartment"
	TypeGarage    Type = "garage"
	TypeLand      Type = "land"
	TypeOther     Type = "other"
)

func Types() []Type {
	return []Type{TypeHome, TypeApartment, TypeGarage, TypeLand, TypeOther}
}

func ParseType(value string) (Type, error) {
	switch t := Type(value); t {
	case TypeHome, TypeApartment, TypeGarage, TypeLand, TypeOther:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPropertyType, value)
	}
}

// Attributes is the type specific block of a property. Exactly one variant
// exists per Type.
type Attributes interface {
	PropertyType() Type
	isAttributes()
}

// Residential fields shared by homes and apartments.
type Residential struct {
	NumRooms          int
	NumBedrooms       int
	NumBathrooms      int
	HeatingType       string
	PropertyCondition string
	EnergyClass       string
	CO2EmissionClass  string
}

type HomeAttributes struct {
	Residential
	HasGarden          bool
	GardenArea         *float64
	HasGarage          bool
	GarageCapacity     *float64
	GarageSize         *float64
	HasSwimmingPool    bool
	HasTerrace         bool
	HasBalcony         bool
	HasBasement        bool
	HasAirConditioning bool
}

type ApartmentAttributes struct {
	Residential
	FloorNumber          int
	WheelchairAccessible bool
	HasElevator          bool
	HasStorageRoom       bool
	HasBalcony           bool
	BalconySize          *float64
	HasTerrace           bool
	TerraceSize          *float64
	HasGarage            bool
	GarageSize           *float64
	HasAirConditioning   bool
}

type GarageAttributes struct {
	GarageType          string
	SecureAccess        string
	ParkingSpots        int
	Height              float64
	HasInteriorLighting bool
	HasElectricalOutlet bool
	HasWaterSupply      bool
	HasSecurityCamera   bool
	HasAutomaticDoor    bool
}

type LandAttributes struct {
	SoilType            string
	LandUseZone         string
	MaxBuildingCoverage *float64
	IsBuildable         bool
	IsServiced          bool
	IsFenced            bool
	HasVehicleAccess    bool
	WaterService        bool
	ElectricityService  bool
	GasService          bool
	SewerService        bool
	InternetService     bool
}

// AvailableServices lists the connected utilities in a fixed order.
func (a LandAttributes) AvailableServices() []string {
	services := []string{}
	for _, s := range []struct {
		name string
		on   bool
	}{
		{"water", a.WaterService},
		{"electricity", a.ElectricityService},
		{"gas", a.GasService},
		{"sewer", a.SewerService},
	} {
		if s.on {
			services = append(services, s.name)
		}
	}
	return services
}

type OtherAttributes struct {
	TypeDescription    string
	PropertyDetails    string
	PropertyCondition  string
	PropertyCategory   string
	OccupancyStatus    *string
	HasParking         bool
	HasLoadingDock     bool
	HasSecuritySystem  bool
	HasFireSafety      bool
	HasAirConditioning bool
}

func (HomeAttributes) PropertyType() Type      { return TypeHome }
func (ApartmentAttributes) PropertyType() Type { return TypeApartment }
func (GarageAttributes) PropertyType() Type    { return TypeGarage }
func (LandAttributes) PropertyType() Type      { return TypeLand }
func (OtherAttributes) PropertyType() Type     { return TypeOther }

func (HomeAttributes) isAttributes()      {}
func (ApartmentAttributes) isAttributes() {}
func (GarageAttributes) isAttributes()    {}
func (LandAttributes) isAttributes()      {}
func (OtherAttributes) isAttributes()     {}

// Columns flattens the attribute block into the insert columns of the
// properties table.
func Columns(attributes Attributes) (map[string]any, error) {
	switch a := attributes.(type) {
	case HomeAttributes:
		columns := residentialColumns(a.Residential)
		columns["has_garage"] = a.HasGarage
		columns["garage_capacity"] = a.GarageCapacity
		columns["garage_size"] = a.GarageSize
		columns["has_garden"] = a.HasGarden
		columns["garden_area"] = a.GardenArea
		columns["has_swimming_pool"] = a.HasSwimmingPool
		columns["has_terrace"] = a.HasTerrace
		columns["has_balcony"] = a.HasBalcony
		columns["has_basement"] = a.HasBasement
		columns["has_air_conditioning"] = a.HasAirConditioning
		return columns, nil
	case ApartmentAttributes:
		columns := residentialColumns(a.Residential)
		columns["floor_number"] = a.FloorNumber
		columns["wheelchair_accessible"] = a.WheelchairAccessible
		columns["has_elevator"] = a.HasElevator
		columns["has_storage_room"] = a.HasStorageRoom
		columns["has_balcony"] = a.HasBalcony
		columns["balcony_size"] = a.BalconySize
		columns["has_terrace"] = a.HasTerrace
		columns["terrace_size"] = a.TerraceSize
		columns["has_garage"] = a.HasGarage
		columns["garage_size"] = a.GarageSize
		columns["has_air_conditioning"] = a.HasAirConditioning
		return columns, nil
	case GarageAttributes:
		return map[string]any{
			"garage_type":           a.GarageType,
			"secure_access":         a.SecureAccess,
			"parking_spots":         a.ParkingSpots,
			"height":                a.Height,
			"has_interior_lighting": a.HasInteriorLighting,
			"has_electrical_outlet": a.HasElectricalOutlet,
			"has_water_supply":      a.HasWaterSupply,
			"has_security_camera":   a.HasSecurityCamera,
			"has_automatic_door":    a.HasAutomaticDoor,
		}, nil
	case LandAttributes:
		return map[string]any{
			"soil_type":             a.SoilType,
			"land_use_zone":         a.LandUseZone,
			"max_building_coverage": a.MaxBuildingCoverage,
			"is_buildable":          a.IsBuildable,
			"is_serviced":           a.IsServiced,
			"is_fenced":             a.IsFenced,
			"has_vehicle_access":    a.HasVehicleAccess,
			"has_internet_access":   a.InternetService,
			"available_services":    a.AvailableServices(),
		}, nil
	case OtherAttributes:
		return map[string]any{
			"other_type_description": a.TypeDescription,
			"specific_description":   a.PropertyDetails,
			"property_condition":     a.PropertyCondition,
			"property_category":      a.PropertyCategory,
			"occupancy_status":       a.OccupancyStatus,
			"has_parking":            a.HasParking,
			"has_loading_dock":       a.HasLoadingDock,
			"has_security_system":    a.HasSecuritySystem,
			"has_fire_safety":        a.HasFireSafety,
			"has_air_conditioning":   a.HasAirConditioning,
		}, nil
	case nil:
		return nil, fmt.Errorf("%w: missing attributes", ErrUnknownPropertyType)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPropertyType, attributes)
	}
}

func residentialColumns(r Residential) map[string]any {
	return map[string]any{
		"num_rooms":          r.NumRooms,
		"num_bedrooms":       r.NumBedrooms,
		"num_bathrooms":      r.NumBathrooms,
		"heating_type":       r.HeatingType,
		"property_condition": r.PropertyCondition,
		"energy_class":       r.EnergyClass,
		"co2_emission_class": r.CO2EmissionClass,
	}
}

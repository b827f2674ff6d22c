package usecases

import (
	propertyDomain "easyrent-server/internal/property/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/wizard"
)

// AttributesFromDraft reads the type specific section of a property draft
// into the variant selected by its type.
func AttributesFromDraft(draft wizard.Draft) (propertyDomain.Attributes, error) {
	t, err := propertyDomain.ParseType(draft.String("type"))
	if err != nil {
		return nil, err
	}

	schema, err := AttributesSchema(t)
	if err != nil {
		return nil, err
	}
	d := schema.Normalize(draft)

	switch t {
	case propertyDomain.TypeHome:
		return propertyDomain.HomeAttributes{
			Residential:        residentialFromDraft(d),
			HasGarden:          d.Bool(specific("has_garden")),
			GardenArea:         optionalFloat(d, specific("garden_area")),
			HasGarage:          d.Bool(specific("has_garage")),
			GarageCapacity:     optionalFloat(d, specific("garage_capacity")),
			GarageSize:         optionalFloat(d, specific("garage_size")),
			HasSwimmingPool:    d.Bool(specific("has_swimming_pool")),
			HasTerrace:         d.Bool(specific("has_terrace")),
			HasBalcony:         d.Bool(specific("has_balcony")),
			HasBasement:        d.Bool(specific("has_basement")),
			HasAirConditioning: d.Bool(specific("has_air_conditioning")),
		}, nil
	case propertyDomain.TypeApartment:
		floor, _ := d.Int(specific("floor_number"))
		return propertyDomain.ApartmentAttributes{
			Residential:          residentialFromDraft(d),
			FloorNumber:          floor,
			WheelchairAccessible: d.Bool(specific("wheelchair_accessible")),
			HasElevator:          d.Bool(specific("has_elevator")),
			HasStorageRoom:       d.Bool(specific("has_storage_room")),
			HasBalcony:           d.Bool(specific("has_balcony")),
			BalconySize:          optionalFloat(d, specific("balcony_size")),
			HasTerrace:           d.Bool(specific("has_terrace")),
			TerraceSize:          optionalFloat(d, specific("terrace_size")),
			HasGarage:            d.Bool(specific("has_garage")),
			GarageSize:           optionalFloat(d, specific("garage_size")),
			HasAirConditioning:   d.Bool(specific("has_air_conditioning")),
		}, nil
	case propertyDomain.TypeGarage:
		spots, _ := d.Int(specific("parkingSpots"))
		height, _ := d.Float(specific("height"))
		return propertyDomain.GarageAttributes{
			GarageType:          d.String(specific("garageType")),
			SecureAccess:        d.String(specific("secureAccessType")),
			ParkingSpots:        spots,
			Height:              height,
			HasInteriorLighting: d.Bool(specific("interiorLighting")),
			HasElectricalOutlet: d.Bool(specific("electricalOutlet")),
			HasWaterSupply:      d.Bool(specific("waterSupply")),
			HasSecurityCamera:   d.Bool(specific("securityCamera")),
			HasAutomaticDoor:    d.Bool(specific("automaticDoor")),
		}, nil
	case propertyDomain.TypeLand:
		return propertyDomain.LandAttributes{
			SoilType:            d.String(specific("soilType")),
			LandUseZone:         d.String(specific("landUseZone")),
			MaxBuildingCoverage: optionalFloat(d, specific("maxBuildingCoverage")),
			IsBuildable:         d.Bool(specific("buildable")),
			IsServiced:          d.Bool(specific("serviced")),
			IsFenced:            d.Bool(specific("fenced")),
			HasVehicleAccess:    d.Bool(specific("vehicleAccess")),
			WaterService:        d.Bool(specific("waterService")),
			ElectricityService:  d.Bool(specific("electricityService")),
			GasService:          d.Bool(specific("gasService")),
			SewerService:        d.Bool(specific("sewerService")),
			InternetService:     d.Bool(specific("internetService")),
		}, nil
	case propertyDomain.TypeOther:
		var occupancy *string
		if status := d.String(specific("occupancyStatus")); status != "" {
			occupancy = &status
		}
		return propertyDomain.OtherAttributes{
			TypeDescription:    d.String(specific("typeDescription")),
			PropertyDetails:    d.String(specific("propertyDetails")),
			PropertyCondition:  d.String(specific("propertyCondition")),
			PropertyCategory:   d.String(specific("propertyCategory")),
			OccupancyStatus:    occupancy,
			HasParking:         d.Bool(specific("parking")),
			HasLoadingDock:     d.Bool(specific("loadingDock")),
			HasSecuritySystem:  d.Bool(specific("securitySystem")),
			HasFireSafety:      d.Bool(specific("fireSafety")),
			HasAirConditioning: d.Bool(specific("airConditioning")),
		}, nil
	default:
		return nil, propertyDomain.ErrUnknownPropertyType
	}
}

// PropertyFromDraft builds the record a submitted draft turns into. Photos
// are the public URLs resolved by the upload phase.
func PropertyFromDraft(draft wizard.Draft, ownerID shareddomain.ID, photos []string) (propertyDomain.Property, error) {
	attributes, err := AttributesFromDraft(draft)
	if err != nil {
		return propertyDomain.Property{}, err
	}

	totalArea, _ := draft.Float("totalArea")
	rentAmount, _ := draft.Float("rentAmount")

	return propertyDomain.NewPropertyBuilder().
		WithOwnerID(ownerID).
		WithTitle(draft.String("title")).
		WithAddress(propertyDomain.Address{
			Street:     draft.String("address.street"),
			PostalCode: draft.String("address.postalCode"),
			City:       draft.String("address.city"),
			Country:    draft.String("address.country"),
		}).
		WithTotalArea(totalArea).
		WithRentAmount(rentAmount).
		WithDescription(draft.String("description")).
		WithPhotos(photos).
		WithAttributes(attributes).
		Build()
}

func residentialFromDraft(d wizard.Draft) propertyDomain.Residential {
	rooms, _ := d.Int(specific("num_rooms"))
	bedrooms, _ := d.Int(specific("num_bedrooms"))
	bathrooms, _ := d.Int(specific("num_bathrooms"))
	return propertyDomain.Residential{
		NumRooms:          rooms,
		NumBedrooms:       bedrooms,
		NumBathrooms:      bathrooms,
		HeatingType:       d.String(specific("heating_type")),
		PropertyCondition: d.String(specific("property_condition")),
		EnergyClass:       d.String(specific("energy_class")),
		CO2EmissionClass:  d.String(specific("co2_emission_class")),
	}
}

func optionalFloat(d wizard.Draft, path string) *float64 {
	v, ok := d.Float(path)
	if !ok {
		return nil
	}
	return &v
}

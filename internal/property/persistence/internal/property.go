package internal

import (
	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/infra/utils"
	propertyDomain "easyrent-server/internal/property/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

// Property is the flat properties row: common columns plus the nullable
// columns of every type specific block.
type Property struct {
	ID           string             `json:"id" gorm:"primaryKey"`
	Version      int                `json:"version"`
	UserID       string             `json:"user_id" gorm:"index;not null"`
	PropertyType string             `json:"property_type" gorm:"index;not null"`
	Title        string             `json:"title" gorm:"not null"`
	Street       string             `json:"street"`
	PostalCode   string             `json:"postal_code"`
	City         string             `json:"city"`
	Country      string             `json:"country"`
	TotalArea    float64            `json:"total_area"`
	RentAmount   float64            `json:"rent_amount"`
	Description  string             `json:"description"`
	Photos       sql.JSON[[]string] `json:"photos" gorm:"type:text"`

	NumRooms             *int     `json:"num_rooms,omitempty"`
	NumBedrooms          *int     `json:"num_bedrooms,omitempty"`
	NumBathrooms         *int     `json:"num_bathrooms,omitempty"`
	HeatingType          *string  `json:"heating_type,omitempty"`
	PropertyCondition    *string  `json:"property_condition,omitempty"`
	EnergyClass          *string  `json:"energy_class,omitempty"`
	CO2EmissionClass     *string  `json:"co2_emission_class,omitempty" gorm:"column:co2_emission_class"`
	HasGarden            *bool    `json:"has_garden,omitempty"`
	GardenArea           *float64 `json:"garden_area,omitempty"`
	HasGarage            *bool    `json:"has_garage,omitempty"`
	GarageCapacity       *float64 `json:"garage_capacity,omitempty"`
	GarageSize           *float64 `json:"garage_size,omitempty"`
	HasSwimmingPool      *bool    `json:"has_swimming_pool,omitempty"`
	HasTerrace           *bool    `json:"has_terrace,omitempty"`
	TerraceSize          *float64 `json:"terrace_size,omitempty"`
	HasBalcony           *bool    `json:"has_balcony,omitempty"`
	BalconySize          *float64 `json:"balcony_size,omitempty"`
	HasBasement          *bool    `json:"has_basement,omitempty"`
	HasAirConditioning   *bool    `json:"has_air_conditioning,omitempty"`
	FloorNumber          *int     `json:"floor_number,omitempty"`
	WheelchairAccessible *bool    `json:"wheelchair_accessible,omitempty"`
	HasElevator          *bool    `json:"has_elevator,omitempty"`
	HasStorageRoom       *bool    `json:"has_storage_room,omitempty"`

	GarageType          *string  `json:"garage_type,omitempty"`
	SecureAccess        *string  `json:"secure_access,omitempty"`
	ParkingSpots        *int     `json:"parking_spots,omitempty"`
	Height              *float64 `json:"height,omitempty"`
	HasInteriorLighting *bool    `json:"has_interior_lighting,omitempty"`
	HasElectricalOutlet *bool    `json:"has_electrical_outlet,omitempty"`
	HasWaterSupply      *bool    `json:"has_water_supply,omitempty"`
	HasSecurityCamera   *bool    `json:"has_security_camera,omitempty"`
	HasAutomaticDoor    *bool    `json:"has_automatic_door,omitempty"`

	SoilType            *string            `json:"soil_type,omitempty"`
	LandUseZone         *string            `json:"land_use_zone,omitempty"`
	MaxBuildingCoverage *float64           `json:"max_building_coverage,omitempty"`
	IsBuildable         *bool              `json:"is_buildable,omitempty"`
	IsServiced          *bool              `json:"is_serviced,omitempty"`
	IsFenced            *bool              `json:"is_fenced,omitempty"`
	HasVehicleAccess    *bool              `json:"has_vehicle_access,omitempty"`
	HasInternetAccess   *bool              `json:"has_internet_access,omitempty"`
	AvailableServices   sql.JSON[[]string] `json:"available_services" gorm:"type:text"`

	OtherTypeDescription *string `json:"other_type_description,omitempty"`
	SpecificDescription  *string `json:"specific_description,omitempty"`
	PropertyCategory     *string `json:"property_category,omitempty"`
	OccupancyStatus      *string `json:"occupancy_status,omitempty"`
	HasParking           *bool   `json:"has_parking,omitempty"`
	HasLoadingDock       *bool   `json:"has_loading_dock,omitempty"`
	HasSecuritySystem    *bool   `json:"has_security_system,omitempty"`
	HasFireSafety        *bool   `json:"has_fire_safety,omitempty"`

	CreatedAt utils.Time  `json:"created_at"`
	UpdatedAt utils.Time  `json:"updated_at"`
	DeletedAt *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Property) TableName() string {
	return "properties"
}

func FromProperty(value propertyDomain.Property) Property {
	result := Property{
		ID:           value.ID.String(),
		Version:      int(value.Version),
		UserID:       value.OwnerID.String(),
		PropertyType: string(value.Type),
		Title:        value.Title,
		Street:       value.Address.Street,
		PostalCode:   value.Address.PostalCode,
		City:         value.Address.City,
		Country:      value.Address.Country,
		TotalArea:    value.TotalArea,
		RentAmount:   value.RentAmount,
		Description:  value.Description,
		Photos:       sql.NewJSON(value.Photos),
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
		DeletedAt:    value.DeletedAt,
	}

	switch a := value.Attributes.(type) {
	case propertyDomain.HomeAttributes:
		result.setResidential(a.Residential)
		result.HasGarden = &a.HasGarden
		result.GardenArea = a.GardenArea
		result.HasGarage = &a.HasGarage
		result.GarageCapacity = a.GarageCapacity
		result.GarageSize = a.GarageSize
		result.HasSwimmingPool = &a.HasSwimmingPool
		result.HasTerrace = &a.HasTerrace
		result.HasBalcony = &a.HasBalcony
		result.HasBasement = &a.HasBasement
		result.HasAirConditioning = &a.HasAirConditioning
	case propertyDomain.ApartmentAttributes:
		result.setResidential(a.Residential)
		result.FloorNumber = &a.FloorNumber
		result.WheelchairAccessible = &a.WheelchairAccessible
		result.HasElevator = &a.HasElevator
		result.HasStorageRoom = &a.HasStorageRoom
		result.HasBalcony = &a.HasBalcony
		result.BalconySize = a.BalconySize
		result.HasTerrace = &a.HasTerrace
		result.TerraceSize = a.TerraceSize
		result.HasGarage = &a.HasGarage
		result.GarageSize = a.GarageSize
		result.HasAirConditioning = &a.HasAirConditioning
	case propertyDomain.GarageAttributes:
		result.GarageType = &a.GarageType
		result.SecureAccess = &a.SecureAccess
		result.ParkingSpots = &a.ParkingSpots
		result.Height = &a.Height
		result.HasInteriorLighting = &a.HasInteriorLighting
		result.HasElectricalOutlet = &a.HasElectricalOutlet
		result.HasWaterSupply = &a.HasWaterSupply
		result.HasSecurityCamera = &a.HasSecurityCamera
		result.HasAutomaticDoor = &a.HasAutomaticDoor
	case propertyDomain.LandAttributes:
		result.SoilType = &a.SoilType
		result.LandUseZone = &a.LandUseZone
		result.MaxBuildingCoverage = a.MaxBuildingCoverage
		result.IsBuildable = &a.IsBuildable
		result.IsServiced = &a.IsServiced
		result.IsFenced = &a.IsFenced
		result.HasVehicleAccess = &a.HasVehicleAccess
		result.HasInternetAccess = &a.InternetService
		result.AvailableServices = sql.NewJSON(a.AvailableServices())
	case propertyDomain.OtherAttributes:
		result.OtherTypeDescription = &a.TypeDescription
		result.SpecificDescription = &a.PropertyDetails
		result.PropertyCondition = &a.PropertyCondition
		result.PropertyCategory = &a.PropertyCategory
		result.OccupancyStatus = a.OccupancyStatus
		result.HasParking = &a.HasParking
		result.HasLoadingDock = &a.HasLoadingDock
		result.HasSecuritySystem = &a.HasSecuritySystem
		result.HasFireSafety = &a.HasFireSafety
		result.HasAirConditioning = &a.HasAirConditioning
	}

	return result
}

func (m *Property) setResidential(r propertyDomain.Residential) {
	m.NumRooms = &r.NumRooms
	m.NumBedrooms = &r.NumBedrooms
	m.NumBathrooms = &r.NumBathrooms
	m.HeatingType = &r.HeatingType
	m.PropertyCondition = &r.PropertyCondition
	m.EnergyClass = &r.EnergyClass
	m.CO2EmissionClass = &r.CO2EmissionClass
}

func (m Property) residential() propertyDomain.Residential {
	return propertyDomain.Residential{
		NumRooms:          utils.Deref(m.NumRooms),
		NumBedrooms:       utils.Deref(m.NumBedrooms),
		NumBathrooms:      utils.Deref(m.NumBathrooms),
		HeatingType:       utils.Deref(m.HeatingType),
		PropertyCondition: utils.Deref(m.PropertyCondition),
		EnergyClass:       utils.Deref(m.EnergyClass),
		CO2EmissionClass:  utils.Deref(m.CO2EmissionClass),
	}
}

// ToDomain fails only for rows whose type is not one of the known variants.
func (m Property) ToDomain() (propertyDomain.Property, error) {
	t, err := propertyDomain.ParseType(m.PropertyType)
	if err != nil {
		return propertyDomain.Property{}, err
	}

	result := propertyDomain.Property{
		ID:      shareddomain.ID(m.ID),
		Version: shareddomain.Version(m.Version),
		OwnerID: shareddomain.ID(m.UserID),
		Type:    t,
		Title:   m.Title,
		Address: propertyDomain.Address{
			Street:     m.Street,
			PostalCode: m.PostalCode,
			City:       m.City,
			Country:    m.Country,
		},
		TotalArea:   m.TotalArea,
		RentAmount:  m.RentAmount,
		Description: m.Description,
		Photos:      m.Photos.Data,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
	if result.Photos == nil {
		result.Photos = []string{}
	}

	switch t {
	case propertyDomain.TypeHome:
		result.Attributes = propertyDomain.HomeAttributes{
			Residential:        m.residential(),
			HasGarden:          utils.Deref(m.HasGarden),
			GardenArea:         m.GardenArea,
			HasGarage:          utils.Deref(m.HasGarage),
			GarageCapacity:     m.GarageCapacity,
			GarageSize:         m.GarageSize,
			HasSwimmingPool:    utils.Deref(m.HasSwimmingPool),
			HasTerrace:         utils.Deref(m.HasTerrace),
			HasBalcony:         utils.Deref(m.HasBalcony),
			HasBasement:        utils.Deref(m.HasBasement),
			HasAirConditioning: utils.Deref(m.HasAirConditioning),
		}
	case propertyDomain.TypeApartment:
		result.Attributes = propertyDomain.ApartmentAttributes{
			Residential:          m.residential(),
			FloorNumber:          utils.Deref(m.FloorNumber),
			WheelchairAccessible: utils.Deref(m.WheelchairAccessible),
			HasElevator:          utils.Deref(m.HasElevator),
			HasStorageRoom:       utils.Deref(m.HasStorageRoom),
			HasBalcony:           utils.Deref(m.HasBalcony),
			BalconySize:          m.BalconySize,
			HasTerrace:           utils.Deref(m.HasTerrace),
			TerraceSize:          m.TerraceSize,
			HasGarage:            utils.Deref(m.HasGarage),
			GarageSize:           m.GarageSize,
			HasAirConditioning:   utils.Deref(m.HasAirConditioning),
		}
	case propertyDomain.TypeGarage:
		result.Attributes = propertyDomain.GarageAttributes{
			GarageType:          utils.Deref(m.GarageType),
			SecureAccess:        utils.Deref(m.SecureAccess),
			ParkingSpots:        utils.Deref(m.ParkingSpots),
			Height:              utils.Deref(m.Height),
			HasInteriorLighting: utils.Deref(m.HasInteriorLighting),
			HasElectricalOutlet: utils.Deref(m.HasElectricalOutlet),
			HasWaterSupply:      utils.Deref(m.HasWaterSupply),
			HasSecurityCamera:   utils.Deref(m.HasSecurityCamera),
			HasAutomaticDoor:    utils.Deref(m.HasAutomaticDoor),
		}
	case propertyDomain.TypeLand:
		land := propertyDomain.LandAttributes{
			SoilType:            utils.Deref(m.SoilType),
			LandUseZone:         utils.Deref(m.LandUseZone),
			MaxBuildingCoverage: m.MaxBuildingCoverage,
			IsBuildable:         utils.Deref(m.IsBuildable),
			IsServiced:          utils.Deref(m.IsServiced),
			IsFenced:            utils.Deref(m.IsFenced),
			HasVehicleAccess:    utils.Deref(m.HasVehicleAccess),
			InternetService:     utils.Deref(m.HasInternetAccess),
		}
		for _, service := range m.AvailableServices.Data {
			switch service {
			case "water":
				land.WaterService = true
			case "electricity":
				land.ElectricityService = true
			case "gas":
				land.GasService = true
			case "sewer":
				land.SewerService = true
			}
		}
		result.Attributes = land
	case propertyDomain.TypeOther:
		result.Attributes = propertyDomain.OtherAttributes{
			TypeDescription:    utils.Deref(m.OtherTypeDescription),
			PropertyDetails:    utils.Deref(m.SpecificDescription),
			PropertyCondition:  utils.Deref(m.PropertyCondition),
			PropertyCategory:   utils.Deref(m.PropertyCategory),
			OccupancyStatus:    m.OccupancyStatus,
			HasParking:         utils.Deref(m.HasParking),
			HasLoadingDock:     utils.Deref(m.HasLoadingDock),
			HasSecuritySystem:  utils.Deref(m.HasSecuritySystem),
			HasFireSafety:      utils.Deref(m.HasFireSafety),
			HasAirConditioning: utils.Deref(m.HasAirConditioning),
		}
	}

	return result, nil
}

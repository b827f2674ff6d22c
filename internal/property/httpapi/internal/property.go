package internal

import (
	"log/slog"
	"time"

	propertyDomain "easyrent-server/internal/property/domain"
)

type AddressResponse struct {
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

type PropertyResponse struct {
	ID             string          `json:"id"`
	Version        int             `json:"version"`
	OwnerID        string          `json:"owner_id"`
	Type           string          `json:"type"`
	Title          string          `json:"title"`
	Address        AddressResponse `json:"address"`
	TotalArea      float64         `json:"total_area"`
	RentAmount     float64         `json:"rent_amount"`
	Description    string          `json:"description"`
	Photos         []string        `json:"photos"`
	SpecificFields map[string]any  `json:"specific_fields"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PropertyListResponse struct {
	Data []PropertyResponse `json:"data"`
}

func ToPropertyResponse(property propertyDomain.Property) PropertyResponse {
	specific, err := propertyDomain.Columns(property.Attributes)
	if err != nil {
		slog.Warn("property without type specific fields",
			slog.String("property_id", property.ID.String()),
			slog.String("error", err.Error()))
		specific = map[string]any{}
	}

	photos := property.Photos
	if photos == nil {
		photos = []string{}
	}

	return PropertyResponse{
		ID:      property.ID.String(),
		Version: int(property.Version),
		OwnerID: property.OwnerID.String(),
		Type:    string(property.Type),
		Title:   property.Title,
		Address: AddressResponse{
			Street:     property.Address.Street,
			PostalCode: property.Address.PostalCode,
			City:       property.Address.City,
			Country:    property.Address.Country,
		},
		TotalArea:      property.TotalArea,
		RentAmount:     property.RentAmount,
		Description:    property.Description,
		Photos:         photos,
		SpecificFields: specific,
		CreatedAt:      property.CreatedAt.Time,
		UpdatedAt:      property.UpdatedAt.Time,
	}
}

func ToPropertyResponses(properties []propertyDomain.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ToPropertyResponse(property)
	}
	return responses
}

package internal

import (
	"easyrent-server/internal/infra/utils"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
)

type MaintenanceRequest struct {
	PropertyID    string   `json:"property_id"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	AssignedTo    string   `json:"assigned_to"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
}

type CompleteRequest struct {
	ActualCost *float64 `json:"actual_cost"`
}

type MaintenanceResponse struct {
	ID             string      `json:"id"`
	Version        int         `json:"version"`
	PropertyID     string      `json:"property_id"`
	Description    string      `json:"description"`
	Priority       string      `json:"priority"`
	Status         string      `json:"status"`
	AssignedTo     string      `json:"assigned_to,omitempty"`
	EstimatedCost  *float64    `json:"estimated_cost,omitempty"`
	ActualCost     *float64    `json:"actual_cost,omitempty"`
	CompletionDate *utils.Time `json:"completion_date,omitempty"`
	CreatedAt      utils.Time  `json:"created_at"`
	UpdatedAt      utils.Time  `json:"updated_at"`
}

func ToMaintenanceResponse(request maintenanceDomain.Request) MaintenanceResponse {
	return MaintenanceResponse{
		ID:             request.ID.String(),
		Version:        int(request.Version),
		PropertyID:     request.PropertyID.String(),
		Description:    request.Description,
		Priority:       string(request.Priority),
		Status:         string(request.Status),
		AssignedTo:     request.AssignedTo,
		EstimatedCost:  request.EstimatedCost,
		ActualCost:     request.ActualCost,
		CompletionDate: request.CompletionDate,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}
}

func ToMaintenanceResponses(requests []maintenanceDomain.Request) []MaintenanceResponse {
	result := make([]MaintenanceResponse, len(requests))
	for i, request := range requests {
		result[i] = ToMaintenanceResponse(request)
	}
	return result
}

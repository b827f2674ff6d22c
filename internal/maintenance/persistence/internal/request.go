package internal

import (
	"easyrent-server/internal/infra/utils"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

type MaintenanceRequest struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	Version        int         `json:"version"`
	UserID         string      `json:"user_id" gorm:"index;not null"`
	PropertyID     string      `json:"property_id" gorm:"index;not null"`
	Description    string      `json:"description" gorm:"not null"`
	Priority       string      `json:"priority" gorm:"index"`
	Status         string      `json:"status" gorm:"index"`
	AssignedTo     *string     `json:"assigned_to,omitempty"`
	EstimatedCost  *float64    `json:"estimated_cost,omitempty"`
	ActualCost     *float64    `json:"actual_cost,omitempty"`
	CompletionDate *utils.Time `json:"completion_date,omitempty"`
	CreatedAt      utils.Time  `json:"created_at"`
	UpdatedAt      utils.Time  `json:"updated_at"`
	DeletedAt      *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

func FromRequest(value maintenanceDomain.Request) MaintenanceRequest {
	var assignedTo *string
	if value.AssignedTo != "" {
		assignedTo = &value.AssignedTo
	}

	return MaintenanceRequest{
		ID:             value.ID.String(),
		Version:        int(value.Version),
		UserID:         value.OwnerID.String(),
		PropertyID:     value.PropertyID.String(),
		Description:    value.Description,
		Priority:       string(value.Priority),
		Status:         string(value.Status),
		AssignedTo:     assignedTo,
		EstimatedCost:  value.EstimatedCost,
		ActualCost:     value.ActualCost,
		CompletionDate: value.CompletionDate,
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
		DeletedAt:      value.DeletedAt,
	}
}

func (m MaintenanceRequest) ToDomain() maintenanceDomain.Request {
	var assignedTo string
	if m.AssignedTo != nil {
		assignedTo = *m.AssignedTo
	}

	return maintenanceDomain.Request{
		ID:             shareddomain.ID(m.ID),
		Version:        shareddomain.Version(m.Version),
		OwnerID:        shareddomain.ID(m.UserID),
		PropertyID:     shareddomain.ID(m.PropertyID),
		Description:    m.Description,
		Priority:       maintenanceDomain.Priority(m.Priority),
		Status:         maintenanceDomain.Status(m.Status),
		AssignedTo:     assignedTo,
		EstimatedCost:  m.EstimatedCost,
		ActualCost:     m.ActualCost,
		CompletionDate: m.CompletionDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      m.DeletedAt,
	}
}

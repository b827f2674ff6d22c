package avro

import "time"

type AvroProperty struct {
	ID           string     `avro:"id"`
	Version      int        `avro:"version"`
	OwnerID      string     `avro:"owner_id"`
	PropertyType string     `avro:"property_type"`
	Title        string     `avro:"title"`
	City         string     `avro:"city"`
	Country      string     `avro:"country"`
	TotalArea    float64    `avro:"total_area"`
	RentAmount   float64    `avro:"rent_amount"`
	PhotoCount   int        `avro:"photo_count"`
	CreatedAt    time.Time  `avro:"created_at"`
	UpdatedAt    time.Time  `avro:"updated_at"`
	DeletedAt    *time.Time `avro:"deleted_at"`
}

type AvroInvite struct {
	ID            string    `avro:"id"`
	LandlordID    string    `avro:"landlord_id"`
	PropertyID    string    `avro:"property_id"`
	Email         string    `avro:"email"`
	FirstName     string    `avro:"first_name"`
	LastName      string    `avro:"last_name"`
	Status        string    `avro:"status"`
	LeaseStart    string    `avro:"lease_start"`
	LeaseEnd      string    `avro:"lease_end"`
	RentAmount    float64   `avro:"rent_amount"`
	DepositAmount float64   `avro:"deposit_amount"`
	EmailSent     bool      `avro:"email_sent"`
	ExpiresAt     time.Time `avro:"expires_at"`
	CreatedAt     time.Time `avro:"created_at"`
}

type AvroOnboardingCompleted struct {
	InviteID        string    `avro:"invite_id"`
	TenantProfileID string    `avro:"tenant_profile_id"`
	LandlordID      string    `avro:"landlord_id"`
	PropertyID      string    `avro:"property_id"`
	TenantEmail     string    `avro:"tenant_email"`
	TenantName      string    `avro:"tenant_name"`
	GuarantorID     *string   `avro:"guarantor_id"`
	CompletedAt     time.Time `avro:"completed_at"`
}

type AvroLease struct {
	ID            string    `avro:"id"`
	Version       int       `avro:"version"`
	OwnerID       string    `avro:"owner_id"`
	TenantID      string    `avro:"tenant_id"`
	PropertyID    string    `avro:"property_id"`
	StartDate     string    `avro:"start_date"`
	EndDate       string    `avro:"end_date"`
	RentAmount    float64   `avro:"rent_amount"`
	DepositAmount float64   `avro:"deposit_amount"`
	PaymentDueDay int       `avro:"payment_due_day"`
	Status        string    `avro:"status"`
	CreatedAt     time.Time `avro:"created_at"`
	UpdatedAt     time.Time `avro:"updated_at"`
}

type AvroMaintenanceRequest struct {
	ID             string     `avro:"id"`
	Version        int        `avro:"version"`
	OwnerID        string     `avro:"owner_id"`
	PropertyID     string     `avro:"property_id"`
	Description    string     `avro:"description"`
	Priority       string     `avro:"priority"`
	Status         string     `avro:"status"`
	AssignedTo     *string    `avro:"assigned_to"`
	EstimatedCost  *float64   `avro:"estimated_cost"`
	ActualCost     *float64   `avro:"actual_cost"`
	CompletionDate *time.Time `avro:"completion_date"`
	CreatedAt      time.Time  `avro:"created_at"`
	UpdatedAt      time.Time  `avro:"updated_at"`
}

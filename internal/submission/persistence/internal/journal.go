package internal

import (
	"time"

	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/submission"
)

type Journal struct {
	ID          string                      `gorm:"primaryKey"`
	Kind        string                      `gorm:"index;not null"`
	OwnerID     string                      `gorm:"index"`
	Status      string                      `gorm:"index;not null"`
	Steps       sql.JSON[[]submission.Step] `gorm:"type:text"`
	FailedPhase string
	FailedOp    string
	Error       string
	Attempts    int
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`
}

func (Journal) TableName() string {
	return "submission_journals"
}

func FromJournal(j submission.Journal) Journal {
	return Journal{
		ID:          j.ID,
		Kind:        j.Kind,
		OwnerID:     j.OwnerID,
		Status:      string(j.Status),
		Steps:       sql.NewJSON(j.Steps),
		FailedPhase: string(j.FailedPhase),
		FailedOp:    j.FailedOp,
		Error:       j.Error,
		Attempts:    j.Attempts,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func (j Journal) ToDomain() submission.Journal {
	return submission.Journal{
		ID:          j.ID,
		Kind:        j.Kind,
		OwnerID:     j.OwnerID,
		Status:      submission.JournalStatus(j.Status),
		Steps:       j.Steps.Data,
		FailedPhase: submission.Phase(j.FailedPhase),
		FailedOp:    j.FailedOp,
		Error:       j.Error,
		Attempts:    j.Attempts,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

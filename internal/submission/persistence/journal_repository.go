package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/submission/persistence/internal"
)

func NewJournalRepository(orm sql.ORM) (*SimpleJournalRepository, error) {
	err := orm.AutoMigrate(&internal.Journal{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleJournalRepository{
		orm: orm,
	}, nil
}

var _ submission.JournalRepository = (*SimpleJournalRepository)(nil)

type SimpleJournalRepository struct {
	orm sql.ORM
}

func (r *SimpleJournalRepository) Save(ctx context.Context, journal submission.Journal) error {
	entity := internal.FromJournal(journal)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving submission journal: %w", err)
	}
	return nil
}

func (r *SimpleJournalRepository) Get(ctx context.Context, id string) (submission.Journal, error) {
	var entity internal.Journal
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return submission.Journal{}, submission.ErrJournalNotFound
	}
	if err != nil {
		return submission.Journal{}, fmt.Errorf("getting submission journal: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleJournalRepository) FindCompensable(ctx context.Context, updatedBefore time.Time, limit int) ([]submission.Journal, error) {
	var entities []internal.Journal
	err := r.orm.
		WithContext(ctx).
		Where("status IN ? AND updated_at < ?", []string{string(submission.JournalFailed), string(submission.JournalRunning)}, updatedBefore).
		Order("updated_at ASC").
		Limit(limit).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("finding compensable journals: %w", err)
	}

	journals := make([]submission.Journal, len(entities))
	for i, entity := range entities {
		journals[i] = entity.ToDomain()
	}
	return journals, nil
}

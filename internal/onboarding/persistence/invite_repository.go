package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/persistence/internal"
	"easyrent-server/internal/onboarding/usecases"
	"easyrent-server/internal/shared_kernel/avro"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const _invitesTopic = "invites"

func NewInviteRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleInviteRepository, error) {
	publisher, err := publisherFactory.New(_invitesTopic, &avro.AvroInvite{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Invite{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleInviteRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.InviteRepository = (*SimpleInviteRepository)(nil)

type SimpleInviteRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleInviteRepository) Create(ctx context.Context, invite onboardingDomain.Invite) error {
	entity := internal.FromInvite(invite)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating invite in database: %w", err)
	}

	r.publish(ctx, invite)
	return nil
}

func (r *SimpleInviteRepository) GetByID(ctx context.Context, id shareddomain.ID) (onboardingDomain.Invite, error) {
	var entity internal.Invite
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return onboardingDomain.Invite{}, usecases.ErrInviteNotFound
	}

	if err != nil {
		return onboardingDomain.Invite{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleInviteRepository) FindPendingByEmailAndToken(ctx context.Context, email, token string) (onboardingDomain.Invite, error) {
	var entity internal.Invite
	err := r.orm.
		WithContext(ctx).
		Where("email = ? AND invite_token = ? AND status = ?",
			strings.ToLower(strings.TrimSpace(email)), token, string(onboardingDomain.InvitePending)).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return onboardingDomain.Invite{}, usecases.ErrInviteNotFound
	}

	if err != nil {
		return onboardingDomain.Invite{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleInviteRepository) FindAllByLandlord(
	ctx context.Context,
	landlordID shareddomain.ID,
	pagination usecases.Pagination,
) ([]onboardingDomain.Invite, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Invite{}).
		Where("user_id = ?", landlordID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Invite
	err = r.orm.
		WithContext(ctx).
		Where("user_id = ?", landlordID.String()).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	invites := make([]onboardingDomain.Invite, len(entities))
	for i, entity := range entities {
		invites[i] = entity.ToDomain()
	}
	return invites, int(total), nil
}

func (r *SimpleInviteRepository) FindAllPendingExpiredBefore(ctx context.Context, now time.Time) ([]onboardingDomain.Invite, error) {
	var entities []internal.Invite
	err := r.orm.
		WithContext(ctx).
		Where("status = ? AND expires_at <= ?", string(onboardingDomain.InvitePending), utils.Time{Time: now}).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	invites := make([]onboardingDomain.Invite, len(entities))
	for i, entity := range entities {
		invites[i] = entity.ToDomain()
	}
	return invites, nil
}

func (r *SimpleInviteRepository) Update(ctx context.Context, invite onboardingDomain.Invite) error {
	entity := internal.FromInvite(invite)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating invite in database: %w", err)
	}

	r.publish(ctx, invite)
	return nil
}

func (r *SimpleInviteRepository) publish(ctx context.Context, invite onboardingDomain.Invite) {
	err := r.publisher.Publish(ctx, pubsub.Key(invite.ID), convertToAvroInvite(invite))
	if err != nil {
		slog.Error("publishing invite",
			slog.String("invite_id", invite.ID.String()),
			slog.String("error", err.Error()))
	}
}

func convertToAvroInvite(invite onboardingDomain.Invite) *avro.AvroInvite {
	return &avro.AvroInvite{
		ID:            invite.ID.String(),
		LandlordID:    invite.LandlordID.String(),
		PropertyID:    invite.PropertyID.String(),
		Email:         invite.Email,
		FirstName:     invite.FirstName,
		LastName:      invite.LastName,
		Status:        string(invite.Status),
		LeaseStart:    invite.Term.Start.String(),
		LeaseEnd:      invite.Term.End.String(),
		RentAmount:    invite.RentAmount,
		DepositAmount: invite.DepositAmount,
		EmailSent:     invite.EmailSent,
		ExpiresAt:     invite.ExpiresAt.Time,
		CreatedAt:     invite.CreatedAt.Time,
	}
}

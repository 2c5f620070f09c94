package identityrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityRepository implements IdentityRepository using GORM.
type GormIdentityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIdentityRepository creates a new GORM identity repository.
func NewGormIdentityRepository(db *gorm.DB, tracker aggregateTracker) *GormIdentityRepository {
	return &GormIdentityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new identity to the database at version 1.
func (r *GormIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing identity to the database with a compare-and-set
// on (id, version).
func (r *GormIdentityRepository) Update(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).Model(&IdentityDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("identity", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an identity by ID.
func (r *GormIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithUsername reports whether any account already uses the username.
func (r *GormIdentityRepository) ExistsWithUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&IdentityDTO{}).
		Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsWithEmail reports whether any account already uses the email.
func (r *GormIdentityRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&IdentityDTO{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

package dnaservicerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/dnaservice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDNAServiceRepository implements DNAServiceRepository using GORM.
type GormDNAServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDNAServiceRepository creates a new GORM service repository.
func NewGormDNAServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormDNAServiceRepository {
	return &GormDNAServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service to the database at version 1.
func (r *GormDNAServiceRepository) Add(ctx context.Context, aggregate *dnaservice.Service) error {
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

// Update saves an existing service to the database with a compare-and-set
// on (id, version).
func (r *GormDNAServiceRepository) Update(ctx context.Context, aggregate *dnaservice.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("service", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service by ID.
func (r *GormDNAServiceRepository) Get(ctx context.Context, id kernel.UUID) (*dnaservice.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

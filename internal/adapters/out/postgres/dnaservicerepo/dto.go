// Package dnaservicerepo provides data transfer objects and mapping
// functions for DNA service persistence.
package dnaservicerepo

import (
	"fulfillment/internal/core/domain/model/dnaservice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting DNA service
// aggregates. The raw submission payload is stored verbatim.
type ServiceDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Units      int       `gorm:"not null"`
	Payload    string    `gorm:"type:text"`
	Kind       string    `gorm:"type:varchar(32)"`
	Status     string    `gorm:"type:varchar(16);index"`
	Version    int       `gorm:"not null"`
}

// TableName specifies the database table name for service entities.
func (ServiceDTO) TableName() string {
	return "dna_services"
}

// fromDomain converts a service domain aggregate to its database
// representation.
func fromDomain(aggregate *dnaservice.Service) ServiceDTO {
	return ServiceDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Units:      aggregate.Units(),
		Payload:    aggregate.Payload(),
		Kind:       aggregate.Kind().String(),
		Status:     aggregate.Status().String(),
		Version:    aggregate.Version(),
	}
}

// toDomain converts a database DTO to a service domain aggregate using
// RestoreService.
func toDomain(dto ServiceDTO) (*dnaservice.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := lifecycle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return dnaservice.RestoreService(
		id, customerID, dto.Units, dto.Payload, kindFromString(dto.Kind), status, dto.Version)
}

func kindFromString(s string) dnaservice.Kind {
	if s == dnaservice.DNAScoring.String() {
		return dnaservice.DNAScoring
	}
	return dnaservice.UnknownKind
}

// Package identityrepo provides data transfer objects and mapping functions
// for account persistence.
package identityrepo

import (
	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IdentityDTO represents the database structure for persisting accounts.
// Username and email carry unique indexes backing the registration checks.
type IdentityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	FirstName    string
	LastName     string
	Role         string `gorm:"type:varchar(16)"`
	PasswordHash string `gorm:"not null"`
	IsActive     bool
	Version      int `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
func (IdentityDTO) TableName() string {
	return "identities"
}

// fromDomain converts an identity domain aggregate to its database
// representation.
func fromDomain(aggregate *identity.Identity) IdentityDTO {
	return IdentityDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Email:        aggregate.Email(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Role:         aggregate.Role().String(),
		PasswordHash: aggregate.PasswordHash(),
		IsActive:     aggregate.IsActive(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to an identity domain aggregate using
// RestoreIdentity.
func toDomain(dto IdentityDTO) (*identity.Identity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := identity.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreIdentity(
		id, dto.Username, dto.Email, dto.FirstName, dto.LastName,
		role, dto.PasswordHash, dto.IsActive, dto.Version)
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
)

// IdentityRepository defines the persistence contract for identity
// aggregates. Credential storage itself (token issuance, sessions) lives
// outside the core; this repository only resolves identities and their
// contact addresses.
type IdentityRepository interface {
	// Add persists a new identity aggregate to storage.
	Add(ctx context.Context, aggregate *identity.Identity) error

	// Update persists changes to an existing identity aggregate with the
	// same compare-and-set semantics as OrderRepository.Update.
	Update(ctx context.Context, aggregate *identity.Identity) error

	// Get retrieves an identity aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)

	// ExistsWithUsername reports whether any identity already uses the
	// given username.
	ExistsWithUsername(ctx context.Context, username string) (bool, error)

	// ExistsWithEmail reports whether any identity already uses the given
	// email address.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/dnaservice"
	"fulfillment/internal/core/domain/model/kernel"
)

// DNAServiceRepository defines the persistence contract for DNA scoring
// service aggregates.
type DNAServiceRepository interface {
	// Add persists a new service aggregate to storage. A rejected
	// submission never reaches this method; only accepted submissions
	// create records.
	Add(ctx context.Context, aggregate *dnaservice.Service) error

	// Update persists changes to an existing service aggregate with the
	// same compare-and-set semantics as OrderRepository.Update.
	Update(ctx context.Context, aggregate *dnaservice.Service) error

	// Get retrieves a service aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dnaservice.Service, error)
}

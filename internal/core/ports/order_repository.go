package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// a compare-and-set on the aggregate's version: if a concurrent writer
	// advanced the version first, Update returns a VersionConflictError and
	// the caller may retry its read-modify-write cycle.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInReadyStatus retrieves all orders awaiting pickup. Used by the
	// reconciliation sweep to find orders to promote to done.
	GetAllInReadyStatus(ctx context.Context) ([]*order.Order, error)
}

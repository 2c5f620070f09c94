// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: every mutating
// request is a validated command object processed by a handler that checks
// the access policy, resolves references, applies domain invariants, and
// persists atomically through a unit of work.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composition that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DNAServiceRepoFactory provides access to the service repository within a transaction.
	DNAServiceRepoFactory interface {
		DNAServiceRepository() ports.DNAServiceRepository
	}

	// IdentityRepoFactory provides access to the identity repository within a transaction.
	IdentityRepoFactory interface {
		IdentityRepository() ports.IdentityRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderUoW manages transactions for order operations, which also resolve
	// the referenced product and owning customer.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		IdentityRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ServiceUoW manages transactions for DNA service operations, which also
	// resolve the owning customer.
	ServiceUoW interface {
		TxManager
		DNAServiceRepoFactory
		IdentityRepoFactory
	}

	// ServiceUoWFactory creates new service unit of work instances.
	ServiceUoWFactory interface {
		Create() ServiceUoW
	}

	// IdentityUoW manages transactions for identity-only operations.
	IdentityUoW interface {
		TxManager
		IdentityRepoFactory
	}

	// IdentityUoWFactory creates new identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// SweepUoW manages transactions for the reconciliation sweep, which
	// reads orders and the owning customers' contact addresses.
	SweepUoW interface {
		TxManager
		OrderRepoFactory
		IdentityRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances. The sweep
	// opens one unit of work per order so a failing item cannot poison the
	// rest of the pass.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)

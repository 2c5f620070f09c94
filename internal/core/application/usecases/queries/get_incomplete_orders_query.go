// Package queries contains read-only operations against the database.
// Unlike commands, queries bypass the domain model and read projections
// directly with raw SQL: no invariants are enforced on the way out.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetIncompleteOrdersQueryIsNotConstructed is returned when a
// GetIncompleteOrdersQuery was not created via its constructor.
var ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
	"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
)

// GetIncompleteOrdersQuery retrieves all orders that have not reached done.
// Staff see every order; other actors see only their own.
type GetIncompleteOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query for incomplete orders.
func NewGetIncompleteOrdersQuery(actor identity.Actor) (GetIncompleteOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetIncompleteOrdersQuery{}, err
	}

	return GetIncompleteOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetIncompleteOrdersQuery) Actor() identity.Actor {
	return q.actor
}

// GetIncompleteOrdersQueryResponse is one row of the incomplete-orders
// listing.
type GetIncompleteOrdersQueryResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	CustomerID  kernel.UUID
	Quantity    int
	TotalPrice  decimal.Decimal
	Description string
	Status      string
}

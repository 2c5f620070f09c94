package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetIdentitiesQueryIsNotConstructed is returned when a
// GetIdentitiesQuery was not created via its constructor.
var ErrGetIdentitiesQueryIsNotConstructed = errors.New(
	"GetIdentitiesQuery must be created via NewGetIdentitiesQuery constructor",
)

// GetIdentitiesQuery retrieves all registered accounts. Staff only.
type GetIdentitiesQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetIdentitiesQuery creates a query for the accounts listing.
func NewGetIdentitiesQuery(actor identity.Actor) (GetIdentitiesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetIdentitiesQuery{}, err
	}

	return GetIdentitiesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIdentitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetIdentitiesQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q GetIdentitiesQuery) Actor() identity.Actor {
	return q.actor
}

// GetIdentitiesQueryResponse is one row of the accounts listing. The
// password hash never leaves the database through this projection.
type GetIdentitiesQueryResponse struct {
	ID        kernel.UUID
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
}

package identity

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the acting identity of a request: who is calling, with which
// role, and whether the account is active. It is threaded explicitly through
// every access-policy check and command handler; there is no ambient
// request-identity state.
type Actor struct { //nolint:recvcheck //value reads, pointer construction
	id       kernel.UUID
	role     Role
	isActive bool

	guard guard.ConstructorGuard
}

// NewActor creates an actor snapshot with validation.
func NewActor(id kernel.UUID, role Role, isActive bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:       id,
		role:     role,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsActive reports whether the actor's account is active.
func (a Actor) IsActive() bool {
	return a.isActive
}

// IsStaff reports whether the actor carries unrestricted authorization.
func (a Actor) IsStaff() bool {
	return a.role.IsStaff()
}

// Owns reports whether the actor is the owner of the given resource.
func (a Actor) Owns(ownerID kernel.UUID) bool {
	return a.id.IsEqual(ownerID)
}

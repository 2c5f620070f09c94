package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrUpdateProfileCommandIsNotConstructed is returned when an
// UpdateProfileCommand was not created via its constructor.
var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request to replace an account's profile
// fields. All four are required; profile field rules live on the aggregate.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	identityID kernel.UUID
	username   string
	email      string
	firstName  string
	lastName   string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a profile.
func NewUpdateProfileCommand(
	actor identity.Actor,
	identityID kernel.UUID,
	username, email, firstName, lastName string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		username:  username,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setIdentityID(identityID),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateProfileCommand) Actor() identity.Actor {
	return c.actor
}

// IdentityID returns the identifier of the account to update.
func (c UpdateProfileCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// Username returns the new login name.
func (c UpdateProfileCommand) Username() string {
	return c.username
}

// Email returns the new contact address.
func (c UpdateProfileCommand) Email() string {
	return c.email
}

// FirstName returns the new given name.
func (c UpdateProfileCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new family name.
func (c UpdateProfileCommand) LastName() string {
	return c.lastName
}

func (c *UpdateProfileCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateProfileCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}
	c.identityID = identityID
	return nil
}

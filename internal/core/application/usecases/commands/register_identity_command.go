package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRegisterIdentityCommandIsNotConstructed is returned when a
// RegisterIdentityCommand was not created via its constructor.
var ErrRegisterIdentityCommandIsNotConstructed = errors.New(
	"RegisterIdentityCommand must be created via NewRegisterIdentityCommand constructor",
)

// RegisterIdentityCommand represents a request to create a new account.
// Staff may register any role; organizations may register customers only.
type RegisterIdentityCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	identityID kernel.UUID
	username   string
	email      string
	firstName  string
	lastName   string
	role       identity.Role
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterIdentityCommand creates a command to register an account. The
// password travels in plaintext here and is hashed by the handler; profile
// field rules are enforced by the Identity aggregate.
func NewRegisterIdentityCommand(
	actor identity.Actor,
	identityID kernel.UUID,
	username, email, firstName, lastName string,
	role identity.Role,
	password string,
) (RegisterIdentityCommand, error) {
	cmd := RegisterIdentityCommand{
		username:  username,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setIdentityID(identityID),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return RegisterIdentityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterIdentityCommand) Validate() error {
	return c.guard.Validate(ErrRegisterIdentityCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c RegisterIdentityCommand) Actor() identity.Actor {
	return c.actor
}

// IdentityID returns the identifier for the new account.
func (c RegisterIdentityCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// Username returns the login name.
func (c RegisterIdentityCommand) Username() string {
	return c.username
}

// Email returns the contact address.
func (c RegisterIdentityCommand) Email() string {
	return c.email
}

// FirstName returns the given name.
func (c RegisterIdentityCommand) FirstName() string {
	return c.firstName
}

// LastName returns the family name.
func (c RegisterIdentityCommand) LastName() string {
	return c.lastName
}

// Role returns the role of the new account.
func (c RegisterIdentityCommand) Role() identity.Role {
	return c.role
}

// Password returns the plaintext password.
func (c RegisterIdentityCommand) Password() string {
	return c.password
}

func (c *RegisterIdentityCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RegisterIdentityCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}
	c.identityID = identityID
	return nil
}

func (c *RegisterIdentityCommand) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterIdentityCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

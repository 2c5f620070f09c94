package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrActivateAccountCommandIsNotConstructed is returned when an
// ActivateAccountCommand was not created via its constructor.
var ErrActivateAccountCommandIsNotConstructed = errors.New(
	"ActivateAccountCommand must be created via NewActivateAccountCommand constructor",
)

// ActivateAccountCommand represents a request to flip an account's active
// flag. Non-staff callers must present their password as proof of
// possession; staff leave it empty.
type ActivateAccountCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	identityID kernel.UUID
	active     bool
	password   string

	guard guard.ConstructorGuard
}

// NewActivateAccountCommand creates a command to change an account's active
// flag.
func NewActivateAccountCommand(
	actor identity.Actor,
	identityID kernel.UUID,
	active bool,
	password string,
) (ActivateAccountCommand, error) {
	cmd := ActivateAccountCommand{
		active:   active,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setIdentityID(identityID),
	); err != nil {
		return ActivateAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateAccountCommand) Validate() error {
	return c.guard.Validate(ErrActivateAccountCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c ActivateAccountCommand) Actor() identity.Actor {
	return c.actor
}

// IdentityID returns the identifier of the account to update.
func (c ActivateAccountCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// Active returns the requested active flag.
func (c ActivateAccountCommand) Active() bool {
	return c.active
}

// Password returns the proof-of-possession password, possibly empty for
// staff.
func (c ActivateAccountCommand) Password() string {
	return c.password
}

func (c *ActivateAccountCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ActivateAccountCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}
	c.identityID = identityID
	return nil
}

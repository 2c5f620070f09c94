package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrChangePasswordCommandIsNotConstructed is returned when a
// ChangePasswordCommand was not created via its constructor.
var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents a request to replace an account's
// password. Non-staff callers must present the current password as proof of
// possession; staff resets leave it empty.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	actor           identity.Actor
	identityID      kernel.UUID
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change a password.
func NewChangePasswordCommand(
	actor identity.Actor,
	identityID kernel.UUID,
	currentPassword, newPassword string,
) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		currentPassword: currentPassword,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setIdentityID(identityID),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c ChangePasswordCommand) Actor() identity.Actor {
	return c.actor
}

// IdentityID returns the identifier of the account to update.
func (c ChangePasswordCommand) IdentityID() kernel.UUID {
	return c.identityID
}

// CurrentPassword returns the proof-of-possession password, possibly empty
// for staff resets.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the replacement plaintext password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangePasswordCommand) setIdentityID(identityID kernel.UUID) error {
	if err := identityID.Validate(); err != nil {
		return err
	}
	c.identityID = identityID
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("new password")
	}
	c.newPassword = newPassword
	return nil
}

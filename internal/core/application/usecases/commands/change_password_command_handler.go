package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ChangePasswordCommandHandler handles the business logic for password
// changes.
type ChangePasswordCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(uowFactory IdentityUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the password change command. Non-staff callers must
// present the current password; a mismatch is rejected as Forbidden.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionChangePassword, cmd.IdentityID()); err != nil {
		return err
	}

	passwordHash, err := identity.HashPassword(cmd.NewPassword())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.IdentityRepository()
	i, err := repo.Get(ctx, cmd.IdentityID())
	if err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() && !i.VerifyPassword(cmd.CurrentPassword()) {
		return errs.NewForbiddenError("current password does not match")
	}

	if err = i.ChangePassword(passwordHash); err != nil {
		return err
	}

	if err = repo.Update(ctx, i); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

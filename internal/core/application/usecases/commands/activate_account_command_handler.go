package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ActivateAccountCommandHandler handles the business logic for toggling an
// account's active flag.
type ActivateAccountCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

// NewActivateAccountCommandHandler creates a handler for account
// activation changes.
func NewActivateAccountCommandHandler(uowFactory IdentityUoWFactory) ActivateAccountCommandHandler {
	return ActivateAccountCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the activation command. Non-staff callers must be active
// and present their password; a deactivated account can only be reactivated
// by staff.
func (h ActivateAccountCommandHandler) Handle(ctx context.Context, cmd ActivateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() && !cmd.Actor().IsActive() {
		return errs.NewForbiddenError("account is inactive")
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionActivateAccount, cmd.IdentityID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if !cmd.Actor().IsStaff() && !i.VerifyPassword(cmd.Password()) {
		return errs.NewForbiddenError("password does not match")
	}

	i.SetActive(cmd.Active())

	if err = repo.Update(ctx, i); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

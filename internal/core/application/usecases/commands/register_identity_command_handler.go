package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// RegisterIdentityCommandHandler handles the business logic for account
// registration.
type RegisterIdentityCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

// NewRegisterIdentityCommandHandler creates a handler for registration.
func NewRegisterIdentityCommandHandler(uowFactory IdentityUoWFactory) RegisterIdentityCommandHandler {
	return RegisterIdentityCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the registration command. Username and email must be
// unique; the password is hashed before anything touches the database.
func (h RegisterIdentityCommandHandler) Handle(ctx context.Context, cmd RegisterIdentityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.AuthorizeRegister(cmd.Actor(), cmd.Role()); err != nil {
		return err
	}

	passwordHash, err := identity.HashPassword(cmd.Password())
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

	taken, err := repo.ExistsWithUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueIsInvalidError("username is already taken")
	}

	taken, err = repo.ExistsWithEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewValueIsInvalidError("email is already taken")
	}

	i, err := identity.NewIdentity(
		cmd.IdentityID(), cmd.Username(), cmd.Email(), cmd.FirstName(), cmd.LastName(), cmd.Role(), passwordHash)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, i); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

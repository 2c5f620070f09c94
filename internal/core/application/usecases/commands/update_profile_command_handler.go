package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// UpdateProfileCommandHandler handles the business logic for profile
// changes. Non-staff may only update their own profile.
type UpdateProfileCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory IdentityUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the profile update command. Uniqueness of username and
// email is rechecked when they change.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionUpdateProfile, cmd.IdentityID()); err != nil {
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

	if cmd.Username() != i.Username() {
		taken, checkErr := repo.ExistsWithUsername(ctx, cmd.Username())
		if checkErr != nil {
			return checkErr
		}
		if taken {
			return errs.NewValueIsInvalidError("username is already taken")
		}
	}

	if cmd.Email() != i.Email() {
		taken, checkErr := repo.ExistsWithEmail(ctx, cmd.Email())
		if checkErr != nil {
			return checkErr
		}
		if taken {
			return errs.NewValueIsInvalidError("email is already taken")
		}
	}

	if err = i.UpdateProfile(cmd.Username(), cmd.Email(), cmd.FirstName(), cmd.LastName()); err != nil {
		return err
	}

	if err = repo.Update(ctx, i); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

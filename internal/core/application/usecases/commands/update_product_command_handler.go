package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// UpdateProductCommandHandler handles the business logic for changing
// catalog products.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the product update command. Fails with NotFound when the
// product identifier does not resolve; non-staff callers are rejected
// before any read happens.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionUpdateProduct, cmd.Actor().ID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = p.SetUnitPrice(cmd.UnitPrice()); err != nil {
		return err
	}
	if desc := cmd.Description(); desc != nil {
		if err = p.SetDescription(*desc); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for partial order
// updates. Writes go through a compare-and-set on the aggregate version; a
// lost race against the reconciliation sweep is retried once against fresh
// state before the conflict surfaces to the caller.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order update command.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.execute(ctx, cmd)
	if errors.Is(err, errs.ErrVersionConflict) {
		err = h.execute(ctx, cmd)
	}

	return err
}

func (h UpdateOrderCommandHandler) execute(ctx context.Context, cmd UpdateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restricted := restrictedOrderFields(cmd.Status() != nil, cmd.TotalPrice() != nil)
	if err = h.policy.Authorize(cmd.Actor(), services.ActionUpdateOrder, o.CustomerID(), restricted...); err != nil {
		return err
	}

	if cmd.CustomerID() != nil {
		// Reassignment targets another identity's resources, so it is
		// authorized against the new owner as well.
		if err = h.policy.Authorize(cmd.Actor(), services.ActionUpdateOrder, *cmd.CustomerID()); err != nil {
			return err
		}

		customer, getErr := uow.IdentityRepository().Get(ctx, *cmd.CustomerID())
		if getErr != nil {
			return getErr
		}
		if err = o.AssignCustomer(customer.ID()); err != nil {
			return err
		}
	}

	if cmd.ProductID() != nil || cmd.Quantity() != nil {
		productID := o.ProductID()
		if cmd.ProductID() != nil {
			productID = *cmd.ProductID()
		}
		quantity := o.Quantity()
		if cmd.Quantity() != nil {
			quantity = *cmd.Quantity()
		}

		p, getErr := uow.ProductRepository().Get(ctx, productID)
		if getErr != nil {
			return getErr
		}
		if err = o.SetProduct(p.ID(), p.UnitPrice(), quantity); err != nil {
			return err
		}
	}

	if cmd.TotalPrice() != nil {
		if err = o.OverrideTotalPrice(*cmd.TotalPrice()); err != nil {
			return err
		}
	}
	if cmd.Description() != nil {
		if err = o.SetDescription(*cmd.Description()); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err = o.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order creation command. The order's owner is the
// actor unless a customer identifier is supplied; non-staff may not supply
// one for anybody but themself, nor set status or total price directly.
// Fails with NotFound when the owner or product does not resolve.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ownerID := cmd.Actor().ID()
	if cmd.CustomerID() != nil {
		ownerID = *cmd.CustomerID()
	}

	if err := h.policy.Authorize(
		cmd.Actor(), services.ActionCreateOrder, ownerID, restrictedOrderFields(cmd.Status() != nil, cmd.TotalPrice() != nil)...,
	); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.IdentityRepository().Get(ctx, ownerID)
	if err != nil {
		return err
	}

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(), p.ID(), customer.ID(), cmd.Quantity(), p.UnitPrice(), cmd.Description())
	if err != nil {
		return err
	}

	if cmd.TotalPrice() != nil {
		if err = o.OverrideTotalPrice(*cmd.TotalPrice()); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err = o.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// restrictedOrderFields maps the presence of status and total price in a
// request to the access policy's restricted-field list.
func restrictedOrderFields(hasStatus, hasTotalPrice bool) []services.RestrictedField {
	var fields []services.RestrictedField
	if hasStatus {
		fields = append(fields, services.FieldStatus)
	}
	if hasTotalPrice {
		fields = append(fields, services.FieldTotalPrice)
	}
	return fields
}

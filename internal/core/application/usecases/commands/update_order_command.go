package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an
// UpdateOrderCommand was not created via its constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Every field except the order identifier is optional; nil means "leave
// unchanged". Status and total price are restricted fields.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	orderID     kernel.UUID
	productID   *kernel.UUID
	customerID  *kernel.UUID
	quantity    *int
	description *string
	status      *lifecycle.Status
	totalPrice  *kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. Optional
// fields are validated only when present.
func NewUpdateOrderCommand(
	actor identity.Actor,
	orderID kernel.UUID,
	productID, customerID *kernel.UUID,
	quantity *int,
	description *string,
	status *lifecycle.Status,
	totalPrice *kernel.Price,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setCustomerID(customerID),
		cmd.setQuantity(quantity),
		cmd.setStatus(status),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateOrderCommand) Actor() identity.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the replacement product, or nil to leave it unchanged.
func (c UpdateOrderCommand) ProductID() *kernel.UUID {
	return c.productID
}

// CustomerID returns the new owner, or nil to leave ownership unchanged.
func (c UpdateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Quantity returns the new unit count, or nil to leave it unchanged.
func (c UpdateOrderCommand) Quantity() *int {
	return c.quantity
}

// Description returns the new description, or nil to leave it unchanged.
func (c UpdateOrderCommand) Description() *string {
	return c.description
}

// Status returns the requested status transition, or nil for none.
func (c UpdateOrderCommand) Status() *lifecycle.Status {
	return c.status
}

// TotalPrice returns the requested price override, or nil for none.
func (c UpdateOrderCommand) TotalPrice() *kernel.Price {
	return c.totalPrice
}

func (c *UpdateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setProductID(productID *kernel.UUID) error {
	if productID == nil {
		return nil
	}
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setQuantity(quantity *int) error {
	if quantity == nil {
		return nil
	}
	if *quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	c.quantity = quantity
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *lifecycle.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setTotalPrice(totalPrice *kernel.Price) error {
	if totalPrice == nil {
		return nil
	}
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	c.totalPrice = totalPrice
	return nil
}

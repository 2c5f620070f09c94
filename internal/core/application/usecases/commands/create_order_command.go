package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a
// CreateOrderCommand was not created via its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order for a product.
//
// Optional fields model request absence explicitly: a nil customerID means
// "the actor orders for themself", a nil totalPrice means "derive from unit
// price x quantity", a nil status means "start at waiting". Supplying
// totalPrice or status is a restricted-field write the access policy only
// grants to staff.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	orderID     kernel.UUID
	productID   kernel.UUID
	customerID  *kernel.UUID
	quantity    int
	description string
	status      *lifecycle.Status
	totalPrice  *kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Quantity must
// be positive; optional fields are validated only when present.
func NewCreateOrderCommand(
	actor identity.Actor,
	orderID, productID kernel.UUID,
	customerID *kernel.UUID,
	quantity int,
	description string,
	status *lifecycle.Status,
	totalPrice *kernel.Price,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
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
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the ordered product.
func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// CustomerID returns the identity the order is placed for, or nil when the
// actor orders for themself.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Quantity returns the ordered unit count.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Description returns the free-text order description, possibly empty.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Status returns the requested initial status, or nil for the default.
func (c CreateOrderCommand) Status() *lifecycle.Status {
	return c.status
}

// TotalPrice returns the requested price override, or nil for derivation.
func (c CreateOrderCommand) TotalPrice() *kernel.Price {
	return c.totalPrice
}

func (c *CreateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setStatus(status *lifecycle.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice *kernel.Price) error {
	if totalPrice == nil {
		return nil
	}
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	c.totalPrice = totalPrice
	return nil
}

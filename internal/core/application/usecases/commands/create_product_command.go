package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrCreateProductCommandIsNotConstructed is returned when a
// CreateProductCommand was not created via its constructor.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a staff request to add a catalog product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	productID   kernel.UUID
	name        string
	description string
	unitPrice   kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product. The name must
// not be empty and the unit price must be a constructed Price; the
// description may be empty.
func NewCreateProductCommand(
	actor identity.Actor,
	productID kernel.UUID,
	name, description string,
	unitPrice kernel.Price,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateProductCommand) Actor() identity.Actor {
	return c.actor
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// UnitPrice returns the price of a single unit.
func (c CreateProductCommand) UnitPrice() kernel.Price {
	return c.unitPrice
}

func (c *CreateProductCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	c.unitPrice = unitPrice
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrUpdateProductCommandIsNotConstructed is returned when an
// UpdateProductCommand was not created via its constructor.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a staff request to change a catalog
// product. Name and unit price are required; a nil description means
// "leave unchanged" while an empty one clears the field.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	productID   kernel.UUID
	name        string
	description *string
	unitPrice   kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	actor identity.Actor,
	productID kernel.UUID,
	name string,
	description *string,
	unitPrice kernel.Price,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setProductID(productID),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c UpdateProductCommand) Actor() identity.Actor {
	return c.actor
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description, or nil if it was absent from
// the request.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// UnitPrice returns the new unit price.
func (c UpdateProductCommand) UnitPrice() kernel.Price {
	return c.unitPrice
}

func (c *UpdateProductCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	c.unitPrice = unitPrice
	return nil
}

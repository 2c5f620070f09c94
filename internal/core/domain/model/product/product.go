package product

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// maxDescriptionLength bounds the free-text description column.
const maxDescriptionLength = 20000

// Product is the catalog entry orders reference. It is a standalone
// resource owned by the system; only staff may create or update it.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Unit price must be a constructed, non-negative Price
//   - Description is bounded text and may be empty
type Product struct {
	id          kernel.UUID
	name        string
	description string
	unitPrice   kernel.Price

	isConstructed bool
}

// NewProduct creates a Product with validation. This is the only way to
// create a valid Product besides restoring one from persistence.
func NewProduct(id kernel.UUID, name, description string, unitPrice kernel.Price) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.Rename(name),
		p.SetDescription(description),
		p.SetUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence. The same
// invariants apply as for NewProduct.
func RestoreProduct(id kernel.UUID, name, description string, unitPrice kernel.Price) (*Product, error) {
	return NewProduct(id, name, description, unitPrice)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text product description.
func (p *Product) Description() string {
	return p.description
}

// UnitPrice returns the price of a single unit.
func (p *Product) UnitPrice() kernel.Price {
	return p.unitPrice
}

// Rename changes the product name. The name must not be empty.
func (p *Product) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// SetDescription replaces the product description. Absence of a description
// in a request maps to an empty string here; oversized text is rejected.
func (p *Product) SetDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxDescriptionLength)
	}
	p.description = description
	return nil
}

// SetUnitPrice replaces the unit price.
func (p *Product) SetUnitPrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// maxDescriptionLength bounds the free-text description column.
const maxDescriptionLength = 20000

// Order is the aggregate root for a commercial order. It references exactly
// one product and is owned by exactly one customer.
//
// Invariants:
//   - Must have valid identifiers for itself, its product, and its customer
//   - Quantity must be positive
//   - Total price defaults to unit price x quantity; only an explicit staff
//     override (OverrideTotalPrice) may break that derivation
//   - Status follows the shared lifecycle state machine, starting at waiting
//   - The version field backs the compare-and-set persistence of status
//     transitions
type Order struct {
	id          kernel.UUID
	productID   kernel.UUID
	customerID  kernel.UUID
	quantity    int
	totalPrice  kernel.Price
	description string
	status      lifecycle.Status
	version     int

	isConstructed bool
}

// NewOrder creates a new Order in waiting status. The total price is derived
// from the product's unit price and the quantity; staff price overrides are
// applied afterwards via OverrideTotalPrice.
func NewOrder(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	quantity int,
	unitPrice kernel.Price,
	description string,
) (*Order, error) {
	o := &Order{
		status:        lifecycle.Waiting,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.AssignCustomer(customerID),
		o.SetProduct(productID, unitPrice, quantity),
		o.SetDescription(description),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// possibly overridden total price, and version.
func RestoreOrder(
	id kernel.UUID,
	productID kernel.UUID,
	customerID kernel.UUID,
	quantity int,
	totalPrice kernel.Price,
	description string,
	status lifecycle.Status,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.AssignCustomer(customerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.OverrideTotalPrice(totalPrice),
		o.SetDescription(description),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the identifier of the referenced product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Quantity returns the ordered unit count.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the order's total price.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Description returns the free-text order description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current lifecycle status.
func (o *Order) Status() lifecycle.Status {
	return o.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// AssignCustomer moves ownership of the order to the given customer.
func (o *Order) AssignCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// SetProduct points the order at a product and recomputes the total price
// from the product's unit price and the given quantity. This keeps the
// price derivation invariant whenever product or quantity change.
func (o *Order) SetProduct(productID kernel.UUID, unitPrice kernel.Price, quantity int) error {
	if err := o.setProductID(productID); err != nil {
		return err
	}
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if err := o.setQuantity(quantity); err != nil {
		return err
	}

	o.totalPrice = unitPrice.MulQuantity(quantity)
	return nil
}

// OverrideTotalPrice replaces the derived total price verbatim. The access
// policy restricts this to staff callers.
func (o *Order) OverrideTotalPrice(totalPrice kernel.Price) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

// SetDescription replaces the order description.
func (o *Order) SetDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, maxDescriptionLength)
	}
	o.description = description
	return nil
}

// ChangeStatus performs a staff-initiated status transition. Any valid state
// is reachable except that nothing leaves done.
func (o *Order) ChangeStatus(target lifecycle.Status) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete performs the ready -> done transition on behalf of the
// reconciliation sweep. Any other source state is rejected.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status lifecycle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version must be greater than 0")
	}
	o.version = version
	return nil
}

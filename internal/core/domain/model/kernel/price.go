package kernel

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when a Price was not created through
// one of the constructor functions.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice or PriceFromFloat")

// Price is a non-negative monetary value object. It wraps a decimal to keep
// money arithmetic exact; a zero amount is a valid price, a zero-value
// struct is not.
type Price struct { //nolint:recvcheck //value reads, pointer construction
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount. The amount must not be
// negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidError("price must not be negative")
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PriceFromFloat creates a Price from a float64 amount, as received from
// transport payloads.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// Validate ensures the Price was created through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// MulQuantity returns the price multiplied by a unit count. Used to derive
// an order's total price from the product's unit price.
func (p Price) MulQuantity(quantity int) Price {
	product, _ := NewPrice(p.amount.Mul(decimal.NewFromInt(int64(quantity))))
	return product
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Float64 returns the amount as a float64 for read models and responses.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (p Price) String() string {
	return p.amount.String()
}

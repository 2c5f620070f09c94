package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("accepts_zero_and_positive_amounts", func(t *testing.T) {
		for _, amount := range []float64{0, 0.09, 1, 10.5, 99999.99} {
			price, err := kernel.PriceFromFloat(amount)

			require.NoError(t, err)
			require.NoError(t, price.Validate())
			assert.InDelta(t, amount, price.Float64(), 1e-9)
		}
	})

	t.Run("rejects_negative_amounts", func(t *testing.T) {
		_, err := kernel.PriceFromFloat(-0.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrice_MulQuantity(t *testing.T) {
	t.Run("multiplies_unit_price_exactly", func(t *testing.T) {
		unit, err := kernel.PriceFromFloat(10.0)
		require.NoError(t, err)

		total := unit.MulQuantity(3)

		assert.True(t, total.Decimal().Equal(decimal.NewFromFloat(30.0)))
	})

	t.Run("avoids_float_drift", func(t *testing.T) {
		unit, err := kernel.PriceFromFloat(0.1)
		require.NoError(t, err)

		total := unit.MulQuantity(3)

		assert.Equal(t, "0.3", total.String())
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var price kernel.Price

		err := price.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestPrice_IsEqual(t *testing.T) {
	a, err := kernel.PriceFromFloat(30)
	require.NoError(t, err)
	b, err := kernel.NewPrice(decimal.NewFromInt(30))
	require.NoError(t, err)
	c, err := kernel.PriceFromFloat(31)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

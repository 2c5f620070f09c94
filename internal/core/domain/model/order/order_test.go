package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromFloat(amount)
	require.NoError(t, err)
	return price
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3, mustPrice(t, 10.0), "three units")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_waiting_order_with_derived_total", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, lifecycle.Waiting, o.Status())
		assert.Equal(t, 3, o.Quantity())
		assert.True(t, o.TotalPrice().IsEqual(mustPrice(t, 30.0)))
		assert.Equal(t, 1, o.Version())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			0, mustPrice(t, 10.0), "")

		require.Error(t, err)
	})

	t.Run("rejects_missing_identifiers", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			1, mustPrice(t, 10.0), "")
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			1, mustPrice(t, 10.0), "")
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{},
			1, mustPrice(t, 10.0), "")
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetProduct(t *testing.T) {
	t.Run("recomputes_total_price", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetProduct(kernel.NewUUID(), mustPrice(t, 2.5), 4)

		require.NoError(t, err)
		assert.True(t, o.TotalPrice().IsEqual(mustPrice(t, 10.0)))
		assert.Equal(t, 4, o.Quantity())
	})

	t.Run("rejects_invalid_quantity", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.SetProduct(kernel.NewUUID(), mustPrice(t, 2.5), -1)

		require.Error(t, err)
	})
}

func TestOrder_OverrideTotalPrice(t *testing.T) {
	t.Run("staff_override_is_honored_verbatim", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.OverrideTotalPrice(mustPrice(t, 5.0))

		require.NoError(t, err)
		assert.True(t, o.TotalPrice().IsEqual(mustPrice(t, 5.0)))
	})

	t.Run("rejects_unconstructed_price", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.OverrideTotalPrice(kernel.Price{})

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("staff_may_jump_states", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(lifecycle.Ready))
		assert.Equal(t, lifecycle.Ready, o.Status())

		require.NoError(t, o.ChangeStatus(lifecycle.Waiting))
		assert.Equal(t, lifecycle.Waiting, o.Status())
	})

	t.Run("done_is_terminal", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(lifecycle.Done))

		err := o.ChangeStatus(lifecycle.Waiting)

		require.Error(t, err)
		assert.Equal(t, lifecycle.Done, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("completes_ready_order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(lifecycle.Ready))

		require.NoError(t, o.Complete())
		assert.Equal(t, lifecycle.Done, o.Status())
	})

	t.Run("only_ready_orders_complete", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Complete()

		require.Error(t, err)
		assert.Equal(t, lifecycle.Waiting, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(
			id, kernel.NewUUID(), kernel.NewUUID(),
			2, mustPrice(t, 7.0), "restored", lifecycle.Ready, 4)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, lifecycle.Ready, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.True(t, o.TotalPrice().IsEqual(mustPrice(t, 7.0)))
	})

	t.Run("rejects_invalid_status_or_version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			2, mustPrice(t, 7.0), "", lifecycle.Unknown, 1)
		require.Error(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			2, mustPrice(t, 7.0), "", lifecycle.Ready, 0)
		require.Error(t, err)
	})
}

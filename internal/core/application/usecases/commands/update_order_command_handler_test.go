package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitingOrderFixture(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.PriceFromFloat(9.99)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID, 1, price, "", lifecycle.Waiting, 1)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderCommandHandler_Handle_OwnerUpdatesDescription(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := waitingOrderFixture(t, customerID)
	desc := "rush this one"
	cmd, err := commands.NewUpdateOrderCommand(
		customerActor(customerID), existing.ID(), nil, nil, nil, &desc, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Description() == desc
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NonStaffCannotChangeStatus(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	existing := waitingOrderFixture(t, customerID)
	status := lifecycle.Done
	cmd, err := commands.NewUpdateOrderCommand(
		customerActor(customerID), existing.ID(), nil, nil, nil, nil, &status, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestUpdateOrderCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	existing := waitingOrderFixture(t, kernel.NewUUID())
	desc := "mine now"
	cmd, err := commands.NewUpdateOrderCommand(
		customerActor(kernel.NewUUID()), existing.ID(), nil, nil, nil, &desc, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestUpdateOrderCommandHandler_Handle_RetriesOnceOnVersionConflict(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	desc := "rush this one"
	cmd, err := commands.NewUpdateOrderCommand(
		customerActor(customerID), orderID, nil, nil, nil, &desc, nil, nil)
	require.NoError(t, err)

	price, err := kernel.PriceFromFloat(9.99)
	require.NoError(t, err)
	stale, err := order.RestoreOrder(
		orderID, kernel.NewUUID(), customerID, 1, price, "", lifecycle.Waiting, 1)
	require.NoError(t, err)
	fresh, err := order.RestoreOrder(
		orderID, stale.ProductID(), customerID, 1, price, "", lifecycle.Waiting, 2)
	require.NoError(t, err)

	firstRepo := new(MockOrderRepository)
	firstUoW := new(MockOrderUoW)
	firstUoW.On("Begin", ctx).Return(nil).Once()
	firstUoW.On("OrderRepository").Return(firstRepo).Twice()
	firstRepo.On("Get", mock.Anything, orderID).Return(stale, nil).Once()
	firstRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewVersionConflictError("orderID", orderID)).Once()
	firstUoW.On("Rollback", ctx).Return(nil).Once()

	secondRepo := new(MockOrderRepository)
	secondUoW := new(MockOrderUoW)
	secondUoW.On("Begin", ctx).Return(nil).Once()
	secondUoW.On("OrderRepository").Return(secondRepo).Twice()
	secondRepo.On("Get", mock.Anything, orderID).Return(fresh, nil).Once()
	secondRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.Version() == 2 && o.Description() == desc
	})).Return(nil).Once()
	secondUoW.On("Commit", ctx).Return(nil).Once()
	secondUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	firstRepo.AssertExpectations(t)
	secondRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	desc := "whatever"
	cmd, err := commands.NewUpdateOrderCommand(
		customerActor(kernel.NewUUID()), orderID, nil, nil, nil, &desc, nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

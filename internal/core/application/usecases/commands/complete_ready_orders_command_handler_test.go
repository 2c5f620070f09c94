package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyOrderFixture(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.PriceFromFloat(9.99)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), customerID, 1, price, "", lifecycle.Ready, 1)
	require.NoError(t, err)
	return o
}

func TestCompleteReadyOrdersCommandHandler_Handle_NotifiesAndCompletes(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := readyOrderFixture(t, customerID)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	notifier := new(MockNotifier)

	listUoW := new(MockSweepUoW)
	mock.InOrder(
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllInReadyStatus", mock.Anything).Return([]*order.Order{o}, nil).Once(),
		listUoW.On("IdentityRepository").Return(identityRepo).Once(),
		identityRepo.On("Get", mock.Anything, customerID).Return(testIdentity(customerID), nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	completeUoW := new(MockSweepUoW)
	completeUoW.On("OrderRepository").Return(orderRepo).Twice()
	mock.InOrder(
		completeUoW.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(readyOrderFixture(t, customerID), nil).Once(),
		orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *order.Order) bool {
			return updated.Status() == lifecycle.Done
		})).Return(nil).Once(),
		completeUoW.On("Commit", ctx).Return(nil).Once(),
		completeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier.On("NotifyOrderReady", mock.Anything, "jdoe@example.com", o.ID()).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(completeUoW).Once()

	h := commands.NewCompleteReadyOrdersCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewCompleteReadyOrdersCommand())
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	identityRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	listUoW.AssertExpectations(t)
	completeUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteReadyOrdersCommandHandler_Handle_CompletesDespiteNotifyFailure(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := readyOrderFixture(t, customerID)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	notifier := new(MockNotifier)

	listUoW := new(MockSweepUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllInReadyStatus", mock.Anything).Return([]*order.Order{o}, nil).Once()
	listUoW.On("IdentityRepository").Return(identityRepo).Once()
	identityRepo.On("Get", mock.Anything, customerID).Return(testIdentity(customerID), nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	notifier.On("NotifyOrderReady", mock.Anything, "jdoe@example.com", o.ID()).
		Return(errors.New("broker unavailable")).Once()

	completeUoW := new(MockSweepUoW)
	completeUoW.On("Begin", ctx).Return(nil).Once()
	completeUoW.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(readyOrderFixture(t, customerID), nil).Once()
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	completeUoW.On("Commit", ctx).Return(nil).Once()
	completeUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(completeUoW).Once()

	h := commands.NewCompleteReadyOrdersCommandHandler(factory, notifier, discardLogger())
	err := h.Handle(ctx, commands.NewCompleteReadyOrdersCommand())
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	completeUoW.AssertExpectations(t)
}

func TestCompleteReadyOrdersCommandHandler_Handle_SkipsOrderNoLongerReady(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := readyOrderFixture(t, customerID)

	price, err := kernel.PriceFromFloat(9.99)
	require.NoError(t, err)
	alreadyDone, err := order.RestoreOrder(
		o.ID(), o.ProductID(), customerID, 1, price, "", lifecycle.Done, 2)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	notifier := new(MockNotifier)

	listUoW := new(MockSweepUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllInReadyStatus", mock.Anything).Return([]*order.Order{o}, nil).Once()
	listUoW.On("IdentityRepository").Return(identityRepo).Once()
	identityRepo.On("Get", mock.Anything, customerID).Return(testIdentity(customerID), nil).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	completeUoW := new(MockSweepUoW)
	completeUoW.On("Begin", ctx).Return(nil).Once()
	completeUoW.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(alreadyDone, nil).Once()
	completeUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(completeUoW).Once()

	h := commands.NewCompleteReadyOrdersCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, commands.NewCompleteReadyOrdersCommand())
	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "NotifyOrderReady")
	completeUoW.AssertExpectations(t)
}

func TestCompleteReadyOrdersCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()

	orderRepo := new(MockOrderRepository)
	listUoW := new(MockSweepUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllInReadyStatus", mock.Anything).Return(nil, errors.New("list error")).Once()
	listUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSweepUoWFactory)
	factory.On("Create").Return(listUoW).Once()

	h := commands.NewCompleteReadyOrdersCommandHandler(factory, new(MockNotifier), discardLogger())
	err := h.Handle(ctx, commands.NewCompleteReadyOrdersCommand())
	require.Error(t, err)
	listUoW.AssertExpectations(t)
}

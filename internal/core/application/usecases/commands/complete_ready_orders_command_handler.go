package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/core/ports"
)

// CompleteReadyOrdersCommandHandler orchestrates the reconciliation sweep.
// Each pass finds all orders in ready status, promotes them to done, and
// notifies their customers.
//
// Every order is processed in its own unit of work, so a failing item
// cannot poison the rest of the pass. The notice goes out only after the
// completion commits, and outside any transaction, so a candidate that a
// concurrent writer already moved out of ready (or whose completion keeps
// failing) is never notified twice. A notification failure is logged but
// does not roll back the completion; the sweep itself fails only when the
// initial listing fails.
type CompleteReadyOrdersCommandHandler struct {
	uowFactory SweepUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// readyOrder is one sweep candidate: the order and the address its
// completion notice goes to.
type readyOrder struct {
	orderID kernel.UUID
	address string
}

// NewCompleteReadyOrdersCommandHandler creates a handler for sweep passes.
func NewCompleteReadyOrdersCommandHandler(
	uowFactory SweepUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteReadyOrdersCommandHandler {
	return CompleteReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one sweep pass.
func (h CompleteReadyOrdersCommandHandler) Handle(ctx context.Context, cmd CompleteReadyOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.listReadyOrders(ctx)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		completed, err := h.completeOrder(ctx, candidate.orderID)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to complete order",
				"order_id", candidate.orderID.String(), "error", err)
			continue
		}

		if completed {
			h.notify(ctx, candidate)
		}
	}

	return nil
}

// listReadyOrders snapshots the sweep candidates in a short read-only unit
// of work, resolving each order's customer address while the transaction is
// open. An unresolvable address downgrades the candidate to completion
// without notification.
func (h CompleteReadyOrdersCommandHandler) listReadyOrders(ctx context.Context) ([]readyOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllInReadyStatus(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]readyOrder, 0, len(orders))
	for _, o := range orders {
		candidate := readyOrder{orderID: o.ID()}

		customer, getErr := uow.IdentityRepository().Get(ctx, o.CustomerID())
		if getErr != nil {
			h.logger.WarnContext(ctx, "failed to resolve order customer",
				"order_id", o.ID().String(), "error", getErr)
		} else {
			candidate.address = customer.Email()
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// notify sends the notice for one completed candidate. Failures are logged
// and swallowed; the completion has already committed.
func (h CompleteReadyOrdersCommandHandler) notify(ctx context.Context, candidate readyOrder) {
	if candidate.address == "" {
		return
	}

	if err := h.notifier.NotifyOrderReady(ctx, candidate.address, candidate.orderID); err != nil {
		h.logger.WarnContext(ctx, "failed to notify customer",
			"order_id", candidate.orderID.String(), "error", err)
	}
}

// completeOrder promotes one order to done in its own unit of work and
// reports whether it did. The order is re-read inside the transaction: if a
// concurrent writer already moved it out of ready, the candidate is skipped.
func (h CompleteReadyOrdersCommandHandler) completeOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return false, err
	}

	if o.Status() != lifecycle.Ready {
		return false, nil
	}

	if err = o.Complete(); err != nil {
		return false, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier is the outbound contract for telling a customer their order is
// ready. Delivery itself (rendering, SMTP) is an external collaborator; the
// core only decides that and to whom a notification must be sent.
//
// Failures are recovered by the caller: the reconciliation sweep logs them
// and continues with the remaining orders.
type Notifier interface {
	NotifyOrderReady(ctx context.Context, address string, orderID kernel.UUID) error
}

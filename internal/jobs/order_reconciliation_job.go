package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderReconciliationJob manages the scheduled reconciliation sweep. Runs
// every second to promote ready orders to done and notify their customers.
type OrderReconciliationJob struct {
	handler commands.CompleteReadyOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReconciliationJob creates a new job for the reconciliation sweep.
// Uses CompleteReadyOrdersCommandHandler to process ready orders every
// second.
func NewOrderReconciliationJob(
	handler commands.CompleteReadyOrdersCommandHandler,
	logger *slog.Logger,
) *OrderReconciliationJob {
	return &OrderReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every second. Per-order
// failures are already logged inside the handler; only a failed listing
// surfaces here.
func (j *OrderReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteReadyOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reconciliation job started (running every second)")
	return nil
}

// Stop stops the reconciliation job.
func (j *OrderReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order reconciliation job stopped")
}

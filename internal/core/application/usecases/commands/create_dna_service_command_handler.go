package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/dnaservice"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// CreateDNAServiceCommandHandler handles the business logic for gene
// scoring submissions. The scoring engine runs before any transaction is
// opened: a rejected submission produces no record at all.
type CreateDNAServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
	scoring    services.ScoringEngine
	policy     services.AccessPolicy
}

// NewCreateDNAServiceCommandHandler creates a handler for scoring submissions.
func NewCreateDNAServiceCommandHandler(uowFactory ServiceUoWFactory) CreateDNAServiceCommandHandler {
	return CreateDNAServiceCommandHandler{
		uowFactory: uowFactory,
		scoring:    services.NewScoringEngine(),
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the submission. Fails with MalformedSubmission when the
// payload does not decode, with InvalidSubmission carrying the per-gene
// verdicts when any gene is rejected or repeated, and with NotFound when
// the owning customer does not resolve.
func (h CreateDNAServiceCommandHandler) Handle(ctx context.Context, cmd CreateDNAServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ownerID := cmd.Actor().ID()
	if cmd.CustomerID() != nil {
		ownerID = *cmd.CustomerID()
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionCreateService, ownerID); err != nil {
		return err
	}

	result, err := h.scoring.Score(cmd.Payload())
	if err != nil {
		return err
	}
	if !result.Valid {
		return errs.NewInvalidSubmissionError(result.GeneResults)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.IdentityRepository().Get(ctx, ownerID)
	if err != nil {
		return err
	}

	s, err := dnaservice.NewService(cmd.ServiceID(), customer.ID(), result.Units, cmd.Payload())
	if err != nil {
		return err
	}

	if err = uow.DNAServiceRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

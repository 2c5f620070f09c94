package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

// ErrCompleteReadyOrdersCommandIsNotConstructed is returned when a
// CompleteReadyOrdersCommand was not created via its constructor.
var ErrCompleteReadyOrdersCommandIsNotConstructed = errors.New(
	"CompleteReadyOrdersCommand must be created via NewCompleteReadyOrdersCommand constructor",
)

// CompleteReadyOrdersCommand triggers one pass of the reconciliation sweep:
// every order in ready status is promoted to done and its customer is
// notified. The scheduler fires this command once per second.
type CompleteReadyOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteReadyOrdersCommand creates a command to trigger a sweep pass.
// This is a parameterless command that processes all ready orders.
func NewCompleteReadyOrdersCommand() CompleteReadyOrdersCommand {
	return CompleteReadyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompleteReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteReadyOrdersCommandIsNotConstructed)
}

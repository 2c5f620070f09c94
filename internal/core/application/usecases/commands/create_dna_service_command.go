package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/identity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCreateDNAServiceCommandIsNotConstructed is returned when a
// CreateDNAServiceCommand was not created via its constructor.
var ErrCreateDNAServiceCommandIsNotConstructed = errors.New(
	"CreateDNAServiceCommand must be created via NewCreateDNAServiceCommand constructor",
)

// CreateDNAServiceCommand represents a request to submit genes for scoring.
// The payload is carried verbatim; decoding and scoring is the domain's
// business. A nil customerID means the actor submits for themself.
type CreateDNAServiceCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	serviceID  kernel.UUID
	customerID *kernel.UUID
	payload    string

	guard guard.ConstructorGuard
}

// NewCreateDNAServiceCommand creates a command to submit genes for scoring.
func NewCreateDNAServiceCommand(
	actor identity.Actor,
	serviceID kernel.UUID,
	customerID *kernel.UUID,
	payload string,
) (CreateDNAServiceCommand, error) {
	cmd := CreateDNAServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setServiceID(serviceID),
		cmd.setCustomerID(customerID),
		cmd.setPayload(payload),
	); err != nil {
		return CreateDNAServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDNAServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateDNAServiceCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateDNAServiceCommand) Actor() identity.Actor {
	return c.actor
}

// ServiceID returns the identifier for the new service record.
func (c CreateDNAServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// CustomerID returns the identity the submission is made for, or nil when
// the actor submits for themself.
func (c CreateDNAServiceCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// Payload returns the raw submission payload.
func (c CreateDNAServiceCommand) Payload() string {
	return c.payload
}

func (c *CreateDNAServiceCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateDNAServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *CreateDNAServiceCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateDNAServiceCommand) setPayload(payload string) error {
	if payload == "" {
		return errs.NewValueIsRequiredError("payload")
	}
	c.payload = payload
	return nil
}

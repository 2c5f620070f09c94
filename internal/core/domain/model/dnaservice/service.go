package dnaservice

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lifecycle"
	"fulfillment/internal/pkg/errs"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through NewService or RestoreService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// maxPayloadLength bounds the raw submission payload column.
const maxPayloadLength = 200000

// Kind identifies the type of genomic service requested. Only DNA scoring
// exists today; the enum leaves room for more.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota

	// DNAScoring is the gene validation and scoring service.
	DNAScoring
)

// String returns the persisted name of the kind.
func (k Kind) String() string {
	if k == DNAScoring {
		return "dna_scoring"
	}
	return "unknown"
}

// Validate checks that the Kind is a known service type.
func (k Kind) Validate() error {
	if k != DNAScoring {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid service kind", k))
	}
	return nil
}

// Service is the aggregate root for a DNA scoring request. It is owned by
// exactly one customer; its billable unit count is always derived from the
// scoring engine, never accepted from the caller.
type Service struct {
	id         kernel.UUID
	customerID kernel.UUID
	units      int
	payload    string
	kind       Kind
	status     lifecycle.Status
	version    int

	isConstructed bool
}

// NewService creates a Service in waiting status for an accepted submission.
// units must be the scoring engine's billable unit count for payload.
func NewService(id kernel.UUID, customerID kernel.UUID, units int, payload string) (*Service, error) {
	s := &Service{
		kind:          DNAScoring,
		status:        lifecycle.Waiting,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setUnits(units),
		s.setPayload(payload),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreService reconstructs a Service from persistence.
func RestoreService(
	id kernel.UUID,
	customerID kernel.UUID,
	units int,
	payload string,
	kind Kind,
	status lifecycle.Status,
	version int,
) (*Service, error) {
	s := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		s.setUnits(units),
		s.setPayload(payload),
		s.setKind(kind),
		s.setStatus(status),
		s.setVersion(version),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}

	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the identifier of the owning customer.
func (s *Service) CustomerID() kernel.UUID {
	return s.customerID
}

// Units returns the billable unit count derived by the scoring engine.
func (s *Service) Units() int {
	return s.units
}

// Payload returns the raw submission payload as received.
func (s *Service) Payload() string {
	return s.payload
}

// Kind returns the service kind.
func (s *Service) Kind() Kind {
	return s.kind
}

// Status returns the current lifecycle status.
func (s *Service) Status() lifecycle.Status {
	return s.status
}

// Version returns the optimistic-concurrency version of the aggregate.
func (s *Service) Version() int {
	return s.version
}

// ChangeStatus performs a staff-initiated status transition.
func (s *Service) ChangeStatus(target lifecycle.Status) error {
	newStatus, err := s.status.Transition(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = customerID
	return nil
}

// setUnits accepts zero: an empty submission is valid and scores no units.
func (s *Service) setUnits(units int) error {
	if units < 0 {
		return errs.NewValueIsInvalidError("units must not be negative")
	}
	s.units = units
	return nil
}

func (s *Service) setPayload(payload string) error {
	if payload == "" {
		return errs.NewValueIsRequiredError("payload")
	}
	if len(payload) > maxPayloadLength {
		return errs.NewValueIsOutOfRangeError("payload length", len(payload), 1, maxPayloadLength)
	}
	s.payload = payload
	return nil
}

func (s *Service) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}

func (s *Service) setStatus(status lifecycle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Service) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsInvalidError("version must be greater than 0")
	}
	s.version = version
	return nil
}

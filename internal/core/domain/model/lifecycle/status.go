package lifecycle

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the fulfillment state shared by orders and DNA scoring
// services.
//
// State transitions:
//
//	waiting ──> in_production ──> ready ──> done
//
// Staff may move an item between any two states to correct mistakes, except
// out of done, which is terminal. The reconciliation sweep is the only actor
// that performs the ready -> done transition automatically, via Complete.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status of every newly created order or service.
	Waiting

	// InProduction indicates the item is being worked on.
	InProduction

	// Ready indicates the item is finished and awaiting pickup. Items in
	// this status are collected by the reconciliation sweep.
	Ready

	// Done is the terminal status. No transition leaves it.
	Done
)

// getStatusStrings returns a map of Status values to their persisted string
// representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Waiting:      "waiting",
		InProduction: "in_production",
		Ready:        "ready",
		Done:         "done",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:      "waiting",
		InProduction: "in_production",
		Ready:        "ready",
		Done:         "done",
	}
}

// StatusFromString parses a persisted or caller-supplied status name.
// Returns an error for anything that is not one of the four valid states.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the four valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Done
}

// Transition validates a staff-initiated move to target and returns the new
// status. Any valid state may be reached from any other valid state, with
// one exception: nothing leaves done.
func (s Status) Transition(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, target))
	}

	return target, nil
}

// Complete performs the ready -> done transition used by the reconciliation
// sweep. Any other source state is rejected.
func (s Status) Complete() (Status, error) {
	if s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}

	return Done, nil
}

package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	 │          │           │              │
//	 └──────────┴───────────┴──────────────┴──> Canceled
//
// Progression is strictly forward: a status may only move to a later one,
// never back. Canceled is reachable from any non-terminal status.
// Delivered and Canceled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first placed.
	New

	// Preparing indicates the merchant has started preparing the order.
	Preparing

	// Ready indicates the order is ready for courier pickup.
	Ready

	// OutForDelivery indicates a courier has picked the order up.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled indicates the order was canceled before delivery.
	// This is a final state, reachable from any non-terminal status.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		New:            "New",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Canceled:       "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:            "New",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Canceled:       "Canceled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Preparing, Ready, OutForDelivery, Delivered, Canceled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Canceled are the two terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// TransitionTo validates and performs a transition to the next status.
//
// Rules enforced:
//   - both statuses must be valid
//   - no transitions out of a terminal status
//   - Canceled is reachable from any non-terminal status
//   - otherwise progression must be strictly forward (skipping
//     intermediate statuses is allowed; New -> Ready is valid)
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot transition to %s", s.String(), next.String()),
		)
	}

	if next == Canceled {
		return Canceled, nil
	}

	if next <= s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move backwards from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}

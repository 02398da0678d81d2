package deliveryjob

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery job (one courier trip).
//
// State transitions:
//
//	New ──> Assigned ──> Picking ──> Delivering ──> Done
//	 │          │           │             │
//	 └──────────┴───────────┴─────────────┴──> Canceled
//
// Done and Canceled are terminal. A job in any other status is active and its
// orders are excluded from the dispatch queue.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New is the initial status of a freshly created job.
	New

	// Assigned indicates a courier accepted the job.
	Assigned

	// Picking indicates the courier is collecting the job's orders.
	Picking

	// Delivering indicates the courier is en route to customers.
	Delivering

	// Done indicates all orders of the job were delivered. Terminal.
	Done

	// Canceled indicates the job was abandoned. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		New:        "New",
		Assigned:   "Assigned",
		Picking:    "Picking",
		Delivering: "Delivering",
		Done:       "Done",
		Canceled:   "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "New",
		Assigned:   "Assigned",
		Picking:    "Picking",
		Delivering: "Delivering",
		Done:       "Done",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Done || s == Canceled
}

// TransitionTo validates and performs a transition to the next status.
// Progression is strictly forward; Canceled is reachable from any
// non-terminal status.
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

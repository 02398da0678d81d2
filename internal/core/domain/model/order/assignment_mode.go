package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// AssignmentMode identifies who is responsible for delivering an order.
//
// Every order starts as TenantAssigned: the merchant's own couriers own the
// delivery. The fallback evaluator may hand responsibility over to the
// market's pooled courier fleet exactly once. The transition is one-way:
// once MarketAssigned, an order never reverts to TenantAssigned.
type AssignmentMode int

const (
	// AssignmentUnknown represents an invalid or undefined assignment mode.
	AssignmentUnknown AssignmentMode = iota

	// TenantAssigned means the merchant's own courier is responsible
	// for the delivery. This is the default for new orders.
	TenantAssigned

	// MarketAssigned means delivery responsibility was handed over to the
	// market's pooled courier fleet.
	MarketAssigned
)

// getAssignmentModeStrings returns a map of AssignmentMode values to their
// string representations.
func getAssignmentModeStrings() map[AssignmentMode]string {
	return map[AssignmentMode]string{
		AssignmentUnknown: "Unknown",
		TenantAssigned:    "TenantAssigned",
		MarketAssigned:    "MarketAssigned",
	}
}

// Validate checks if the AssignmentMode value is valid.
// TenantAssigned and MarketAssigned are valid; AssignmentUnknown (0) is not.
func (m AssignmentMode) Validate() error {
	if m != TenantAssigned && m != MarketAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignment mode is invalid",
			fmt.Errorf("%d is not a valid assignment mode", m),
		)
	}
	return nil
}

// String returns the human-readable name of the assignment mode.
func (m AssignmentMode) String() string {
	if str, ok := getAssignmentModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

package tenant

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type classifies a merchant and governs which dispatch time-window rules apply.
//
// Restaurant orders are dispatchable only around their expected ready time;
// Shop and Service orders are assumed pickable on demand.
type Type int

const (
	// TypeUnknown represents an invalid or undefined tenant type.
	TypeUnknown Type = iota

	// Restaurant prepares food to order; readiness timing drives its dispatch rules.
	Restaurant

	// Shop sells stocked goods ready for pickup at any time.
	Shop

	// Service provides services whose deliverables are ready on demand.
	Service
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		Restaurant:  "Restaurant",
		Shop:        "Shop",
		Service:     "Service",
	}
}

// Validate checks if the Type value is valid.
// Restaurant, Shop and Service are valid; TypeUnknown (0) is not.
func (t Type) Validate() error {
	if t != Restaurant && t != Shop && t != Service {
		return errs.NewValueIsInvalidErrorWithCause(
			"tenant type is invalid",
			fmt.Errorf("%d is not a valid tenant type", t),
		)
	}
	return nil
}

// String returns the human-readable name of the tenant type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

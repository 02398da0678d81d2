package tenant

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ProviderMode describes which courier fleet a tenant normally delivers with.
// It is onboarding configuration consumed by the ordering flow; the dispatch
// engine never mutates it.
type ProviderMode int

const (
	// ProviderUnknown represents an invalid or undefined provider mode.
	ProviderUnknown ProviderMode = iota

	// SelfDelivery means the tenant delivers exclusively with its own couriers.
	SelfDelivery

	// MarketDelivery means the tenant relies on the market's pooled fleet.
	MarketDelivery

	// Mixed means the tenant uses its own couriers with market couriers as overflow.
	Mixed
)

// getProviderModeStrings returns a map of ProviderMode values to their string
// representations.
func getProviderModeStrings() map[ProviderMode]string {
	return map[ProviderMode]string{
		ProviderUnknown: "Unknown",
		SelfDelivery:    "SelfDelivery",
		MarketDelivery:  "MarketDelivery",
		Mixed:           "Mixed",
	}
}

// Validate checks if the ProviderMode value is valid.
func (m ProviderMode) Validate() error {
	if m != SelfDelivery && m != MarketDelivery && m != Mixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"provider mode is invalid",
			fmt.Errorf("%d is not a valid provider mode", m),
		)
	}
	return nil
}

// String returns the human-readable name of the provider mode.
func (m ProviderMode) String() string {
	if str, ok := getProviderModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

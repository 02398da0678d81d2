package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// FulfillmentType describes how an order reaches the customer.
// Only Delivery orders participate in courier dispatch; Pickup orders
// are collected by the customer and never enter the dispatch queue.
type FulfillmentType int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment type.
	FulfillmentUnknown FulfillmentType = iota

	// Pickup means the customer collects the order at the merchant.
	Pickup

	// Delivery means a courier brings the order to the customer.
	Delivery
)

// getFulfillmentTypeStrings returns a map of FulfillmentType values to their
// string representations.
func getFulfillmentTypeStrings() map[FulfillmentType]string {
	return map[FulfillmentType]string{
		FulfillmentUnknown: "Unknown",
		Pickup:             "Pickup",
		Delivery:           "Delivery",
	}
}

// Validate checks if the FulfillmentType value is valid.
// Pickup and Delivery are valid; FulfillmentUnknown (0) is not.
func (f FulfillmentType) Validate() error {
	if f != Pickup && f != Delivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment type is invalid",
			fmt.Errorf("%d is not a valid fulfillment type", f),
		)
	}
	return nil
}

// String returns the human-readable name of the fulfillment type.
func (f FulfillmentType) String() string {
	if str, ok := getFulfillmentTypeStrings()[f]; ok {
		return str
	}
	return "Unknown"
}

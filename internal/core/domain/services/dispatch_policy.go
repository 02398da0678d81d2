package services

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// Default time windows for dispatch decisions. These are policy values, not
// code: deployments override them through configuration, and DispatchPolicy
// is passed explicitly into every service so future per-market overrides
// need no engine changes.
const (
	// DefaultNearReadyWindow is how far before a restaurant order's expected
	// ready time it is already treated as pickup-eligible.
	DefaultNearReadyWindow = 10 * time.Minute

	// DefaultRestaurantReadyFallback is the order age at which a ready
	// restaurant order falls back to the market's courier pool.
	DefaultRestaurantReadyFallback = 5 * time.Minute

	// DefaultRestaurantNearReadyFallback is the order age at which a
	// near-ready restaurant order falls back to the market's courier pool.
	DefaultRestaurantNearReadyFallback = 7 * time.Minute

	// DefaultShopServiceFallback is the order age at which a shop or service
	// order falls back to the market's courier pool, regardless of status.
	DefaultShopServiceFallback = 5 * time.Minute

	// DefaultBatchWindow is the maximum spread between two restaurant orders'
	// expected ready times for them to share one courier trip.
	DefaultBatchWindow = 7 * time.Minute
)

// DispatchPolicy carries the time windows every dispatch decision depends on.
type DispatchPolicy struct {
	// NearReadyWindow is the horizon before readyAt within which a restaurant
	// order counts as near-ready.
	NearReadyWindow time.Duration

	// RestaurantReadyFallback is the minimum order age for fallback of a
	// restaurant order that is already Ready.
	RestaurantReadyFallback time.Duration

	// RestaurantNearReadyFallback is the minimum order age for fallback of a
	// restaurant order that is near-ready but not Ready yet.
	RestaurantNearReadyFallback time.Duration

	// ShopServiceFallback is the minimum order age for fallback of shop and
	// service orders.
	ShopServiceFallback time.Duration

	// BatchWindow is the maximum readyAt spread for batching restaurant orders.
	BatchWindow time.Duration
}

// DefaultDispatchPolicy returns the stock policy used when a deployment
// configures no overrides.
func DefaultDispatchPolicy() DispatchPolicy {
	return DispatchPolicy{
		NearReadyWindow:             DefaultNearReadyWindow,
		RestaurantReadyFallback:     DefaultRestaurantReadyFallback,
		RestaurantNearReadyFallback: DefaultRestaurantNearReadyFallback,
		ShopServiceFallback:         DefaultShopServiceFallback,
		BatchWindow:                 DefaultBatchWindow,
	}
}

// Validate checks that every window is positive.
func (p DispatchPolicy) Validate() error {
	windows := map[string]time.Duration{
		"near ready window":              p.NearReadyWindow,
		"restaurant ready fallback":      p.RestaurantReadyFallback,
		"restaurant near-ready fallback": p.RestaurantNearReadyFallback,
		"shop/service fallback":          p.ShopServiceFallback,
		"batch window":                   p.BatchWindow,
	}

	for name, window := range windows {
		if window <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"dispatch policy is invalid",
				fmt.Errorf("%s must be positive, got %s", name, window),
			)
		}
	}

	return nil
}

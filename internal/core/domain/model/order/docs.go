// Package order implements the order aggregate for the dispatch engine.
//
// An order is one customer purchase awaiting fulfillment. Besides its
// lifecycle status the aggregate tracks who is responsible for delivering it
// (the merchant's own courier or the market's pooled fleet), when it is
// expected to be ready for pickup, and which courier has claimed it.
//
// The aggregate enforces the engine's central invariant: delivery
// responsibility falls back from the tenant to the market at most once,
// recorded in fallbackTriggeredAt, and never reverts.
package order

// Package services provides the domain services of the delivery dispatch rules
// engine. It implements the decision logic that spans orders, tenants and
// delivery jobs and doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchPolicy: the time-window configuration all decisions depend on
//   - DispatchEligibility: decides whether an order may enter the market dispatch queue
//   - FallbackEvaluator: hands delivery responsibility over to the market based on elapsed time
//   - QueueBuilder: assembles the ordered dispatch queue a dispatcher consumes
//   - BatchPolicy: decides whether two orders can share one courier trip
//
// All services are stateless-per-call and deterministic given the supplied
// evaluation time; the only mutation in the package is the fallback transition
// applied through the order aggregate.
package services

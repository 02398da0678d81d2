// Package deliveryjob implements the delivery job aggregate: one courier trip
// grouping one or more orders.
//
// The dispatch engine treats jobs as read-only input. Any order referenced by
// a job that is not Done or Canceled is considered claimed and excluded from
// the dispatch queue.
package deliveryjob

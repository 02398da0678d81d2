// Package tenant implements the tenant aggregate: a merchant operating on the
// platform, optionally listed in a shared market.
//
// The dispatch engine reads tenants through the Roster view, which resolves an
// order's tenant by id and falls back to Shop semantics for tenants it cannot
// resolve.
package tenant

package tenant

import (
	"dispatch/internal/core/domain/model/kernel"
)

// Roster is the read view of a set of tenants the dispatch engine consumes.
// It resolves an order's tenant by id and degrades via defaults instead of
// failing: an unresolved tenant is treated as a Shop that has not opted into
// market-courier fallback.
type Roster struct {
	byID map[kernel.UUID]*Tenant
}

// NewRoster builds a Roster from a tenant slice. Nil entries are skipped.
func NewRoster(tenants []*Tenant) Roster {
	byID := make(map[kernel.UUID]*Tenant, len(tenants))
	for _, t := range tenants {
		if t == nil {
			continue
		}
		byID[t.ID()] = t
	}

	return Roster{byID: byID}
}

// Get resolves a tenant by id.
func (r Roster) Get(id kernel.UUID) (*Tenant, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// TypeOf returns the tenant's type, defaulting to Shop when the tenant
// cannot be resolved.
func (r Roster) TypeOf(id kernel.UUID) Type {
	if t, ok := r.byID[id]; ok {
		return t.Type()
	}
	return Shop
}

// AllowsFallback reports whether the tenant opted into market-courier
// fallback. Unresolved tenants never allow fallback.
func (r Roster) AllowsFallback(id kernel.UUID) bool {
	if t, ok := r.byID[id]; ok {
		return t.AllowsMarketCourierFallback()
	}
	return false
}

// Size returns the number of tenants in the roster.
func (r Roster) Size() int {
	return len(r.byID)
}

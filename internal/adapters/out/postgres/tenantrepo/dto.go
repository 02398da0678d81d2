// Package tenantrepo provides data transfer objects and mapping functions for tenant persistence.
package tenantrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// TenantDTO represents the database structure for persisting tenant aggregates.
// Indexed by market for the per-market roster reads the dispatch engine runs on.
type TenantDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"not null"`
	TenantType         int
	MarketID           *uuid.UUID `gorm:"type:uuid;index"`
	AllowFallback      bool
	ProviderMode       int
	DefaultPrepTimeMin int
}

// TableName specifies the database table name for tenant entities.
func (TenantDTO) TableName() string {
	return "tenants"
}

// fromDomain converts a tenant domain aggregate to its database representation.
func fromDomain(aggregate *tenant.Tenant) TenantDTO {
	var marketID *uuid.UUID
	if id := aggregate.MarketID(); id != nil {
		raw := id.Bytes()
		marketID = &raw
	}

	return TenantDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		TenantType:         int(aggregate.Type()),
		MarketID:           marketID,
		AllowFallback:      aggregate.AllowsMarketCourierFallback(),
		ProviderMode:       int(aggregate.ProviderMode()),
		DefaultPrepTimeMin: aggregate.DefaultPrepTimeMin(),
	}
}

// toDomain converts a database DTO to a tenant domain aggregate.
func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var marketID *kernel.UUID
	if dto.MarketID != nil {
		mID, marketErr := kernel.UUIDFromBytes((*dto.MarketID)[:])
		if marketErr != nil {
			return nil, marketErr
		}

		marketID = &mID
	}

	return tenant.RestoreTenant(
		id,
		dto.Name,
		tenant.Type(dto.TenantType),
		marketID,
		dto.AllowFallback,
		tenant.ProviderMode(dto.ProviderMode),
		dto.DefaultPrepTimeMin,
	)
}

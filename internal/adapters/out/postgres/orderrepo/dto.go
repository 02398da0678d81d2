// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by tenant for the market snapshot reads the dispatch engine runs on.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID  `gorm:"type:uuid;index"`
	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	Status              int
	Fulfillment         int
	AssignmentMode      int
	PrepTimeMin         int
	ReadyAt             *time.Time
	FallbackTriggeredAt *time.Time
	CreatedAt           time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		TenantID:            aggregate.TenantID().Bytes(),
		CourierID:           courierID,
		Status:              int(aggregate.Status()),
		Fulfillment:         int(aggregate.Fulfillment()),
		AssignmentMode:      int(aggregate.AssignmentMode()),
		PrepTimeMin:         aggregate.PrepTimeMin(),
		ReadyAt:             aggregate.ReadyAt(),
		FallbackTriggeredAt: aggregate.FallbackTriggeredAt(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		tenantID,
		order.Status(dto.Status),
		order.FulfillmentType(dto.Fulfillment),
		dto.PrepTimeMin,
		dto.ReadyAt,
		order.AssignmentMode(dto.AssignmentMode),
		dto.FallbackTriggeredAt,
		dto.CreatedAt,
		courierID,
	)
}

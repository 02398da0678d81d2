// Package jobrepo provides data transfer objects and mapping functions for delivery job persistence.
// A job row owns its item rows; items are stored in a child table keyed by
// job and order so active-job order claims can be resolved with one join.
package jobrepo

import (
	"dispatch/internal/core/domain/model/deliveryjob"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryJobDTO represents the database structure for persisting delivery job aggregates.
type DeliveryJobDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status int
	Items  []JobItemDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery job entities.
func (DeliveryJobDTO) TableName() string {
	return "delivery_jobs"
}

// JobItemDTO is one order carried by a delivery job.
type JobItemDTO struct {
	JobID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	TenantID uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for delivery job items.
func (JobItemDTO) TableName() string {
	return "delivery_job_items"
}

// fromDomain converts a delivery job domain aggregate to its database representation.
func fromDomain(aggregate *deliveryjob.DeliveryJob) DeliveryJobDTO {
	items := aggregate.Items()

	dtoItems := make([]JobItemDTO, 0, len(items))
	for _, item := range items {
		dtoItems = append(dtoItems, JobItemDTO{
			JobID:    aggregate.ID().Bytes(),
			OrderID:  item.OrderID.Bytes(),
			TenantID: item.TenantID.Bytes(),
		})
	}

	return DeliveryJobDTO{
		ID:     aggregate.ID().Bytes(),
		Status: int(aggregate.Status()),
		Items:  dtoItems,
	}
}

// toDomain converts a database DTO to a delivery job domain aggregate.
func toDomain(dto DeliveryJobDTO) (*deliveryjob.DeliveryJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]deliveryjob.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		orderID, idErr := kernel.UUIDFromBytes(item.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		tenantID, idErr := kernel.UUIDFromBytes(item.TenantID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, deliveryjob.Item{OrderID: orderID, TenantID: tenantID})
	}

	return deliveryjob.RestoreDeliveryJob(id, deliveryjob.Status(dto.Status), items)
}

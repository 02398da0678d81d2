package jobrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/deliveryjob"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryJobRepository implements DeliveryJobRepository using GORM.
type GormDeliveryJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryJobRepository creates a new GORM delivery job repository.
func NewGormDeliveryJobRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryJobRepository {
	return &GormDeliveryJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery job and its items to the database.
func (r *GormDeliveryJobRepository) Add(ctx context.Context, aggregate *deliveryjob.DeliveryJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery job. Items are immutable after creation,
// so only the job row is written.
func (r *GormDeliveryJobRepository) Update(ctx context.Context, aggregate *deliveryjob.DeliveryJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryJobDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery job by ID, including its items.
func (r *GormDeliveryJobRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryjob.DeliveryJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryJobDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryJob", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all jobs that still claim their orders,
// meaning every job not in a terminal status.
func (r *GormDeliveryJobRepository) GetAllActive(ctx context.Context) ([]*deliveryjob.DeliveryJob, error) {
	var dtos []DeliveryJobDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status NOT IN ?", []int{int(deliveryjob.Done), int(deliveryjob.Canceled)}).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*deliveryjob.DeliveryJob, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

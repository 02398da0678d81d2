package tenantrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolationCode is the postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB, tracker aggregateTracker) *GormTenantRepository {
	return &GormTenantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tenant to the database.
func (r *GormTenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewObjectAlreadyExistsErrorWithCause("tenant", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tenant to the database.
func (r *GormTenantRepository) Update(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TenantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tenant by ID.
func (r *GormTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByMarket retrieves all tenants listed in the given market.
func (r *GormTenantRepository) GetAllByMarket(
	ctx context.Context,
	marketID kernel.UUID,
) ([]*tenant.Tenant, error) {
	if err := marketID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TenantDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "market_id = ?", marketID.Bytes()).Error; err != nil {
		return nil, err
	}

	tenants := make([]*tenant.Tenant, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tenant"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckBatchQueryHandler decides whether two orders may share one delivery
// job. Unlike the other read models it reconstructs domain aggregates,
// because the decision belongs to the batch policy and must not be
// duplicated in SQL.
type CheckBatchQueryHandler struct {
	db     *gorm.DB
	policy services.BatchPolicy
}

// NewCheckBatchQueryHandler creates a handler for batch compatibility checks.
func NewCheckBatchQueryHandler(db *gorm.DB, policy services.DispatchPolicy) CheckBatchQueryHandler {
	return CheckBatchQueryHandler{
		db:     db,
		policy: services.NewBatchPolicy(policy),
	}
}

// Handle loads both orders and their owning tenants, then applies the
// batch policy. Unknown order ids yield an object-not-found error.
func (h CheckBatchQueryHandler) Handle(
	ctx context.Context,
	query CheckBatchQuery,
) (CheckBatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckBatchQueryResponse{}, err
	}

	orderA, err := h.loadOrder(ctx, query.OrderA())
	if err != nil {
		return CheckBatchQueryResponse{}, err
	}

	orderB, err := h.loadOrder(ctx, query.OrderB())
	if err != nil {
		return CheckBatchQueryResponse{}, err
	}

	roster, err := h.loadRoster(ctx, orderA.TenantID(), orderB.TenantID())
	if err != nil {
		return CheckBatchQueryResponse{}, err
	}

	compatible, err := h.policy.CanBatch(orderA, orderB, roster)
	if err != nil {
		return CheckBatchQueryResponse{}, err
	}

	return CheckBatchQueryResponse{Compatible: compatible}, nil
}

func (h CheckBatchQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tenant_id,
			status,
			fulfillment,
			prep_time_min,
			ready_at,
			assignment_mode,
			fallback_triggered_at,
			created_at,
			courier_id
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		id                  uuid.UUID
		tenantID            uuid.UUID
		status              int
		fulfillment         int
		prepTimeMin         int
		readyAt             sql.NullTime
		assignmentMode      int
		fallbackTriggeredAt sql.NullTime
		createdAt           time.Time
		courierID           uuid.NullUUID
	)

	err := row.Scan(
		&id, &tenantID, &status, &fulfillment, &prepTimeMin,
		&readyAt, &assignmentMode, &fallbackTriggeredAt, &createdAt, &courierID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(tenantID[:])
	if err != nil {
		return nil, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		cID, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &cID
	}

	return order.RestoreOrder(
		restoredID,
		ownerID,
		order.Status(status),
		order.FulfillmentType(fulfillment),
		prepTimeMin,
		nullTimePtr(readyAt),
		order.AssignmentMode(assignmentMode),
		nullTimePtr(fallbackTriggeredAt),
		createdAt,
		courier,
	)
}

func (h CheckBatchQueryHandler) loadRoster(
	ctx context.Context,
	tenantIDs ...kernel.UUID,
) (tenant.Roster, error) {
	ids := make([]uuid.UUID, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		ids = append(ids, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			tenant_type,
			market_id,
			allow_fallback,
			provider_mode,
			default_prep_time_min
		FROM tenants
		WHERE id IN ?
	`, ids).Rows()
	if err != nil {
		return tenant.Roster{}, err
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0, len(tenantIDs))
	for rows.Next() {
		var (
			id                 uuid.UUID
			name               string
			tenantType         int
			marketID           uuid.NullUUID
			allowFallback      bool
			providerMode       int
			defaultPrepTimeMin int
		)

		err = rows.Scan(
			&id, &name, &tenantType, &marketID,
			&allowFallback, &providerMode, &defaultPrepTimeMin,
		)
		if err != nil {
			return tenant.Roster{}, err
		}

		restoredID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return tenant.Roster{}, idErr
		}

		var market *kernel.UUID
		if marketID.Valid {
			mID, marketErr := kernel.UUIDFromBytes(marketID.UUID[:])
			if marketErr != nil {
				return tenant.Roster{}, marketErr
			}
			market = &mID
		}

		restored, restoreErr := tenant.RestoreTenant(
			restoredID,
			name,
			tenant.Type(tenantType),
			market,
			allowFallback,
			tenant.ProviderMode(providerMode),
			defaultPrepTimeMin,
		)
		if restoreErr != nil {
			return tenant.Roster{}, restoreErr
		}

		tenants = append(tenants, restored)
	}

	if err = rows.Err(); err != nil {
		return tenant.Roster{}, err
	}

	// Missing tenants are tolerated: the roster defaults unresolved
	// tenants to Shop, matching the dispatch rules.
	return tenant.NewRoster(tenants), nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	at := t.Time
	return &at
}

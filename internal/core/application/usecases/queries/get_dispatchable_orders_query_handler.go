package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchableOrdersQueryHandler reads the open market-assigned delivery
// orders of a market straight from the database, bypassing the aggregates.
type GetDispatchableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchableOrdersQueryHandler creates a handler for dispatchable
// order queries. Requires a GORM database connection.
func NewGetDispatchableOrdersQueryHandler(db *gorm.DB) GetDispatchableOrdersQueryHandler {
	return GetDispatchableOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders that already left for delivery or
// reached a terminal status are excluded. Results are sorted the way the
// dispatch queue sorts: ready time first with missing ready times last,
// then placement time, then id.
func (h GetDispatchableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchableOrdersQuery,
) ([]GetDispatchableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDispatchableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tenant_id,
			o.status,
			o.ready_at,
			o.created_at
		FROM orders o
		JOIN tenants t ON t.id = o.tenant_id
		WHERE t.market_id = ?
		  AND o.assignment_mode = ?
		  AND o.fulfillment = ?
		  AND o.status NOT IN (?, ?, ?)
		ORDER BY o.ready_at ASC NULLS LAST, o.created_at ASC, o.id ASC
	`,
		query.MarketID().Bytes(),
		int(order.MarketAssigned),
		int(order.Delivery),
		int(order.OutForDelivery), int(order.Delivered), int(order.Canceled),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp     GetDispatchableOrdersQueryResponse
			id       uuid.UUID
			tenantID uuid.UUID
			status   int
			readyAt  sql.NullTime
		)

		if err = rows.Scan(&id, &tenantID, &status, &readyAt, &resp.CreatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(tenantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TenantID = ownerID

		resp.Status = order.Status(status).String()
		if readyAt.Valid {
			at := readyAt.Time
			resp.ReadyAt = &at
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMarketsQueryHandler lists the distinct markets tenants are listed in.
type GetMarketsQueryHandler struct {
	db *gorm.DB
}

// NewGetMarketsQueryHandler creates a handler for market listing queries.
// Requires a GORM database connection.
func NewGetMarketsQueryHandler(db *gorm.DB) GetMarketsQueryHandler {
	return GetMarketsQueryHandler{db: db}
}

// Handle executes the query. Tenants without a market listing are ignored.
func (h GetMarketsQueryHandler) Handle(
	ctx context.Context,
	query GetMarketsQuery,
) ([]GetMarketsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	markets := make([]GetMarketsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT market_id
		FROM tenants
		WHERE market_id IS NOT NULL
		ORDER BY market_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		marketID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		markets = append(markets, GetMarketsQueryResponse{MarketID: marketID})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return markets, nil
}

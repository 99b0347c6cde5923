package queries

import (
	"context"

	"smartlogix/internal/pkg/tenantctx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists the context tenant's orders newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paged order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. The secondary sort on id keeps pagination
// stable for orders created in the same instant.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (OrdersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersPageResponse{}, err
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return OrdersPageResponse{}, err
	}

	resp := OrdersPageResponse{
		Items: make([]OrderResponse, 0, query.Size()),
		Page:  query.Page(),
		Size:  query.Size(),
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE tenant_id = ?
	`, tenantID.Bytes()).Row().Scan(&resp.Total)
	if err != nil {
		return OrdersPageResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			description,
			destination_address,
			weight,
			latitude,
			longitude,
			tracking_notes,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE tenant_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, tenantID.Bytes(), query.Size(), query.Page()*query.Size()).Rows()
	if err != nil {
		return OrdersPageResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderResponse
		var weight decimal.NullDecimal

		err = rows.Scan(
			&item.ID,
			&item.OrderNumber,
			&item.Description,
			&item.DestinationAddress,
			&weight,
			&item.Latitude,
			&item.Longitude,
			&item.TrackingNotes,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return OrdersPageResponse{}, err
		}

		if weight.Valid {
			item.Weight = &weight.Decimal
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrdersPageResponse{}, err
	}

	return resp, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row scoped to the context
// tenant. An order owned by another tenant produces the same not-found
// error as a missing one.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	var weight decimal.NullDecimal
	err = h.db.WithContext(ctx).Raw(`
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
		WHERE id = ? AND tenant_id = ?
	`, query.OrderID().Bytes(), tenantID.Bytes()).Row().Scan(
		&resp.ID,
		&resp.OrderNumber,
		&resp.Description,
		&resp.DestinationAddress,
		&weight,
		&resp.Latitude,
		&resp.Longitude,
		&resp.TrackingNotes,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if weight.Valid {
		resp.Weight = &weight.Decimal
	}

	return resp, nil
}

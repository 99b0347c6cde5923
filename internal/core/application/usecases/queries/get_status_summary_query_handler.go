package queries

import (
	"context"

	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/tenantctx"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler aggregates the tenant's orders by status.
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusSummaryQueryHandler creates a handler for status summaries.
func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle executes the query. The result always contains all six statuses.
func (h GetStatusSummaryQueryHandler) Handle(ctx context.Context, query GetStatusSummaryQuery) (StatusSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return StatusSummaryResponse{}, err
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return StatusSummaryResponse{}, err
	}

	resp := StatusSummaryResponse{Counts: make(map[string]int64, len(order.AllStatuses()))}
	for _, status := range order.AllStatuses() {
		resp.Counts[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, count(*)
		FROM orders
		WHERE tenant_id = ?
		GROUP BY status
	`, tenantID.Bytes()).Rows()
	if err != nil {
		return StatusSummaryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return StatusSummaryResponse{}, err
		}

		resp.Counts[status] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return StatusSummaryResponse{}, err
	}

	return resp, nil
}

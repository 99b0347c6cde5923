package queries

import (
	"errors"

	"smartlogix/internal/pkg/guard"
)

var (
	ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
		"GetStatusSummaryQuery must be created via NewGetStatusSummaryQuery constructor",
	)
)

// GetStatusSummaryQuery retrieves the context tenant's order counts per
// status. Every status appears in the response, zero-filled when the
// tenant has no orders in it.
type GetStatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusSummaryQuery creates a parameterless status summary query.
func NewGetStatusSummaryQuery() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// StatusSummaryResponse maps canonical status names to order counts.
type StatusSummaryResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

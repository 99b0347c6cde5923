package queries

import (
	"errors"

	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of the context tenant's orders, newest
// first.
type GetOrdersQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paged order listing query. Pages are
// zero-based; a non-positive size falls back to the default.
func NewGetOrdersQuery(page, size int) (GetOrdersQuery, error) {
	if page < 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	return GetOrdersQuery{
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersQuery) Size() int {
	return q.size
}

// OrdersPageResponse is one page of the tenant's orders.
type OrdersPageResponse struct {
	Items []OrderResponse `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}

package http

import (
	"time"

	"smartlogix/internal/core/application/usecases/queries"
	"smartlogix/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorBody is the uniform error payload of the API.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	TenantName string `json:"tenantName"`
	TenantSlug string `json:"tenantSlug"`
}

// RegisterResponse reports the registered account and its tenant.
type RegisterResponse struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenantId"`
	TenantSlug string `json:"tenantSlug"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	TenantSlug string `json:"tenantSlug"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateTenantRequest is the payload of POST /api/admin/tenants.
type CreateTenantRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TenantBody is the API representation of a tenant.
type TenantBody struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Active bool   `json:"active"`
}

// CreateOrderRequest is the payload of POST /api/orders. Status is absent
// on purpose: new orders always start in PENDING.
type CreateOrderRequest struct {
	OrderNumber        string           `json:"orderNumber"`
	Description        string           `json:"description"`
	DestinationAddress string           `json:"destinationAddress"`
	Weight             *decimal.Decimal `json:"weight"`
	Latitude           *float64         `json:"latitude"`
	Longitude          *float64         `json:"longitude"`
}

// TransitionRequest is the payload of PATCH /api/orders/:id/status.
type TransitionRequest struct {
	Status string `json:"status"`
}

// OrderBody is the API representation of an order.
type OrderBody struct {
	ID                 string           `json:"id"`
	OrderNumber        string           `json:"orderNumber"`
	Description        string           `json:"description,omitempty"`
	DestinationAddress string           `json:"destinationAddress,omitempty"`
	Weight             *decimal.Decimal `json:"weight,omitempty"`
	Latitude           *float64         `json:"latitude,omitempty"`
	Longitude          *float64         `json:"longitude,omitempty"`
	TrackingNotes      string           `json:"trackingNotes,omitempty"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ImportResponse reports the outcome of POST /api/orders/import.
type ImportResponse struct {
	ImportID          string `json:"importId"`
	RowsImported      int    `json:"rowsImported"`
	RowsSkipped       int    `json:"rowsSkipped"`
	ChunksCommitted   int    `json:"chunksCommitted"`
	ResumedAfterChunk int    `json:"resumedAfterChunk"`
}

func orderBodyFromAggregate(o *order.Order) OrderBody {
	body := OrderBody{
		ID:                 o.ID().String(),
		OrderNumber:        o.OrderNumber(),
		Description:        o.Description(),
		DestinationAddress: o.DestinationAddress(),
		Weight:             o.Weight(),
		TrackingNotes:      o.TrackingNotes(),
		Status:             o.Status().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}

	if point := o.Location(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		body.Latitude = &lat
		body.Longitude = &lon
	}

	return body
}

func orderBodyFromResponse(resp queries.OrderResponse) OrderBody {
	return OrderBody{
		ID:                 resp.ID,
		OrderNumber:        resp.OrderNumber,
		Description:        resp.Description,
		DestinationAddress: resp.DestinationAddress,
		Weight:             resp.Weight,
		Latitude:           resp.Latitude,
		Longitude:          resp.Longitude,
		TrackingNotes:      resp.TrackingNotes,
		Status:             resp.Status,
		CreatedAt:          resp.CreatedAt,
		UpdatedAt:          resp.UpdatedAt,
	}
}

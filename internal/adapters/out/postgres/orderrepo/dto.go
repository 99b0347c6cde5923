// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows and enforcing tenant scoping on every query.
package orderrepo

import (
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Order numbers are unique across all tenants, and tenant_id
// is indexed because every query filters on it.
type OrderDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID        `gorm:"type:uuid;index"`
	OrderNumber        string           `gorm:"uniqueIndex"`
	Description        string
	DestinationAddress string
	Weight             *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Latitude           *float64         `gorm:"type:double precision"`
	Longitude          *float64         `gorm:"type:double precision"`
	TrackingNotes      string
	Status             string           `gorm:"index"`
	CreatedByID        *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var createdByID *uuid.UUID
	if id := o.CreatedBy(); id != nil {
		raw := id.Bytes()
		createdByID = &raw
	}

	var latitude, longitude *float64
	if p := o.Location(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		latitude, longitude = &lat, &lng
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		TenantID:           o.TenantID().Bytes(),
		OrderNumber:        o.OrderNumber(),
		Description:        o.Description(),
		DestinationAddress: o.DestinationAddress(),
		Weight:             o.Weight(),
		Latitude:           latitude,
		Longitude:          longitude,
		TrackingNotes:      o.TrackingNotes(),
		Status:             o.Status().String(),
		CreatedByID:        createdByID,
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var createdByID *kernel.UUID
	if dto.CreatedByID != nil {
		cID, creatorErr := kernel.UUIDFromBytes((*dto.CreatedByID)[:])
		if creatorErr != nil {
			return nil, creatorErr
		}

		createdByID = &cID
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &point
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.Description,
		dto.DestinationAddress,
		dto.Weight,
		location,
		dto.TrackingNotes,
		status,
		tenantID,
		createdByID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

package orderrepo

import (
	"context"
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/order"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Every method
// resolves the tenant from the context and filters on it, so rows owned by
// other tenants are invisible to callers.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The aggregate's tenant must match
// the tenant bound to the context.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !aggregate.TenantID().IsEqual(tenantID) {
		return errs.NewValueIsInvalidError("tenantId")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderNumber", aggregate.OrderNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddAll saves a batch of new orders in a single insert. All aggregates
// must belong to the context tenant; a duplicate order number anywhere in
// the batch fails the whole insert.
func (r *GormOrderRepository) AddAll(ctx context.Context, aggregates []*order.Order) error {
	if len(aggregates) == 0 {
		return nil
	}

	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	dtos := make([]OrderDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		if !aggregate.TenantID().IsEqual(tenantID) {
			return errs.NewValueIsInvalidError("tenantId")
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderNumber", "batch insert", err)
		}
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Get retrieves an order by ID within the context tenant. A row owned by a
// different tenant yields the same not-found error as a missing row.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err = r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the aggregate, conditioned on the row still holding
// expectedStatus. A concurrent transition that got there first leaves zero
// rows matching, which is reported as a ConflictError; a row that vanished
// or never belonged to the tenant is reported as not found.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return err
	}

	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ? AND status = ?", dto.ID, tenantID.Bytes(), expectedStatus.String()).
		Updates(map[string]any{
			"description":         dto.Description,
			"destination_address": dto.DestinationAddress,
			"weight":              dto.Weight,
			"latitude":            dto.Latitude,
			"longitude":           dto.Longitude,
			"tracking_notes":      dto.TrackingNotes,
			"status":              dto.Status,
			"updated_at":          dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ? AND tenant_id = ?", dto.ID, tenantID.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewConflictError("order", aggregate.ID().String())
		}
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// CountByStatus returns the context tenant's order counts grouped by
// status. Only statuses with at least one order appear in the result.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Total  int64
	}
	err = r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, count(*) as total").
		Where("tenant_id = ?", tenantID.Bytes()).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, row := range rows {
		status, statusErr := order.StatusFromString(row.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		counts[status] = row.Total
	}

	return counts, nil
}

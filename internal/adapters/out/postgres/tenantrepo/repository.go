package tenantrepo

import (
	"context"
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/tenant"
	"smartlogix/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM.
type GormTenantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTenantRepository creates a new GORM tenant repository.
func NewGormTenantRepository(db *gorm.DB, tracker aggregateTracker) *GormTenantRepository {
	return &GormTenantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tenant to the database.
func (r *GormTenantRepository) Add(ctx context.Context, aggregate *tenant.Tenant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either the name or the slug collided; the translated error does
			// not say which constraint fired.
			return errs.NewConflictErrorWithCause("name or slug", aggregate.Slug(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActive retrieves an active tenant by ID. Deactivated tenants produce
// the same not-found error as missing ones, so callers cannot distinguish
// the two cases.
func (r *GormTenantRepository) GetActive(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND active", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySlug retrieves a tenant by its slug regardless of active state.
func (r *GormTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var dto TenantDTO
	err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tenant", slug)
		}
		return nil, err
	}

	return toDomain(dto)
}

package userrepo

import (
	"context"
	"errors"
	"strings"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM. Lookups are
// scoped to the tenant bound to the context.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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
			return errs.NewConflictErrorWithCause("email", aggregate.Email(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByEmail retrieves a user by email within the context tenant.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tenantID, err := tenantctx.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	var dto UserDTO
	err = r.db.WithContext(ctx).
		First(&dto, "email = ? AND tenant_id = ?", email, tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Package tenantrepo persists tenant aggregates. Tenants are the only
// aggregate queried without a tenant bound to the context, since tenant
// resolution is what binds one.
package tenantrepo

import (
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/tenant"

	"github.com/google/uuid"
)

// TenantDTO represents the database structure for persisting tenants. Both
// the name and the slug are unique across the system.
type TenantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Slug      string    `gorm:"uniqueIndex"`
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for tenant entities.
func (TenantDTO) TableName() string {
	return "tenants"
}

func fromDomain(t *tenant.Tenant) TenantDTO {
	return TenantDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		Slug:      t.Slug(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toDomain(dto TenantDTO) (*tenant.Tenant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tenant.RestoreTenant(id, dto.Name, dto.Slug, dto.Active, dto.CreatedAt, dto.UpdatedAt)
}

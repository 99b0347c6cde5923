package ports

import (
	"context"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/tenant"
)

// TenantRepository defines the persistence contract for tenant aggregates.
// Unlike the other repositories it is not scoped by the context tenant:
// tenant resolution happens before a tenant is bound to the request.
type TenantRepository interface {
	// Add persists a new tenant. Fails with a ConflictError when the slug
	// is already taken.
	Add(ctx context.Context, aggregate *tenant.Tenant) error

	// GetActive retrieves a tenant by ID, rejecting deactivated tenants
	// with the same not-found signal as missing ones.
	GetActive(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error)

	// GetBySlug retrieves a tenant by its slug regardless of active state.
	GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)
}

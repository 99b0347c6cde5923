package commands

import (
	"context"

	"smartlogix/internal/core/domain/model/tenant"
)

// CreateTenantCommandHandler provisions new tenants.
type CreateTenantCommandHandler struct {
	uowFactory TenantUoWFactory
}

// NewCreateTenantCommandHandler creates a handler for tenant provisioning.
func NewCreateTenantCommandHandler(uowFactory TenantUoWFactory) CreateTenantCommandHandler {
	return CreateTenantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the tenant. A taken slug surfaces as a
// ConflictError from the repository.
func (h *CreateTenantCommandHandler) Handle(ctx context.Context, cmd CreateTenantCommand) (*tenant.Tenant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := tenant.NewTenant(cmd.TenantID(), cmd.Name(), cmd.Slug())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TenantRepository().Add(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

package commands

import (
	"context"
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/tenant"
	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUserCommandHandler registers user accounts, provisioning the
// tenant in the same transaction when the slug is new. Registration runs
// before any tenant is bound to the request, so the handler binds the
// resolved tenant to the context itself before touching the user
// repository.
type RegisterUserCommandHandler struct {
	uowFactory AuthUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory AuthUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the user and returns the account together with its
// tenant. A deactivated tenant rejects registration with the same
// not-found signal as an unknown slug.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, *tenant.Tenant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := h.resolveTenant(ctx, uow, cmd)
	if err != nil {
		return nil, nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Email(), string(hash), cmd.Role(), t.ID())
	if err != nil {
		return nil, nil, err
	}

	tenantCtx := tenantctx.WithTenant(ctx, t.ID())
	if err = uow.UserRepository().Add(tenantCtx, u); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return u, t, nil
}

func (h *RegisterUserCommandHandler) resolveTenant(ctx context.Context, uow AuthUoW, cmd RegisterUserCommand) (*tenant.Tenant, error) {
	tenantRepo := uow.TenantRepository()

	t, err := tenantRepo.GetBySlug(ctx, cmd.TenantSlug())
	if err == nil {
		if !t.IsActive() {
			return nil, errs.NewObjectNotFoundError("tenant", cmd.TenantSlug())
		}
		return t, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	t, err = tenant.NewTenant(kernel.NewUUID(), cmd.TenantName(), cmd.TenantSlug())
	if err != nil {
		return nil, err
	}

	if err = tenantRepo.Add(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

package commands

import (
	"errors"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/guard"
)

var (
	ErrCreateTenantCommandIsNotConstructed = errors.New(
		"CreateTenantCommand must be created via NewCreateTenantCommand constructor",
	)
	ErrTenantNameIsRequired = errors.New("tenant name is required")
	ErrTenantSlugIsRequired = errors.New("tenant slug is required")
)

// CreateTenantCommand represents a request to provision a new tenant.
type CreateTenantCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.UUID
	name     string
	slug     string

	guard guard.ConstructorGuard
}

// NewCreateTenantCommand creates a command to provision a tenant. Slug
// format validation happens in the aggregate constructor.
func NewCreateTenantCommand(tenantID kernel.UUID, name, slug string) (CreateTenantCommand, error) {
	cmd := CreateTenantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setName(name),
		cmd.setSlug(slug),
	); err != nil {
		return CreateTenantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTenantCommand) Validate() error {
	return c.guard.Validate(ErrCreateTenantCommandIsNotConstructed)
}

// TenantID returns the identifier the tenant will be created with.
func (c CreateTenantCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Name returns the tenant's display name.
func (c CreateTenantCommand) Name() string {
	return c.name
}

// Slug returns the tenant's URL-safe identifier.
func (c CreateTenantCommand) Slug() string {
	return c.slug
}

func (c *CreateTenantCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}

	c.tenantID = tenantID
	return nil
}

func (c *CreateTenantCommand) setName(name string) error {
	if name == "" {
		return ErrTenantNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTenantCommand) setSlug(slug string) error {
	if slug == "" {
		return ErrTenantSlugIsRequired
	}

	c.slug = slug
	return nil
}

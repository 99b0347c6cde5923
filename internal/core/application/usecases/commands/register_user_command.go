package commands

import (
	"errors"

	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/guard"
)

// minPasswordLength is the shortest accepted plaintext password.
const minPasswordLength = 8

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterUserCommand represents a request to register a user account under
// a tenant addressed by slug. When the slug is unknown a tenant is
// provisioned on the fly, which is how new organizations join the system.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email      string
	password   string
	role       user.Role
	tenantName string
	tenantSlug string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user. tenantName
// is only used when the slug does not resolve and a tenant has to be
// provisioned; it defaults to the slug when blank.
func NewRegisterUserCommand(email, password string, role user.Role, tenantName, tenantSlug string) (RegisterUserCommand, error) {
	if tenantName == "" {
		tenantName = tenantSlug
	}

	cmd := RegisterUserCommand{
		tenantName: tenantName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setTenantSlug(tenantSlug),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the new account's email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It never leaves the command
// handler; only the bcrypt hash is stored.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested authorization level.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// TenantName returns the display name used when provisioning a tenant.
func (c RegisterUserCommand) TenantName() string {
	return c.tenantName
}

// TenantSlug returns the slug addressing the tenant to register under.
func (c RegisterUserCommand) TenantSlug() string {
	return c.tenantSlug
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, "unbounded")
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setTenantSlug(tenantSlug string) error {
	if tenantSlug == "" {
		return ErrTenantSlugIsRequired
	}

	c.tenantSlug = tenantSlug
	return nil
}

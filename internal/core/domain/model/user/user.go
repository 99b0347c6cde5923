package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// Role is the coarse authorization level of a user inside its tenant.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// RoleFromString resolves a role by its exact enum name.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a recognized role", s))
	}
}

// Validate checks that the Role value is one of the defined roles.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

func (r Role) String() string {
	return string(r)
}

// User is an account scoped to a single tenant. Email is globally unique;
// an address registered under one tenant cannot be reused under another.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role
	tenantID     kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a user under the given tenant. The password hash must
// already be computed; the aggregate never sees plaintext passwords.
func NewUser(id kernel.UUID, email, passwordHash string, role Role, tenantID kernel.UUID) (*User, error) {
	u := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setTenantID(tenantID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role, tenantID kernel.UUID, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setTenantID(tenantID),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was constructed through NewUser or
// RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identity.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email, stored lower-cased.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's authorization level.
func (u *User) Role() Role {
	return u.role
}

// TenantID returns the owning tenant's identifier.
func (u *User) TenantID() kernel.UUID {
	return u.tenantID
}

// CreatedAt returns the creation timestamp (UTC).
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tenantId", err)
	}
	u.tenantID = tenantID
	return nil
}

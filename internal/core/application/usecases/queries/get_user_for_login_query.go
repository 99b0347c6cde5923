package queries

import (
	"errors"
	"strings"

	"smartlogix/internal/pkg/guard"
)

var (
	ErrGetUserForLoginQueryIsNotConstructed = errors.New(
		"GetUserForLoginQuery must be created via NewGetUserForLoginQuery constructor",
	)
	ErrLoginEmailIsRequired      = errors.New("email is required")
	ErrLoginTenantSlugIsRequired = errors.New("tenant slug is required")
)

// GetUserForLoginQuery resolves the credentials record for a login attempt.
// Login addresses the tenant by slug because it happens before any tenant
// is bound to the request.
type GetUserForLoginQuery struct {
	tenantSlug string
	email      string

	guard guard.ConstructorGuard
}

// NewGetUserForLoginQuery creates a login credentials query.
func NewGetUserForLoginQuery(tenantSlug, email string) (GetUserForLoginQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	q := GetUserForLoginQuery{
		tenantSlug: tenantSlug,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}

	if q.tenantSlug == "" {
		return GetUserForLoginQuery{}, ErrLoginTenantSlugIsRequired
	}
	if q.email == "" {
		return GetUserForLoginQuery{}, ErrLoginEmailIsRequired
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserForLoginQuery) Validate() error {
	return q.guard.Validate(ErrGetUserForLoginQueryIsNotConstructed)
}

// TenantSlug returns the slug of the tenant to log in under.
func (q GetUserForLoginQuery) TenantSlug() string {
	return q.tenantSlug
}

// Email returns the normalized login email.
func (q GetUserForLoginQuery) Email() string {
	return q.email
}

// UserForLoginResponse carries what the login flow needs to verify a
// password and mint a token. It never leaves the process.
type UserForLoginResponse struct {
	UserID       string
	Email        string
	PasswordHash string
	Role         string
	TenantID     string
}

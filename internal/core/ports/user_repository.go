package ports

import (
	"context"

	"smartlogix/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. Fails with a ConflictError when the email
	// is already registered, under any tenant.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByEmail retrieves a user by email within the tenant bound to the
	// context.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

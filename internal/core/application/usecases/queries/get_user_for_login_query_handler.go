package queries

import (
	"context"
	"database/sql"
	"errors"

	"smartlogix/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserForLoginQueryHandler resolves login credentials by tenant slug and
// email. Deactivated tenants are filtered out, so their users cannot log in.
type GetUserForLoginQueryHandler struct {
	db *gorm.DB
}

// NewGetUserForLoginQueryHandler creates a handler for login lookups.
func NewGetUserForLoginQueryHandler(db *gorm.DB) GetUserForLoginQueryHandler {
	return GetUserForLoginQueryHandler{db: db}
}

// Handle executes the query. Unknown slug, deactivated tenant and unknown
// email all produce the same not-found error.
func (h GetUserForLoginQueryHandler) Handle(ctx context.Context, query GetUserForLoginQuery) (UserForLoginResponse, error) {
	if err := query.Validate(); err != nil {
		return UserForLoginResponse{}, err
	}

	var resp UserForLoginResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.email,
			u.password_hash,
			u.role,
			u.tenant_id
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE t.slug = ? AND t.active AND u.email = ?
	`, query.TenantSlug(), query.Email()).Row().Scan(
		&resp.UserID,
		&resp.Email,
		&resp.PasswordHash,
		&resp.Role,
		&resp.TenantID,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return UserForLoginResponse{}, errs.NewObjectNotFoundError("user", query.Email())
		}
		return UserForLoginResponse{}, err
	}

	return resp, nil
}

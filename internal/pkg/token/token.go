// Package token issues and parses the signed bearer tokens used to
// authenticate API requests. A token carries the authenticated user's email,
// role, and owning tenant; the HTTP middleware turns the tenant claim into
// the request's tenant binding.
package token

import (
	"fmt"
	"time"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set attached to every issued token.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. The secret must be non-empty; ttl bounds the
// token lifetime.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("jwt ttl")
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the given user identity.
func (i *Issuer) Issue(email string, tenantID kernel.UUID, role string) (string, error) {
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	if err := tenantID.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		TenantID: tenantID.String(),
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Identity is the verified content of a parsed token.
type Identity struct {
	Email    string
	TenantID kernel.UUID
	Role     string
}

// Parse verifies the token signature and expiry and extracts the identity.
func (i *Issuer) Parse(tokenString string) (Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}
	if !parsed.Valid {
		return Identity{}, errs.NewValueIsInvalidError("token")
	}

	tenantID, err := kernel.UUIDFromString(claims.TenantID)
	if err != nil {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause("token tenant claim", err)
	}

	return Identity{
		Email:    claims.Subject,
		TenantID: tenantID,
		Role:     claims.Role,
	}, nil
}

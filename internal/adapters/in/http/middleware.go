package http

import (
	"net/http"
	"strings"

	"smartlogix/internal/core/domain/model/user"
	"smartlogix/internal/core/ports"
	"smartlogix/internal/pkg/tenantctx"
	"smartlogix/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// identityKey stores the authenticated identity on the echo context.
const identityKey = "smartlogix.identity"

// TenantBinding authenticates the request and binds its tenant to the
// request context. The tenant claim is re-checked against the database on
// every request, so a tenant deactivated after the token was issued is
// rejected immediately, not at token expiry.
func TenantBinding(issuer *token.Issuer, tenants ports.TenantRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, ErrorBody{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}

			identity, err := issuer.Parse(raw)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			reqCtx := ctx.Request().Context()
			if _, err = tenants.GetActive(reqCtx, identity.TenantID); err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorBody{
					Code:    http.StatusUnauthorized,
					Message: "tenant is not available",
				})
			}

			ctx.Set(identityKey, identity)
			ctx.SetRequest(ctx.Request().WithContext(tenantctx.WithTenant(reqCtx, identity.TenantID)))

			return next(ctx)
		}
	}
}

// RequireRole rejects authenticated requests whose token does not carry
// the given role. It must run after TenantBinding.
func RequireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, ok := identityFrom(ctx)
			if !ok || identity.Role != role.String() {
				return ctx.JSON(http.StatusForbidden, ErrorBody{
					Code:    http.StatusForbidden,
					Message: "insufficient permissions",
				})
			}

			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return raw, raw != ""
}

func identityFrom(ctx echo.Context) (token.Identity, bool) {
	identity, ok := ctx.Get(identityKey).(token.Identity)
	return identity, ok
}

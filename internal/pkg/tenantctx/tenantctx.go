// Package tenantctx carries the active tenant identifier through a request's
// context.Context. Every entry point that serves a tenant-scoped request
// binds the tenant exactly once with WithTenant; services and pipelines read
// it back with TenantID or RequireTenantID.
//
// The binding lives only in the derived context, so it is strictly scoped to
// the logical execution that created it: concurrent requests never observe
// each other's binding, and nothing can leak into a reused goroutine. Detach
// exists for the rare case where a bound context is handed to a component
// that must not inherit the tenant.
package tenantctx

import (
	"context"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"
)

// ErrTenantNotBound is returned by RequireTenantID when no tenant identifier
// is bound to the context. Interactive callers surface it as a client error;
// the batch import treats it as fatal for the whole run.
var ErrTenantNotBound = errs.NewValueIsRequiredError("tenant is not bound to the request context")

type contextKey struct{}

// WithTenant returns a child context carrying the given tenant identifier.
// Rebinding on an already-bound context shadows the previous value for the
// returned child only.
func WithTenant(ctx context.Context, tenantID kernel.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, tenantID)
}

// TenantID returns the tenant identifier bound to ctx, or false when none is
// bound.
func TenantID(ctx context.Context) (kernel.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(kernel.UUID)
	if !ok || id.Validate() != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// RequireTenantID returns the bound tenant identifier or ErrTenantNotBound.
func RequireTenantID(ctx context.Context) (kernel.UUID, error) {
	id, ok := TenantID(ctx)
	if !ok {
		return kernel.UUID{}, ErrTenantNotBound
	}
	return id, nil
}

// Detach returns a child context with no tenant binding, regardless of what
// the parent carried.
func Detach(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, nil)
}

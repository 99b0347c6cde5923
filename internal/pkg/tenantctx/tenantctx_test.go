package tenantctx_test

import (
	"context"
	"sync"
	"testing"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"
	"smartlogix/internal/pkg/tenantctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTenant_BindAndRead(t *testing.T) {
	tenantID := kernel.NewUUID()
	ctx := tenantctx.WithTenant(context.Background(), tenantID)

	got, ok := tenantctx.TenantID(ctx)
	require.True(t, ok)
	assert.True(t, tenantID.IsEqual(got))

	got, err := tenantctx.RequireTenantID(ctx)
	require.NoError(t, err)
	assert.True(t, tenantID.IsEqual(got))
}

func TestTenantID_UnboundContext(t *testing.T) {
	_, ok := tenantctx.TenantID(context.Background())
	assert.False(t, ok)
}

func TestRequireTenantID_UnboundContext(t *testing.T) {
	_, err := tenantctx.RequireTenantID(context.Background())

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, tenantctx.ErrTenantNotBound, err)
}

func TestDetach_RemovesBinding(t *testing.T) {
	tenantID := kernel.NewUUID()
	bound := tenantctx.WithTenant(context.Background(), tenantID)

	detached := tenantctx.Detach(bound)

	_, ok := tenantctx.TenantID(detached)
	assert.False(t, ok)

	// the parent keeps its binding
	_, ok = tenantctx.TenantID(bound)
	assert.True(t, ok)
}

func TestWithTenant_RebindShadowsParent(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	parent := tenantctx.WithTenant(context.Background(), first)
	child := tenantctx.WithTenant(parent, second)

	got, ok := tenantctx.TenantID(child)
	require.True(t, ok)
	assert.True(t, second.IsEqual(got))

	got, ok = tenantctx.TenantID(parent)
	require.True(t, ok)
	assert.True(t, first.IsEqual(got))
}

// TestConcurrentBindingsAreIsolated exercises the core isolation guarantee:
// a binding made for one logical execution is never visible to another.
func TestConcurrentBindingsAreIsolated(t *testing.T) {
	const workers = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tenantID := kernel.NewUUID()
			ctx := tenantctx.WithTenant(context.Background(), tenantID)

			for range 100 {
				got, ok := tenantctx.TenantID(ctx)
				assert.True(t, ok)
				assert.True(t, tenantID.IsEqual(got))
			}
		}()
	}
	wg.Wait()
}

func TestZeroValueTenantIsNotABinding(t *testing.T) {
	ctx := tenantctx.WithTenant(context.Background(), kernel.UUID{})

	_, ok := tenantctx.TenantID(ctx)
	assert.False(t, ok)

	_, err := tenantctx.RequireTenantID(ctx)
	require.Error(t, err)
}

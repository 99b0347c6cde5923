package tenant_test

import (
	"errors"
	"testing"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/core/domain/model/tenant"
	"smartlogix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create active tenant with valid parameters", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "Acme Logistics", "acme-logistics")

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.True(t, tn.ID().IsEqual(validID))
		assert.Equal(t, "Acme Logistics", tn.Name())
		assert.Equal(t, "acme-logistics", tn.Slug())
		assert.True(t, tn.IsActive())
		assert.False(t, tn.CreatedAt().IsZero())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		tn, err := tenant.NewTenant(invalidID, "Acme", "acme")

		require.Error(t, err)
		assert.Nil(t, tn)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "", "acme")

		require.Error(t, err)
		assert.Nil(t, tn)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail with blank slug", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "Acme", "")

		require.Error(t, err)
		assert.Nil(t, tn)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should reject slugs with invalid characters", func(t *testing.T) {
		for _, slug := range []string{"Acme", "acme logistics", "acme_logistics", "-acme", "acme-", "acme--logistics"} {
			tn, err := tenant.NewTenant(validID, "Acme", slug)

			require.Error(t, err, "slug %q", slug)
			assert.Nil(t, tn)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		}
	})

	t.Run("should accept digits and hyphens in slug", func(t *testing.T) {
		tn, err := tenant.NewTenant(validID, "Acme", "acme-2024")

		require.NoError(t, err)
		assert.Equal(t, "acme-2024", tn.Slug())
	})
}

func TestTenant_Deactivate(t *testing.T) {
	t.Run("should block and unblock write access", func(t *testing.T) {
		tn, _ := tenant.NewTenant(kernel.NewUUID(), "Acme", "acme")
		require.True(t, tn.IsActive())

		tn.Deactivate()
		assert.False(t, tn.IsActive())

		tn.Activate()
		assert.True(t, tn.IsActive())
	})
}

func TestTenant_Validate(t *testing.T) {
	t.Run("should fail validation for nil tenant", func(t *testing.T) {
		var tn *tenant.Tenant

		err := tn.Validate()

		require.Error(t, err)
		assert.Equal(t, tenant.ErrTenantIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value tenant", func(t *testing.T) {
		var tn tenant.Tenant

		err := tn.Validate()

		require.Error(t, err)
		assert.Equal(t, tenant.ErrTenantIsNotConstructed, err)
	})
}

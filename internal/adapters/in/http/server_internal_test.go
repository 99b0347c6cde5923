package http

import (
	"testing"

	"smartlogix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_intParam(t *testing.T) {
	t.Run("should return fallback for an empty value", func(t *testing.T) {
		value, err := intParam("page", "", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})

	t.Run("should parse a numeric value", func(t *testing.T) {
		value, err := intParam("size", "25", 0)
		require.NoError(t, err)
		assert.Equal(t, 25, value)
	})

	t.Run("should name the failing parameter", func(t *testing.T) {
		_, err := intParam("size", "twenty", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "size")

		_, err = intParam("page", "first", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "page")
	})
}

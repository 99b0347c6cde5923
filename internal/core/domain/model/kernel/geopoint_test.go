package kernel_test

import (
	"testing"

	"smartlogix/internal/core/domain/model/kernel"
	"smartlogix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	testCases := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid_point", latitude: 52.52, longitude: 13.405, wantErr: false},
		{name: "boundary_north_pole", latitude: 90, longitude: 0, wantErr: false},
		{name: "boundary_antimeridian", latitude: 0, longitude: -180, wantErr: false},
		{name: "latitude_too_high", latitude: 90.1, longitude: 0, wantErr: true},
		{name: "latitude_too_low", latitude: -91, longitude: 0, wantErr: true},
		{name: "longitude_too_high", latitude: 0, longitude: 180.5, wantErr: true},
		{name: "longitude_too_low", latitude: 0, longitude: -181, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tc.latitude, tc.longitude)

			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.latitude, point.Latitude(), 0)
			assert.InDelta(t, tc.longitude, point.Longitude(), 0)
			require.NoError(t, point.Validate())
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint

	require.ErrorIs(t, point.Validate(), errs.ErrValueIsRequired)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(10, 21)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

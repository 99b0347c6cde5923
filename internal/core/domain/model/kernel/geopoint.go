package kernel

import "smartlogix/internal/pkg/errs"

// Latitude/longitude bounds in decimal degrees (WGS-84).
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// GeoPoint is a value object holding a WGS-84 coordinate pair. Orders carry
// an optional GeoPoint for their current or destination location.
//
// GeoPoint is immutable; construct through NewGeoPoint, which validates that
// both coordinates lie within their permitted ranges.
type GeoPoint struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewGeoPoint creates a GeoPoint after validating both coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// out-of-range values produce a ValueIsOutOfRangeError naming the offending
// coordinate.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	if longitude < MinLongitude || longitude > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	return GeoPoint{
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// Validate ensures the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")
	}
	return nil
}

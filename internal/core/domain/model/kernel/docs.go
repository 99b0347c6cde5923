// Package kernel contains shared value objects used across the domain model:
// the UUID identifier wrapper and the GeoPoint coordinate pair. Value objects
// in this package are immutable, validated at construction, and safe for
// concurrent use.
package kernel

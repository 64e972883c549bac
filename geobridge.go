// Package geobridge is a safety and correctness layer between orb geometry
// values and two native geospatial engines: the GDAL spatial referencing API
// (coordinate reference systems and coordinate transformation) and the GEOS
// geometry engine (coordinate sequences and point/line/polygon geometries).
//
// Every native handle created by this package is exclusively owned by its Go
// wrapper and must be released exactly once with Close. Handles are never
// shared between goroutines; clone a SpatialRef or create a fresh Engine per
// goroutine instead.
package geobridge

import "github.com/rs/zerolog"

// logger receives diagnostics emitted by the native engines. It is a no-op
// logger until SetLogger installs a real one.
var logger = zerolog.Nop()

// SetLogger routes engine notices, engine errors and configuration changes
// to l. Not safe to call concurrently with other package operations.
func SetLogger(l zerolog.Logger) {
	logger = l
}

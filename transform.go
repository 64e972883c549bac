package geobridge

/*
#cgo pkg-config: gdal
#include "ogr_srs_api.h"
*/
import "C"

import (
	"unsafe"

	"github.com/paulmach/orb"
)

// Transform owns one native coordinate transformation context built from a
// source/destination pair of spatial references. It caches identity strings
// for diagnostics but does not retain the SpatialRefs themselves, so they may
// be closed once the Transform exists. Immutable after construction; release
// exactly once with Close.
type Transform struct {
	handle C.OGRCoordinateTransformationH
	from   string
	to     string
}

// NewTransform creates a transformation from src to dst. Creation fails with
// a NullHandleError when the engine cannot find a transformation path between
// the two systems.
func NewTransform(src, dst *SpatialRef) (*Transform, error) {
	hndl := C.OCTNewCoordinateTransformation(src.handle, dst.handle)
	if hndl == nil {
		return nil, lastNullPointerErr("OCTNewCoordinateTransformation")
	}
	from, err := identity(src)
	if err != nil {
		C.OCTDestroyCoordinateTransformation(hndl)
		return nil, err
	}
	to, err := identity(dst)
	if err != nil {
		C.OCTDestroyCoordinateTransformation(hndl)
		return nil, err
	}
	return &Transform{handle: hndl, from: from, to: to}, nil
}

// From returns the diagnostic identity of the source system.
func (t *Transform) From() string { return t.from }

// To returns the diagnostic identity of the destination system.
func (t *Transform) To() string { return t.to }

// identity describes a spatial reference for diagnostics, preferring the
// authority tag and falling back to the proj string export.
func identity(sr *SpatialRef) (string, error) {
	if id, err := sr.Authority(); err == nil {
		return id, nil
	}
	return sr.Proj4()
}

// Close releases the native transformation context. Safe to call more than
// once.
func (t *Transform) Close() {
	if t.handle == nil {
		return
	}
	C.OCTDestroyCoordinateTransformation(t.handle)
	t.handle = nil
}

// TransformCoords reprojects coordinates in place. xs and ys must be the same
// length; zs may be nil or shorter and is treated as zero where missing. On
// failure the buffers are left in an engine defined, possibly partially
// overwritten state and a CoordinateRangeError is returned; the engine's
// diagnostic is attached when it set one.
func (t *Transform) TransformCoords(xs, ys, zs []float64) error {
	if len(xs) != len(ys) {
		panic("geobridge: TransformCoords requires xs and ys of equal length")
	}
	if len(xs) == 0 {
		return nil
	}
	// The native call always sees three equal-length buffers.
	z := zs
	if len(z) != len(xs) {
		z = make([]float64, len(xs))
		copy(z, zs)
	}
	ok := C.OCTTransform(t.handle, C.int(len(xs)),
		(*C.double)(unsafe.Pointer(&xs[0])),
		(*C.double)(unsafe.Pointer(&ys[0])),
		(*C.double)(unsafe.Pointer(&z[0]))) != 0
	if len(zs) > 0 && len(zs) != len(xs) {
		copy(zs, z)
	}
	if !ok {
		return &CoordinateRangeError{From: t.from, To: t.to, Msg: lastCPLMessage()}
	}
	return nil
}

// TransformPoint reprojects a single 2D point, discarding the Z output.
func (t *Transform) TransformPoint(p orb.Point) (orb.Point, error) {
	xs := []float64{p[0]}
	ys := []float64{p[1]}
	zs := []float64{0}
	if err := t.TransformCoords(xs, ys, zs); err != nil {
		return orb.Point{}, err
	}
	return orb.Point{xs[0], ys[0]}, nil
}

// TransformGeometry reprojects a geometry value and returns the result. Slice
// backed geometries (lines, rings, polygons) are rewritten in place; points
// are returned as new values. A failed member aborts the whole call; the
// geometry may then be partially transformed, matching the batch contract.
func (t *Transform) TransformGeometry(g orb.Geometry) (orb.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return t.TransformPoint(v)
	case orb.LineString:
		if err := t.transformPoints(v); err != nil {
			return nil, err
		}
		return v, nil
	case orb.Polygon:
		for _, ring := range v {
			if err := t.transformPoints(ring); err != nil {
				return nil, err
			}
		}
		return v, nil
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, ring := range poly {
				if err := t.transformPoints(ring); err != nil {
					return nil, err
				}
			}
		}
		return v, nil
	case nil:
		return nil, &InvalidGeometryError{Reason: "nil geometry"}
	default:
		return nil, &InvalidGeometryError{Reason: "unsupported geometry type " + g.GeoJSONType()}
	}
}

// transformPoints batches one coordinate run through TransformCoords and
// writes the result back.
func (t *Transform) transformPoints(pts []orb.Point) error {
	if len(pts) == 0 {
		return nil
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p[0], p[1]
	}
	if err := t.TransformCoords(xs, ys, zs); err != nil {
		return err
	}
	for i := range pts {
		pts[i][0], pts[i][1] = xs[i], ys[i]
	}
	return nil
}

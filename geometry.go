package geobridge

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
*/
import "C"

import "github.com/paulmach/orb"

// Geom is an engine-owned geometry produced by the bridge. Release exactly
// once with Close, or hand it to a consumer that takes ownership.
type Geom struct {
	e *Engine
	v *C.GEOSGeometry
}

// Close destroys the native geometry. Safe to call more than once and on
// geometries whose ownership has already been transferred.
func (g *Geom) Close() {
	if g.v != nil {
		C.GEOSGeom_destroy_r(g.e.ctx, g.v)
		g.v = nil
	}
}

// IsValid reports whether the geometry is valid under the engine's rules.
func (g *Geom) IsValid() bool {
	return C.GEOSisValid_r(g.e.ctx, g.v) == 1
}

// IsRing reports whether the geometry is a closed simple linear ring.
func (g *Geom) IsRing() bool {
	return C.GEOSisRing_r(g.e.ctx, g.v) == 1
}

// IsEmpty reports whether the geometry has no coordinates.
func (g *Geom) IsEmpty() bool {
	return C.GEOSisEmpty_r(g.e.ctx, g.v) == 1
}

// NumPoints returns the coordinate count of a line or ring geometry.
func (g *Geom) NumPoints() (int, error) {
	n := C.GEOSGeomGetNumPoints_r(g.e.ctx, g.v)
	if n < 0 {
		return 0, &InvalidGeometryError{Reason: "geometry has no point count"}
	}
	return int(n), nil
}

// Geometry converts an orb geometry value into an engine-owned geometry. The
// legal shapes are a closed set: Point, LineString, Polygon and MultiPolygon.
// Conversion is a single pass with no partial result; on any failure every
// intermediate native object is released before the error returns.
func (e *Engine) Geometry(g orb.Geometry) (*Geom, error) {
	switch v := g.(type) {
	case orb.Point:
		return e.Point(v)
	case orb.LineString:
		return e.LineString(v)
	case orb.Polygon:
		return e.Polygon(v)
	case orb.MultiPolygon:
		return e.MultiPolygon(v)
	case nil:
		return nil, &InvalidGeometryError{Reason: "nil geometry"}
	default:
		return nil, &InvalidGeometryError{Reason: "unsupported geometry type " + g.GeoJSONType()}
	}
}

// Point converts a single 2D point.
func (e *Engine) Point(p orb.Point) (*Geom, error) {
	seq, err := e.buildCoordSeq([]orb.Point{p})
	if err != nil {
		return nil, err
	}
	v := C.GEOSGeom_createPoint_r(e.ctx, seq.v)
	seq.v = nil // ownership passed to the constructor
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_createPoint"}
	}
	return &Geom{e: e, v: v}, nil
}

// LineString converts an ordered run of coordinates.
func (e *Engine) LineString(ls orb.LineString) (*Geom, error) {
	seq, err := e.buildCoordSeq(ls)
	if err != nil {
		return nil, err
	}
	v := C.GEOSGeom_createLineString_r(e.ctx, seq.v)
	seq.v = nil
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_createLineString"}
	}
	return &Geom{e: e, v: v}, nil
}

// Ring converts a ring into an engine linear ring, repairing closure where
// the input allows it:
//
//   - 0 points is a legitimately empty ring.
//   - 1 or 2 points can never form a ring, even after closing.
//   - an open ring is closed by repeating its first point.
//   - a closed 3 point ring lists only 2 distinct points (a segment doubled
//     back on itself), so it is re-closed to 4 points like an open one.
func (e *Engine) Ring(r orb.Ring) (*Geom, error) {
	n := len(r)
	if n > 0 && n < 3 {
		return nil, &InvalidGeometryError{Reason: "ring must have at least 3 coordinates"}
	}
	pts := []orb.Point(r)
	if n >= 3 {
		closed := r[0] == r[n-1]
		if !closed || n == 3 {
			pts = make([]orb.Point, 0, n+1)
			pts = append(pts, r...)
			pts = append(pts, r[0])
		}
	}
	seq, err := e.buildCoordSeq(pts)
	if err != nil {
		return nil, err
	}
	v := C.GEOSGeom_createLinearRing_r(e.ctx, seq.v)
	seq.v = nil
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_createLinearRing"}
	}
	return &Geom{e: e, v: v}, nil
}

// Polygon converts an exterior ring plus zero or more holes. The first
// failing ring aborts the conversion.
func (e *Engine) Polygon(p orb.Polygon) (*Geom, error) {
	if len(p) == 0 {
		return nil, &InvalidGeometryError{Reason: "polygon has no exterior ring"}
	}
	shell, err := e.Ring(p[0])
	if err != nil {
		return nil, err
	}
	holes := make([]*Geom, 0, len(p)-1)
	for _, r := range p[1:] {
		h, err := e.Ring(r)
		if err != nil {
			shell.Close()
			for _, b := range holes {
				b.Close()
			}
			return nil, err
		}
		holes = append(holes, h)
	}
	chandles := make([]*C.GEOSGeometry, len(holes)+1)
	for i, h := range holes {
		chandles[i] = h.v
	}
	var choles **C.GEOSGeometry
	if len(holes) > 0 {
		choles = &chandles[0]
	}
	v := C.GEOSGeom_createPolygon_r(e.ctx, shell.v, choles, C.uint(len(holes)))
	// The constructor owns the rings from here, success or not.
	shell.v = nil
	for _, h := range holes {
		h.v = nil
	}
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_createPolygon"}
	}
	return &Geom{e: e, v: v}, nil
}

// MultiPolygon converts each member polygon independently and aggregates
// them. The first failing member aborts the conversion.
func (e *Engine) MultiPolygon(mp orb.MultiPolygon) (*Geom, error) {
	polys := make([]*Geom, 0, len(mp))
	for _, p := range mp {
		g, err := e.Polygon(p)
		if err != nil {
			for _, b := range polys {
				b.Close()
			}
			return nil, err
		}
		polys = append(polys, g)
	}
	chandles := make([]*C.GEOSGeometry, len(polys)+1)
	for i, g := range polys {
		chandles[i] = g.v
	}
	var cpolys **C.GEOSGeometry
	if len(polys) > 0 {
		cpolys = &chandles[0]
	}
	v := C.GEOSGeom_createCollection_r(e.ctx, C.GEOS_MULTIPOLYGON, cpolys, C.uint(len(polys)))
	for _, g := range polys {
		g.v = nil
	}
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_createCollection"}
	}
	return &Geom{e: e, v: v}, nil
}

// ReprojectGeometry transforms a geometry value with tr and hands the result
// to the geometry engine: the full construction, reprojection and bridging
// path in one call.
func ReprojectGeometry(e *Engine, tr *Transform, g orb.Geometry) (*Geom, error) {
	out, err := tr.TransformGeometry(g)
	if err != nil {
		return nil, err
	}
	return e.Geometry(out)
}

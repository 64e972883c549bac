package geobridge

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
*/
import "C"

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Decode converts an engine-owned geometry back into an orb value. The
// native geometry is read, not consumed; the caller still owns it.
func (e *Engine) Decode(g *Geom) (orb.Geometry, error) {
	return e.decode(g.v)
}

func (e *Engine) decode(v *C.GEOSGeometry) (orb.Geometry, error) {
	switch C.GEOSGeomTypeId_r(e.ctx, v) {
	case C.GEOS_POINT:
		pts, err := e.readCoords(v)
		if err != nil {
			return nil, err
		}
		if len(pts) == 0 {
			return nil, &InvalidGeometryError{Reason: "point has no coordinates"}
		}
		return pts[0], nil

	case C.GEOS_LINESTRING:
		pts, err := e.readCoords(v)
		if err != nil {
			return nil, err
		}
		return orb.LineString(pts), nil

	case C.GEOS_LINEARRING:
		pts, err := e.readCoords(v)
		if err != nil {
			return nil, err
		}
		return orb.Ring(pts), nil

	case C.GEOS_POLYGON:
		return e.decodePolygon(v)

	case C.GEOS_MULTIPOLYGON:
		n := C.GEOSGetNumGeometries_r(e.ctx, v)
		if n < 0 {
			return nil, &InvalidGeometryError{Reason: "multipolygon has no member count"}
		}
		mp := make(orb.MultiPolygon, 0, int(n))
		for i := 0; i < int(n); i++ {
			member := C.GEOSGetGeometryN_r(e.ctx, v, C.int(i))
			if member == nil {
				return nil, &NullHandleError{Op: "GEOSGetGeometryN"}
			}
			poly, err := e.decodePolygon(member)
			if err != nil {
				return nil, err
			}
			mp = append(mp, poly)
		}
		return mp, nil

	default:
		return nil, &InvalidGeometryError{Reason: "unsupported engine geometry type"}
	}
}

// decodePolygon reads a polygon's exterior and interior rings. Ring handles
// returned by the engine are borrowed, never destroyed here.
func (e *Engine) decodePolygon(v *C.GEOSGeometry) (orb.Polygon, error) {
	shell := C.GEOSGetExteriorRing_r(e.ctx, v)
	if shell == nil {
		return nil, &NullHandleError{Op: "GEOSGetExteriorRing"}
	}
	exterior, err := e.readCoords(shell)
	if err != nil {
		return nil, err
	}
	n := C.GEOSGetNumInteriorRings_r(e.ctx, v)
	if n < 0 {
		return nil, &InvalidGeometryError{Reason: "polygon has no interior ring count"}
	}
	poly := make(orb.Polygon, 0, int(n)+1)
	poly = append(poly, orb.Ring(exterior))
	for i := 0; i < int(n); i++ {
		hole := C.GEOSGetInteriorRingN_r(e.ctx, v, C.int(i))
		if hole == nil {
			return nil, &NullHandleError{Op: "GEOSGetInteriorRingN"}
		}
		pts, err := e.readCoords(hole)
		if err != nil {
			return nil, err
		}
		poly = append(poly, orb.Ring(pts))
	}
	return poly, nil
}

// readCoords copies a geometry's coordinate sequence into orb points. The
// sequence handle is borrowed from the geometry and stays engine owned.
func (e *Engine) readCoords(v *C.GEOSGeometry) ([]orb.Point, error) {
	if C.GEOSisEmpty_r(e.ctx, v) == 1 {
		return nil, nil
	}
	seq := C.GEOSGeom_getCoordSeq_r(e.ctx, v)
	if seq == nil {
		return nil, &NullHandleError{Op: "GEOSGeom_getCoordSeq"}
	}
	var size C.uint
	if C.GEOSCoordSeq_getSize_r(e.ctx, seq, &size) == 0 {
		return nil, &InvalidGeometryError{Reason: "coordinate sequence has no size"}
	}
	pts := make([]orb.Point, int(size))
	for i := range pts {
		var x, y C.double
		if C.GEOSCoordSeq_getX_r(e.ctx, seq, C.uint(i), &x) == 0 ||
			C.GEOSCoordSeq_getY_r(e.ctx, seq, C.uint(i), &y) == 0 {
			return nil, &InvalidGeometryError{Reason: fmt.Sprintf("coordinate %d is unreadable", i)}
		}
		pts[i] = orb.Point{float64(x), float64(y)}
	}
	return pts, nil
}

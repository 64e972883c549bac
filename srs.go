package geobridge

/*
#cgo pkg-config: gdal
#include "ogr_srs_api.h"
#include "cpl_conv.h"
#include <stdlib.h>
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// AxisMappingStrategy controls how a spatial reference maps its authority
// defined axes onto the x/y order used by coordinate buffers.
type AxisMappingStrategy int

const (
	// TraditionalGISOrder forces longitude/easting first regardless of the
	// authority's canonical axis order.
	TraditionalGISOrder = AxisMappingStrategy(C.OAMS_TRADITIONAL_GIS_ORDER)
	// AuthorityCompliant keeps the axis order declared by the authority.
	AuthorityCompliant = AxisMappingStrategy(C.OAMS_AUTHORITY_COMPLIANT)
)

// SpatialRef owns one native coordinate reference system. A SpatialRef is
// either fully constructed or not constructed at all; no operation observes a
// null handle. Release it exactly once with Close.
type SpatialRef struct {
	handle C.OGRSpatialReferenceH
}

// NewSpatialRef creates an empty spatial reference. The axis mapping
// strategy is left at the engine default; callers define the reference
// content afterwards.
func NewSpatialRef() (*SpatialRef, error) {
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	return &SpatialRef{handle: hndl}, nil
}

// NewSpatialRefFromWKT creates a spatial reference from an OGC WKT string.
// Axis order is normalized to TraditionalGISOrder: downstream coordinate
// consumers assume x before y whatever the authority says.
func NewSpatialRefFromWKT(wkt string) (*SpatialRef, error) {
	cstr, err := cString(wkt)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cstr))
	hndl := C.OSRNewSpatialReference(cstr)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	sr := &SpatialRef{handle: hndl}
	sr.SetAxisMappingStrategy(TraditionalGISOrder)
	return sr, nil
}

// NewSpatialRefFromDefinition creates a spatial reference from any definition
// accepted by the engine's user-input parser: WKT, "EPSG:n", proj strings,
// well known names and so on. Unlike the other constructors it does not touch
// the axis mapping strategy; callers normalize explicitly if they need to.
func NewSpatialRefFromDefinition(definition string) (*SpatialRef, error) {
	cstr, err := cString(definition)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cstr))
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	if rv := C.OSRSetFromUserInput(hndl, cstr); rv != C.OGRERR_NONE {
		C.OSRRelease(hndl)
		return nil, &RefSysError{Code: int(rv), Op: "OSRSetFromUserInput"}
	}
	return &SpatialRef{handle: hndl}, nil
}

// NewSpatialRefFromEPSG creates a spatial reference from an EPSG code and
// normalizes axis order to TraditionalGISOrder.
func NewSpatialRefFromEPSG(code uint32) (*SpatialRef, error) {
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	if rv := C.OSRImportFromEPSG(hndl, C.int(code)); rv != C.OGRERR_NONE {
		C.OSRRelease(hndl)
		return nil, &RefSysError{Code: int(rv), Op: "OSRImportFromEPSG"}
	}
	sr := &SpatialRef{handle: hndl}
	sr.SetAxisMappingStrategy(TraditionalGISOrder)
	return sr, nil
}

// NewSpatialRefFromProj4 creates a spatial reference from a legacy proj
// string and normalizes axis order to TraditionalGISOrder.
func NewSpatialRefFromProj4(proj string) (*SpatialRef, error) {
	cstr, err := cString(proj)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cstr))
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	if rv := C.OSRImportFromProj4(hndl, cstr); rv != C.OGRERR_NONE {
		C.OSRRelease(hndl)
		return nil, &RefSysError{Code: int(rv), Op: "OSRImportFromProj4"}
	}
	sr := &SpatialRef{handle: hndl}
	sr.SetAxisMappingStrategy(TraditionalGISOrder)
	return sr, nil
}

// NewSpatialRefFromESRI creates a spatial reference from an ESRI WKT dialect
// string and normalizes axis order to TraditionalGISOrder.
func NewSpatialRefFromESRI(esriWKT string) (*SpatialRef, error) {
	cstr, err := cString(esriWKT)
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cstr))
	hndl := C.OSRNewSpatialReference(nil)
	if hndl == nil {
		return nil, lastNullPointerErr("OSRNewSpatialReference")
	}
	// OSRImportFromESRI wants a NULL terminated line array.
	lines := []*C.char{cstr, nil}
	if rv := C.OSRImportFromESRI(hndl, (**C.char)(unsafe.Pointer(&lines[0]))); rv != C.OGRERR_NONE {
		C.OSRRelease(hndl)
		return nil, &RefSysError{Code: int(rv), Op: "OSRImportFromESRI"}
	}
	sr := &SpatialRef{handle: hndl}
	sr.SetAxisMappingStrategy(TraditionalGISOrder)
	return sr, nil
}

// Close releases the native reference system. Safe to call more than once.
func (sr *SpatialRef) Close() {
	if sr.handle == nil {
		return
	}
	C.OSRRelease(sr.handle)
	sr.handle = nil
}

// Clone returns an independent copy owning its own native object. The native
// duplication call cannot fail for a live reference; a null result here is an
// invariant violation, not a recoverable condition.
func (sr *SpatialRef) Clone() *SpatialRef {
	hndl := C.OSRClone(sr.handle)
	if hndl == nil {
		panic("geobridge: OSRClone returned a null handle for a live spatial reference")
	}
	return &SpatialRef{handle: hndl}
}

// IsSame reports whether two spatial references describe the same system.
// The comparison is semantic (authority and parameters), not textual.
func (sr *SpatialRef) IsSame(other *SpatialRef) bool {
	return C.OSRIsSame(sr.handle, other.handle) != 0
}

// ogrString copies and frees a string allocated by the native engine.
func ogrString(cstr *C.char) string {
	s := C.GoString(cstr)
	C.CPLFree(unsafe.Pointer(cstr))
	return s
}

// WKT exports the spatial reference as OGC WKT.
func (sr *SpatialRef) WKT() (string, error) {
	var cwkt *C.char
	if rv := C.OSRExportToWkt(sr.handle, &cwkt); rv != C.OGRERR_NONE {
		return "", &RefSysError{Code: int(rv), Op: "OSRExportToWkt"}
	}
	return ogrString(cwkt), nil
}

// PrettyWKT exports the spatial reference as indented WKT.
func (sr *SpatialRef) PrettyWKT() (string, error) {
	var cwkt *C.char
	if rv := C.OSRExportToPrettyWkt(sr.handle, &cwkt, C.int(0)); rv != C.OGRERR_NONE {
		return "", &RefSysError{Code: int(rv), Op: "OSRExportToPrettyWkt"}
	}
	return ogrString(cwkt), nil
}

// XML exports the spatial reference as GML.
func (sr *SpatialRef) XML() (string, error) {
	var cxml *C.char
	if rv := C.OSRExportToXML(sr.handle, &cxml, nil); rv != C.OGRERR_NONE {
		return "", &RefSysError{Code: int(rv), Op: "OSRExportToXML"}
	}
	return ogrString(cxml), nil
}

// Proj4 exports the spatial reference as a legacy proj string.
func (sr *SpatialRef) Proj4() (string, error) {
	var cproj *C.char
	if rv := C.OSRExportToProj4(sr.handle, &cproj); rv != C.OGRERR_NONE {
		return "", &RefSysError{Code: int(rv), Op: "OSRExportToProj4"}
	}
	return ogrString(cproj), nil
}

// AuthorityName returns the authority name of the root node, e.g. "EPSG".
func (sr *SpatialRef) AuthorityName() (string, error) {
	cname := C.OSRGetAuthorityName(sr.handle, nil)
	if cname == nil {
		return "", &MissingAuthorityError{Op: "OSRGetAuthorityName"}
	}
	return C.GoString(cname), nil
}

// AuthorityCode returns the authority code of the root node as an integer.
func (sr *SpatialRef) AuthorityCode() (int, error) {
	ccode := C.OSRGetAuthorityCode(sr.handle, nil)
	if ccode == nil {
		return 0, &MissingAuthorityError{Op: "OSRGetAuthorityCode"}
	}
	code, err := strconv.Atoi(C.GoString(ccode))
	if err != nil {
		return 0, &MissingAuthorityError{Op: "OSRGetAuthorityCode"}
	}
	return code, nil
}

// Authority returns the "NAME:code" identity of the spatial reference, e.g.
// "EPSG:4326".
func (sr *SpatialRef) Authority() (string, error) {
	name, err := sr.AuthorityName()
	if err != nil {
		return "", err
	}
	ccode := C.OSRGetAuthorityCode(sr.handle, nil)
	if ccode == nil {
		return "", &MissingAuthorityError{Op: "OSRGetAuthorityCode"}
	}
	return name + ":" + C.GoString(ccode), nil
}

// AutoIdentifyEPSG tries to assign an EPSG authority tag by pattern matching
// the current definition. Mutates the spatial reference in place.
func (sr *SpatialRef) AutoIdentifyEPSG() error {
	if rv := C.OSRAutoIdentifyEPSG(sr.handle); rv != C.OGRERR_NONE {
		return &RefSysError{Code: int(rv), Op: "OSRAutoIdentifyEPSG"}
	}
	return nil
}

// MorphToESRI rewrites the spatial reference in place into the ESRI WKT
// dialect.
func (sr *SpatialRef) MorphToESRI() error {
	if rv := C.OSRMorphToESRI(sr.handle); rv != C.OGRERR_NONE {
		return &RefSysError{Code: int(rv), Op: "OSRMorphToESRI"}
	}
	return nil
}

// SetAxisMappingStrategy assigns the axis mapping strategy. Unconditional,
// cannot fail.
func (sr *SpatialRef) SetAxisMappingStrategy(strategy AxisMappingStrategy) {
	C.OSRSetAxisMappingStrategy(sr.handle, C.OSRAxisMappingStrategy(strategy))
}

// AxisMappingStrategy returns the current axis mapping strategy.
func (sr *SpatialRef) AxisMappingStrategy() AxisMappingStrategy {
	return AxisMappingStrategy(C.OSRGetAxisMappingStrategy(sr.handle))
}

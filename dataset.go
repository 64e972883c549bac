package geobridge

import "github.com/paulmach/orb"

// The dataset/layer/feature wrapper over the vector file-format library is an
// external collaborator. The bridge exchanges types with it and nothing else.

// GeometrySink receives engine-owned geometries together with the reference
// system they are expressed in. WriteGeometry takes ownership of g.
type GeometrySink interface {
	WriteGeometry(g *Geom, srs *SpatialRef) error
}

// GeometrySource yields application geometry values and the authority code
// of the reference system they are expressed in.
type GeometrySource interface {
	NextGeometry() (orb.Geometry, uint32, error)
}

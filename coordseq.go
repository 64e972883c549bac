package geobridge

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
*/
import "C"

import "github.com/paulmach/orb"

// coordSeq wraps a native coordinate sequence while this package still owns
// it. Ownership passes to whichever geometry constructor consumes it; after
// that the wrapper must not touch the sequence again.
type coordSeq struct {
	v *C.GEOSCoordSequence
}

func (e *Engine) newCoordSeq(size int) (*coordSeq, error) {
	v := C.GEOSCoordSeq_create_r(e.ctx, C.uint(size), 2)
	if v == nil {
		return nil, &NullHandleError{Op: "GEOSCoordSeq_create"}
	}
	return &coordSeq{v: v}, nil
}

func (e *Engine) destroyCoordSeq(s *coordSeq) {
	if s.v != nil {
		C.GEOSCoordSeq_destroy_r(e.ctx, s.v)
		s.v = nil
	}
}

// buildCoordSeq allocates a sequence of exactly len(pts) coordinates and
// assigns X and Y per index. The declared length matches the writes, but a
// rejected write is still checked, not assumed away; the sequence is
// destroyed here before the error returns.
func (e *Engine) buildCoordSeq(pts []orb.Point) (*coordSeq, error) {
	seq, err := e.newCoordSeq(len(pts))
	if err != nil {
		return nil, err
	}
	for i, p := range pts {
		if C.GEOSCoordSeq_setX_r(e.ctx, seq.v, C.uint(i), C.double(p[0])) == 0 {
			e.destroyCoordSeq(seq)
			return nil, &SequenceWriteError{Index: i, Axis: "x"}
		}
		if C.GEOSCoordSeq_setY_r(e.ctx, seq.v, C.uint(i), C.double(p[1])) == 0 {
			e.destroyCoordSeq(seq)
			return nil, &SequenceWriteError{Index: i, Axis: "y"}
		}
	}
	return seq, nil
}

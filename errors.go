package geobridge

/*
#cgo pkg-config: gdal
#include "cpl_error.h"
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"strings"
)

// EncodingError reports a string that cannot cross into the native engines
// because it contains an embedded NUL byte.
type EncodingError struct {
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("geobridge: string %q contains an embedded NUL byte", e.Value)
}

// NullHandleError reports a native constructor that returned a null handle.
// Msg carries the engine's last-error text when one was pending.
type NullHandleError struct {
	Op  string
	Msg string
}

func (e *NullHandleError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("geobridge: %s returned a null handle: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("geobridge: %s returned a null handle", e.Op)
}

// RefSysError reports a non-success status code from a named spatial
// referencing call.
type RefSysError struct {
	Code int
	Op   string
}

func (e *RefSysError) Error() string {
	return fmt.Sprintf("geobridge: %s failed with OGR error %d", e.Op, e.Code)
}

// MissingAuthorityError reports a spatial reference that carries no usable
// authority tag, which is common for proj-string or ESRI derived references.
type MissingAuthorityError struct {
	Op string
}

func (e *MissingAuthorityError) Error() string {
	return fmt.Sprintf("geobridge: spatial reference has no authority (%s)", e.Op)
}

// CoordinateRangeError reports a failed coordinate transformation. From and
// To identify the source and destination reference systems. Msg is the
// engine's diagnostic for the failure and is empty when the engine set none;
// some failures legitimately leave the error buffer blank.
type CoordinateRangeError struct {
	From string
	To   string
	Msg  string
}

func (e *CoordinateRangeError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("geobridge: cannot transform coordinates from %s to %s: %s", e.From, e.To, e.Msg)
	}
	return fmt.Sprintf("geobridge: cannot transform coordinates from %s to %s", e.From, e.To)
}

// InvalidGeometryError reports a geometry value the bridge cannot hand to the
// engine.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return "geobridge: invalid geometry: " + e.Reason
}

// SequenceWriteError reports an ordinate write rejected by the geometry
// engine.
type SequenceWriteError struct {
	Index int
	Axis  string
}

func (e *SequenceWriteError) Error() string {
	return fmt.Sprintf("geobridge: coordinate sequence rejected %s value at index %d", e.Axis, e.Index)
}

// cString validates that s can be embedded as a native C string and copies
// it to C memory. The caller frees the result.
func cString(s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &EncodingError{Value: s}
	}
	return C.CString(s), nil
}

// lastCPLMessage drains the engine's last-error buffer. The buffer is only
// meaningful immediately after a failed call; draining resets it so a stale
// message cannot be attributed to a later failure.
func lastCPLMessage() string {
	msg := strings.TrimSpace(C.GoString(C.CPLGetLastErrorMsg()))
	C.CPLErrorReset()
	return msg
}

// lastNullPointerErr builds the error for a native constructor that returned
// null, attaching whatever diagnostic the engine left behind.
func lastNullPointerErr(op string) error {
	return &NullHandleError{Op: op, Msg: lastCPLMessage()}
}

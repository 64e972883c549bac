package geobridge

/*
#cgo pkg-config: gdal
#include "cpl_conv.h"
#include <stdlib.h>
*/
import "C"

import "unsafe"

// Process-wide configuration of the projection engine. Options set here
// override values inherited from the environment and lazily affect every
// subsequent native call, e.g. internal cache sizing. There is no teardown;
// ClearConfigOption restores the engine default for a key. Tests touching
// this table must serialize, the state is shared by the whole process.

// SetConfigOption sets a process-wide engine option.
func SetConfigOption(key, value string) error {
	ckey, err := cString(key)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(ckey))
	cval, err := cString(value)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cval))
	C.CPLSetConfigOption(ckey, cval)
	logger.Debug().Str("key", key).Str("value", value).Msg("engine config option set")
	return nil
}

// ConfigOption returns the value of an engine option, or def when the key is
// unset. A missing key is never an error.
func ConfigOption(key, def string) (string, error) {
	ckey, err := cString(key)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(ckey))
	cdef, err := cString(def)
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cdef))
	return C.GoString(C.CPLGetConfigOption(ckey, cdef)), nil
}

// ClearConfigOption removes an engine option, restoring default behavior for
// that key.
func ClearConfigOption(key string) error {
	ckey, err := cString(key)
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(ckey))
	C.CPLSetConfigOption(ckey, nil)
	logger.Debug().Str("key", key).Msg("engine config option cleared")
	return nil
}

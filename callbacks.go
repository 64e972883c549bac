package geobridge

// The exported callbacks live apart from the C wrapper definitions: a file
// containing //export functions may only declare C symbols, not define them.

/*
#include <stdlib.h>
*/
import "C"

//export geobridgeGEOSNotice
func geobridgeGEOSNotice(msg *C.char) {
	logger.Debug().Str("engine", "geos").Msg(C.GoString(msg))
}

//export geobridgeGEOSError
func geobridgeGEOSError(msg *C.char) {
	logger.Error().Str("engine", "geos").Msg(C.GoString(msg))
}

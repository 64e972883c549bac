package geobridge

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdarg.h>
#include <stdio.h>
#include <stdlib.h>

extern void geobridgeGEOSNotice(char *msg);
extern void geobridgeGEOSError(char *msg);

static void geobridge_notice_wrap(const char *fmt, ...) {
	va_list ap;
	va_start(ap, fmt);
	char buf[256];
	vsnprintf(buf, sizeof(buf), fmt, ap);
	va_end(ap);
	geobridgeGEOSNotice(buf);
}

static void geobridge_error_wrap(const char *fmt, ...) {
	va_list ap;
	va_start(ap, fmt);
	char buf[256];
	vsnprintf(buf, sizeof(buf), fmt, ap);
	va_end(ap);
	geobridgeGEOSError(buf);
}

static GEOSContextHandle_t geobridge_initGEOS() {
	return initGEOS_r(geobridge_notice_wrap, geobridge_error_wrap);
}
*/
import "C"

// Engine owns one native geometry engine context. Contexts are not safe for
// concurrent use; create one Engine per goroutine. Release exactly once with
// Close; geometries created by an Engine must be closed before it is.
type Engine struct {
	ctx C.GEOSContextHandle_t
}

// NewEngine initializes a geometry engine context with notice and error
// output routed to the package logger.
func NewEngine() *Engine {
	return &Engine{ctx: C.geobridge_initGEOS()}
}

// Close releases the engine context. Safe to call more than once.
func (e *Engine) Close() {
	if e.ctx == nil {
		return
	}
	C.finishGEOS_r(e.ctx)
	e.ctx = nil
}

// GEOSVersion returns the version string of the linked geometry engine.
func GEOSVersion() string {
	return C.GoString(C.GEOSversion())
}

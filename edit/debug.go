package edit

import (
	"log"
	"os"
)

// debugLog is nil unless debugging is enabled, matching the original's
// ITL_DEBUG compile-time gate (toiletline.h's itl_trace) with a runtime
// toggle instead, since Go has no preprocessor.
var debugLog *log.Logger

func init() {
	if os.Getenv("EDITTL_DEBUG") != "" {
		debugLog = log.New(os.Stderr, "edit: ", log.Ltime|log.Lmicroseconds)
	}
}

// SetDebug turns trace logging on or off for the lifetime of the
// process. Trace lines are written to stderr and never to the
// terminal the editor is rendering to.
func SetDebug(on bool) {
	if on {
		if debugLog == nil {
			debugLog = log.New(os.Stderr, "edit: ", log.Ltime|log.Lmicroseconds)
		}
		return
	}
	debugLog = nil
}

// debugf emits a trace line when debugging is enabled. It is a no-op
// otherwise, matching itl_trace's empty macro in release builds.
func debugf(format string, args ...any) {
	if debugLog == nil {
		return
	}
	debugLog.Printf(format, args...)
}

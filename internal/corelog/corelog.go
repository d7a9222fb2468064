// Package corelog is a thin wrapper over the standard log package for
// the solver's lifecycle events: table allocation, batch dispatch, and
// invariant violations.
package corelog

import "log"

// Info logs a lifecycle event.
func Info(format string, args ...any) {
	log.Printf(format, args...)
}

// Warn logs a recoverable anomaly.
func Warn(format string, args ...any) {
	log.Printf("WARN: "+format, args...)
}

// Fatal logs an unrecoverable internal inconsistency and panics. Use only
// for invariant violations that should be impossible in correct operation.
func Fatal(format string, args ...any) {
	log.Panicf(format, args...)
}

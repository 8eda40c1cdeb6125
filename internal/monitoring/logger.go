// Package monitoring carries the engine's diagnostic logging hook. The
// compute kernels are silent; only long-running estimators (the
// bootstrap loop) report anomalies here, so callers embedding the
// engine can redirect or mute diagnostics without touching results.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to
// log.Printf and may be replaced via SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, muting diagnostics entirely.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

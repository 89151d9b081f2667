/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package plog provides conditional debug logging gated by a package-level
// flag, in the teacher's plog idiom: a single D function rather than a
// structured-logging handler.
package plog

import (
	"fmt"
	"os"
)

// Debug, when true, makes D print. Off by default.
var Debug bool

// Verbose, when true and Debug is also true, makes the hot-path loggers
// (Advance/Current) print as well. Off by default — even with Debug on,
// the hot path stays silent unless Verbose is also requested.
var Verbose bool

// IsThisDebug reports whether debug logging is currently enabled.
func IsThisDebug() bool {
	return Debug
}

// D prints format/a to stderr if Debug is true.
func D(format string, a ...any) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

// DV prints format/a to stderr only if both Debug and Verbose are true —
// for the Advance/Current hot path.
func DV(format string, a ...any) {
	if !Debug || !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

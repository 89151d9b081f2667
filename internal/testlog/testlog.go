/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package testlog gives tests a T-scoped logger, trimmed down from the
// teacher's ptesting benchmark/fuzz helpers to the one thing this module's
// tests need: a gated Logf that only prints under `go test -v`.
package testlog

import "testing"

// Logf logs format/a via t.Logf, gated by t.Verbose so quiet test runs stay
// quiet.
func Logf(t *testing.T, format string, a ...any) {
	if !testing.Verbose() {
		return
	}
	t.Helper()
	t.Logf(format, a...)
}

/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package perrors enrichens error values with a closed set of error kinds
// and a captured stack trace.
//
//	err := perrors.NewAllocation("path buffer")
//	perrors.Short(err) // one line: kind, message, func-file:line
//	perrors.Long(err)  // kind, message and full stack
package perrors

import "fmt"

const (
	// Allocation indicates resource acquisition failed during construction,
	// frame push, or path growth.
	Allocation Kind = iota + 1
	// NotFound is returned by advance-into/expand-dir when a directory
	// exists but is empty.
	NotFound
	// OSError wraps an underlying syscall failure.
	OSError
	// Repository indicates a structural violation, eg. a bare repository
	// requested as a workdir iterator, or working directory depth exceeded.
	Repository
	// Invalid indicates a disallowed configuration change.
	Invalid
)

// Kind is one of the five error kinds this module surfaces (spec §7).
type Kind uint8

var kindNames = map[Kind]string{
	Allocation: "allocation",
	NotFound:   "not-found",
	OSError:    "os-error",
	Repository: "repository",
	Invalid:    "invalid",
}

func (k Kind) String() (s string) {
	if s = kindNames[k]; s != "" {
		return
	}
	return fmt.Sprintf("?kind%d", uint8(k))
}

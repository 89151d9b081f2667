/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"errors"
	"fmt"
	"runtime"
)

// kindError is a Kind-tagged error carrying a stack trace captured at the
// point of construction.
//   - implements error, and exposes Unwrap for errors.Is/errors.As against
//     both the Kind and any wrapped collaborator error
type kindError struct {
	kind  Kind
	msg   string
	cause error
	stack []uintptr
}

var _ error = (*kindError)(nil)

func (e *kindError) Error() (s string) {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Unwrap allows errors.Is(err, cause) to reach any wrapped collaborator error
func (e *kindError) Unwrap() error {
	return e.cause
}

// Is allows errors.Is(err, perrors.NotFound) to match by kind
//   - errors.Is compares against a *kindError target built for the same kind
func (e *kindError) Is(target error) bool {
	var ke *kindError
	if errors.As(target, &ke) {
		return ke.kind == e.kind && ke.cause == nil && ke.msg == ""
	}
	return false
}

// KindOf returns the Kind of err, and whether err was produced by this
// package
func KindOf(err error) (kind Kind, ok bool) {
	var ke *kindError
	if ok = errors.As(err, &ke); ok {
		kind = ke.kind
	}
	return
}

func newKindError(kind Kind, cause error, format string, a ...any) *kindError {
	return &kindError{
		kind:  kind,
		msg:   fmt.Sprintf(format, a...),
		cause: cause,
		stack: captureStack(3),
	}
}

func captureStack(skip int) (stack []uintptr) {
	stack = make([]uintptr, 32)
	n := runtime.Callers(skip+1, stack)
	return stack[:n]
}

// NewAllocation returns an Allocation-kind error
func NewAllocation(format string, a ...any) error {
	return newKindError(Allocation, nil, format, a...)
}

// NewNotFound returns a NotFound-kind error
func NewNotFound(format string, a ...any) error {
	return newKindError(NotFound, nil, format, a...)
}

// NewOSError wraps a syscall/os error with the OSError kind
func NewOSError(cause error, format string, a ...any) error {
	return newKindError(OSError, cause, format, a...)
}

// NewRepository returns a Repository-kind error
func NewRepository(format string, a ...any) error {
	return newKindError(Repository, nil, format, a...)
}

// NewInvalid returns an Invalid-kind error
func NewInvalid(format string, a ...any) error {
	return newKindError(Invalid, nil, format, a...)
}

// Is builds a sentinel of kind for use with errors.Is, eg.:
//
//	if errors.Is(err, perrors.Is(perrors.NotFound)) { … }
func Is(kind Kind) error {
	return &kindError{kind: kind}
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package submodule implements the submodule-registry collaborator consumed
// by the workdir iterator (§6): Lookup reports whether a workdir path is
// registered as a submodule, in which case its subtree is collapsed to a
// single gitlink entry instead of being descended into.
package submodule

import "errors"

// ErrNotFound means "not a submodule" — any other error is a real lookup
// failure, matching git_submodule_lookup's NOT_FOUND-means-"not a
// submodule" contract (§6).
var ErrNotFound = errors.New("submodule: not found")

// Status describes a registered submodule.
type Status struct {
	Path string
	// Oid is the gitlink's recorded commit, zero if never initialized.
	Oid [20]byte
}

// Registry resolves a workdir path to its submodule Status.
type Registry interface {
	Lookup(path string) (Status, error)
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package gititer is the unified hierarchical iterator subsystem: a single
// traversal contract over a committed tree, a staging index, or a working
// directory, each rendered as the same Entry sequence under a shared
// path-range and case-folding policy.
package gititer

import (
	"errors"

	"github.com/google/uuid"

	"github.com/arnekeller/gititer/objectdb"
	"github.com/arnekeller/gititer/pathrange"
	"github.com/arnekeller/gititer/perrors"
	"github.com/arnekeller/gititer/plog"
	"github.com/arnekeller/gititer/stageindex"
)

// ErrUnsupported is returned by every concrete iterator's Seek: none of the
// three renders the commented-out pop-stack/bsearch/push-descent algorithm
// the original left stubbed out (§9 Open Questions).
var ErrUnsupported = errors.New("gititer: seek not supported, use Reset")

// Iterator is the dispatch façade (§4.1): the seven operations every
// concrete iterator — empty, tree, index, workdir — implements identically
// in shape, differently in backing source.
//
//   - Current yields the entry at the current position without moving;
//     yields (Entry{}, false) iff AtEnd.
//   - Advance moves to the next entry in traversal order; auto-expands into
//     a directory unless SuppressAutoExpand is set.
//   - AdvanceInto descends into the current entry if it is a directory;
//     otherwise it leaves state unchanged and Current's own ok/entry are
//     returned unmodified.
//   - Seek is reserved and returns ErrUnsupported on every concrete type.
//   - Reset rebinds start/end and repositions at the smallest included path.
//   - AtEnd reports whether Advance will never yield again.
//   - Free releases owned resources; idempotent, safe after a failed
//     construction.
type Iterator interface {
	Current() (entry Entry, ok bool)
	Advance() (entry Entry, ok bool, err error)
	AdvanceInto() (entry Entry, ok bool, err error)
	Seek(prefix string) error
	Reset(start, end string) error
	AtEnd() bool
	Free()

	// id is the per-instance identity used only for plog debug lines; it
	// distinguishes concurrently traversing iterators over the same
	// repository in interleaved output (§5, §20).
	id() uuid.UUID
}

// base carries the fields every concrete iterator shares (§3, "Iterator
// base"): range bounds, flags, the bound comparator, and identity.
type base struct {
	flags Flags
	rng   pathrange.Range
	uuid  uuid.UUID
}

func newBase(flags Flags, ignoreCase bool, start, end string) base {
	flags = flags.Normalize()
	cmp := pathrange.Select(flags.ignoreCase(ignoreCase))
	return base{
		flags: flags,
		rng:   pathrange.NewRange(start, end, cmp),
		uuid:  uuid.New(),
	}
}

func (b *base) id() uuid.UUID { return b.uuid }

// ForNothing returns C2, the empty iterator — the shared null case used
// when a tree/index/workdir source is itself absent.
func ForNothing(flags Flags, start, end string) (Iterator, error) {
	it := &emptyIterator{base: newBase(flags, false, start, end)}
	plog.D("gititer %s: ForNothing flags=%s start=%q end=%q", it.uuid, fmtFlags(it.flags), start, end)
	return it, nil
}

// ForTree returns C3, a DFS iterator over tree's object-database subtree.
// A nil tree degrades to ForNothing, matching git_iterator_for_tree's own
// "tree == NULL" fallback.
func ForTree(tree objectdb.Tree, store objectdb.TreeStore, flags Flags, start, end string) (Iterator, error) {
	if tree == nil {
		return ForNothing(flags, start, end)
	}
	return newTreeIterator(tree, store, flags, start, end)
}

// ForIndex returns C4, a sequential walk over index with synthetic
// directory entries when IncludeTrees is set.
func ForIndex(index stageindex.Index, flags Flags, start, end string) (Iterator, error) {
	return newIndexIterator(index, flags, start, end)
}

// WorkdirDeps bundles C5's external collaborators: the directory loader,
// the ignore engine, and the submodule registry (§6).
type WorkdirDeps struct {
	Loader    workdirLoader
	Ignore    ignoreEngine
	Submodule submoduleRegistry
	// Watcher is optional live-invalidation support (§19); nil disables it.
	Watcher workdirWatcher
}

// ForWorkdir returns C5, a recursive directory listing of root with ignore
// integration and submodule collapsing. root must be a directory; depth
// beyond 100 fails construction with a Repository-kind error (§7, §8).
func ForWorkdir(root string, deps WorkdirDeps, flags Flags, start, end string) (Iterator, error) {
	return newWorkdirIterator(root, deps, flags, start, end)
}

// GetIndex returns the backing index of it if it is an index iterator,
// else ok is false (§6, "Auxiliary queries").
func GetIndex(it Iterator) (index stageindex.Index, ok bool) {
	ii, isIndex := it.(*indexIterator)
	if !isIndex {
		return nil, false
	}
	return ii.index, true
}

// CurrentTreeEntry returns the raw tree entry at it's current position if it
// is a tree iterator.
func CurrentTreeEntry(it Iterator) (te objectdb.TreeEntry, ok bool) {
	ti, isTree := it.(*treeIterator)
	if !isTree || len(ti.frames) == 0 {
		return objectdb.TreeEntry{}, false
	}
	return ti.currentTreeEntry()
}

// CurrentParentTree walks the tree-iterator frame chain and returns the
// tree object corresponding to prefix, a prefix path of the current entry
// (§21, restored from original_source/ — git_iterator_current_parent_tree).
func CurrentParentTree(it Iterator, prefix string) (tree objectdb.Tree, ok bool) {
	ti, isTree := it.(*treeIterator)
	if !isTree {
		return nil, false
	}
	return ti.currentParentTree(prefix)
}

// CurrentIsIgnored reports whether it's current entry is ignored; only
// meaningful for a workdir iterator, else returns false.
func CurrentIsIgnored(it Iterator) (ignored bool) {
	wi, isWorkdir := it.(*workdirIterator)
	if !isWorkdir {
		return false
	}
	return wi.currentIsIgnored()
}

// CurrentWorkdirPath returns the absolute host path of it's current entry;
// only meaningful for a workdir iterator, else returns "".
func CurrentWorkdirPath(it Iterator) (path string) {
	wi, isWorkdir := it.(*workdirIterator)
	if !isWorkdir {
		return ""
	}
	return wi.currentWorkdirPath()
}

// SetIgnoreCase mutates it's case-folding policy post-construction. Per
// §4.1 this is only ever allowed on the empty iterator; called on any other
// concrete iterator it returns an Invalid-kind error and leaves it
// unchanged.
func SetIgnoreCase(it Iterator, ignoreCase bool) error {
	e, isEmpty := it.(*emptyIterator)
	if !isEmpty {
		return perrors.NewInvalid("gititer: case-fold toggle on a non-empty iterator")
	}
	e.setIgnoreCase(ignoreCase)
	return nil
}

// Cmp returns the sign of prefixcmp(currentPath, prefix): +1 when it is
// exhausted, -1 when prefix is empty (§6).
func Cmp(it Iterator, prefix string) int {
	entry, ok := it.Current()
	if !ok {
		return 1
	}
	if prefix == "" {
		return -1
	}
	return pathrange.PrefixCmp(entry.Path, prefix)
}

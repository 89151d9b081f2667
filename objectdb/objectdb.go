/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package objectdb defines the object-database collaborator the tree
// iterator consumes (§6), plus MemoryStore, a reference in-memory
// implementation used by tests.
package objectdb

// Oid is a content identifier. The zero Oid denotes "no object" (used by
// synthetic directory entries the index iterator fabricates).
type Oid [32]byte

// TreeEntry is one child of a Tree: name, mode bits, and the object it
// points at. IsTree distinguishes a subtree from a leaf without requiring a
// further lookup.
type TreeEntry struct {
	Name   string
	Mode   uint32
	Oid    Oid
	IsTree bool
}

// Tree is a reference-counted, immutable directory-shaped object.
// Grounded on tree_entrycount/tree_entry_byindex/tree_prefix_position/
// tree_dup/tree_free.
type Tree interface {
	// EntryCount returns the number of direct children.
	EntryCount() int
	// EntryAt returns the i'th child in on-disk (case-sensitive) order.
	EntryAt(i int) TreeEntry
	// PrefixPosition returns the index of the first child whose name is
	// >= prefix under case-sensitive comparison (tree_prefix_position).
	PrefixPosition(prefix string) int
	// Dup increments this tree's reference count and returns the same
	// logical tree; Free must be called once per Dup (and once for the
	// value returned by Lookup).
	Dup() Tree
	// Free decrements the reference count, releasing the tree once it
	// reaches zero. Idempotent beyond the paired Dup/Lookup contract is not
	// required; each acquired reference is freed exactly once.
	Free()
}

// TreeStore resolves an Oid to its Tree, grounded on tree_lookup.
type TreeStore interface {
	Lookup(oid Oid) (Tree, error)
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package stageindex defines the staging-index collaborator consumed by the
// index iterator (§6), plus FlatIndex, a reference in-memory implementation.
package stageindex

import "sort"

// IndexEntry is one row of the flat staging index.
//   - Stage is nonzero for an unresolved merge-conflict entry; the index
//     iterator silently skips nonzero-stage entries
type IndexEntry struct {
	Path string
	Mode uint32
	Oid  [32]byte
	Stage int
}

// Index is the flat, lexicographically sorted collaborator the index
// iterator walks. Grounded on entrycount/get_byindex/entry_stage/
// prefix_position/ignore_case in §6.
type Index interface {
	// EntryCount returns the number of rows, conflict stages included.
	EntryCount() int
	// EntryAt returns the entry at flat position i.
	EntryAt(i int) *IndexEntry
	// PrefixPosition returns the flat position of the first entry whose
	// path is >= prefix, under the index's own collation.
	PrefixPosition(prefix string) int
	// IgnoreCase reports this index's own case-folding attribute, inherited
	// by a constructor that sets neither IgnoreCase nor DoNotIgnoreCase.
	IgnoreCase() bool
}

// FlatIndex is a reference Index backed by a plain sorted slice.
//   - entries are sorted and PrefixPosition searches case-sensitively,
//     whatever the ignoreCase attribute; ignoreCase is only reported by
//     IgnoreCase
type FlatIndex struct {
	entries    []IndexEntry
	ignoreCase bool
}

// NewFlatIndex sorts entries by Path and returns a FlatIndex over them.
func NewFlatIndex(entries []IndexEntry, ignoreCase bool) *FlatIndex {
	sorted := append([]IndexEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })
	return &FlatIndex{entries: sorted, ignoreCase: ignoreCase}
}

func (x *FlatIndex) EntryCount() int { return len(x.entries) }

func (x *FlatIndex) EntryAt(i int) *IndexEntry {
	if i < 0 || i >= len(x.entries) {
		return nil
	}
	return &x.entries[i]
}

func (x *FlatIndex) PrefixPosition(prefix string) int {
	return sort.Search(len(x.entries), func(i int) bool {
		return x.entries[i].Path >= prefix
	})
}

func (x *FlatIndex) IgnoreCase() bool { return x.ignoreCase }

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package objectdb

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync/atomic"
)

// MemoryStore is a reference TreeStore holding trees content-addressed by
// sha256 over their serialized, sorted entry list — no real git object
// format is in scope (spec §1, object database is an external collaborator).
type MemoryStore struct {
	trees map[Oid]*memTreeData
}

// NewMemoryStore returns an empty store. Use Put to register trees before
// they can be Looked up.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trees: make(map[Oid]*memTreeData)}
}

// Put registers a tree's entries, sorting a copy of them by Name
// case-sensitively, and returns the Oid it will be found under via Lookup.
func (s *MemoryStore) Put(entries []TreeEntry) (oid Oid) {
	sorted := append([]TreeEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	oid = hashEntries(sorted)
	if _, ok := s.trees[oid]; !ok {
		s.trees[oid] = &memTreeData{entries: sorted}
	}
	return oid
}

func (s *MemoryStore) Lookup(oid Oid) (Tree, error) {
	data, ok := s.trees[oid]
	if !ok {
		return nil, fmt.Errorf("objectdb: tree not found: %x", oid)
	}
	atomic.AddInt32(&data.refCount, 1)
	return &memTree{data: data}, nil
}

func hashEntries(entries []TreeEntry) (oid Oid) {
	h := sha256.New()
	for _, e := range entries {
		fmt.Fprintf(h, "%s\x00%d\x00%x\x00%t\n", e.Name, e.Mode, e.Oid, e.IsTree)
	}
	copy(oid[:], h.Sum(nil))
	return
}

// memTreeData is the shared, refcounted backing store for one tree's entries.
type memTreeData struct {
	entries  []TreeEntry
	refCount int32
}

// memTree is one held reference to a memTreeData.
type memTree struct {
	data *memTreeData
}

func (t *memTree) EntryCount() int { return len(t.data.entries) }

func (t *memTree) EntryAt(i int) TreeEntry { return t.data.entries[i] }

func (t *memTree) PrefixPosition(prefix string) int {
	entries := t.data.entries
	return sort.Search(len(entries), func(i int) bool {
		return entries[i].Name >= prefix
	})
}

func (t *memTree) Dup() Tree {
	atomic.AddInt32(&t.data.refCount, 1)
	return &memTree{data: t.data}
}

func (t *memTree) Free() {
	atomic.AddInt32(&t.data.refCount, -1)
}

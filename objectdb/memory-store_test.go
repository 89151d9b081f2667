/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package objectdb

import "testing"

func TestMemoryStorePutLookup(t *testing.T) {
	store := NewMemoryStore()
	oid := store.Put([]TreeEntry{
		{Name: "b.txt", Mode: 0o100644},
		{Name: "a.txt", Mode: 0o100644},
	})

	tree, err := store.Lookup(oid)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	defer tree.Free()

	if n := tree.EntryCount(); n != 2 {
		t.Fatalf("EntryCount() = %d, want 2", n)
	}
	if e := tree.EntryAt(0); e.Name != "a.txt" {
		t.Errorf("EntryAt(0) = %q, want a.txt (Put must sort)", e.Name)
	}
	if e := tree.EntryAt(1); e.Name != "b.txt" {
		t.Errorf("EntryAt(1) = %q, want b.txt", e.Name)
	}
}

func TestMemoryStoreLookupUnknownOid(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Lookup(Oid{0xff}); err == nil {
		t.Error("Lookup(unknown) error = nil, want non-nil")
	}
}

func TestMemoryStorePrefixPosition(t *testing.T) {
	store := NewMemoryStore()
	oid := store.Put([]TreeEntry{
		{Name: "a.txt"}, {Name: "m.txt"}, {Name: "z.txt"},
	})
	tree, err := store.Lookup(oid)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	defer tree.Free()

	if p := tree.PrefixPosition("m.txt"); p != 1 {
		t.Errorf("PrefixPosition(m.txt) = %d, want 1", p)
	}
	if p := tree.PrefixPosition(""); p != 0 {
		t.Errorf("PrefixPosition(\"\") = %d, want 0", p)
	}
	if p := tree.PrefixPosition("zzz"); p != 3 {
		t.Errorf("PrefixPosition(zzz) = %d, want 3", p)
	}
}

func TestMemoryStorePutIsContentAddressed(t *testing.T) {
	store := NewMemoryStore()
	entries := []TreeEntry{{Name: "a.txt", Mode: 0o100644}}
	oid1 := store.Put(entries)
	oid2 := store.Put(append([]TreeEntry(nil), entries...))
	if oid1 != oid2 {
		t.Error("Put() of identical entries produced different Oids")
	}
}

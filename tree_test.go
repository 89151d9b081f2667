/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"testing"

	"github.com/arnekeller/gititer/objectdb"
)

// buildTree registers one tree level (and recursively any subtrees named in
// children via sub) and returns its Oid.
func buildTree(t *testing.T, store *objectdb.MemoryStore, entries []objectdb.TreeEntry) objectdb.Oid {
	t.Helper()
	return store.Put(entries)
}

func TestTreeIteratorFlatWalk(t *testing.T) {
	store := objectdb.NewMemoryStore()
	root := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "a.txt", Mode: gitModeExecBit, IsTree: false},
		{Name: "b.txt", Mode: 0o100644, IsTree: false},
		{Name: "c.txt", Mode: 0o100644, IsTree: false},
	})
	tree, err := store.Lookup(root)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	it, err := ForTree(tree, store, 0, "", "")
	if err != nil {
		t.Fatalf("ForTree() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTreeIteratorAutoExpandsSubtrees(t *testing.T) {
	store := objectdb.NewMemoryStore()
	sub := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "inner.txt", Mode: 0o100644},
	})
	root := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "dir", Mode: gitModeTree, Oid: sub, IsTree: true},
		{Name: "top.txt", Mode: 0o100644},
	})
	tree, _ := store.Lookup(root)

	it, err := ForTree(tree, store, 0, "", "")
	if err != nil {
		t.Fatalf("ForTree() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	want := []string{"dir/inner.txt", "top.txt"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTreeIteratorIncludeTreesYieldsDirectoryOnce(t *testing.T) {
	store := objectdb.NewMemoryStore()
	sub := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "inner.txt", Mode: 0o100644},
	})
	root := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "dir", Mode: gitModeTree, Oid: sub, IsTree: true},
	})
	tree, _ := store.Lookup(root)

	it, err := ForTree(tree, store, IncludeTrees, "", "")
	if err != nil {
		t.Fatalf("ForTree() error = %v", err)
	}
	defer it.Free()

	var got []Entry
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got), got)
	}
	if got[0].Path != "dir/" || got[0].Mode != ModeTree {
		t.Errorf("entry 0 = %+v, want dir/ ModeTree", got[0])
	}
	if got[1].Path != "dir/inner.txt" {
		t.Errorf("entry 1 = %+v, want dir/inner.txt", got[1])
	}
}

func TestTreeIteratorRangeTeleportsToEnd(t *testing.T) {
	store := objectdb.NewMemoryStore()
	root := buildTree(t, store, []objectdb.TreeEntry{
		{Name: "a.txt", Mode: 0o100644},
		{Name: "m.txt", Mode: 0o100644},
		{Name: "z.txt", Mode: 0o100644},
	})
	tree, _ := store.Lookup(root)

	it, err := ForTree(tree, store, 0, "", "m.txt")
	if err != nil {
		t.Fatalf("ForTree() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	want := []string{"a.txt", "m.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTreeIteratorSeekUnsupported(t *testing.T) {
	store := objectdb.NewMemoryStore()
	root := buildTree(t, store, []objectdb.TreeEntry{{Name: "a.txt", Mode: 0o100644}})
	tree, _ := store.Lookup(root)
	it, err := ForTree(tree, store, 0, "", "")
	if err != nil {
		t.Fatalf("ForTree() error = %v", err)
	}
	defer it.Free()

	if err := it.Seek("a.txt"); err != ErrUnsupported {
		t.Errorf("Seek() error = %v, want ErrUnsupported", err)
	}
}

func TestForTreeNilDegradesToEmpty(t *testing.T) {
	it, err := ForTree(nil, nil, 0, "", "")
	if err != nil {
		t.Fatalf("ForTree(nil) error = %v", err)
	}
	if !it.AtEnd() {
		t.Error("ForTree(nil) should be AtEnd immediately")
	}
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"testing"

	"github.com/arnekeller/gititer/stageindex"
)

func TestIndexIteratorFlatWalk(t *testing.T) {
	idx := stageindex.NewFlatIndex([]stageindex.IndexEntry{
		{Path: "a.txt", Mode: 0o100644},
		{Path: "dir/b.txt", Mode: 0o100644},
		{Path: "dir/c.txt", Mode: gitModeExecBit},
	}, false)

	it, err := ForIndex(idx, 0, "", "")
	if err != nil {
		t.Fatalf("ForIndex() error = %v", err)
	}
	defer it.Free()

	var got []Entry
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e)
	}
	want := []string{"a.txt", "dir/b.txt", "dir/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i].Path != w {
			t.Errorf("entry %d = %q, want %q", i, got[i].Path, w)
		}
	}
	if got[2].Mode != ModeExecutable {
		t.Errorf("dir/c.txt mode = %s, want executable", got[2].Mode)
	}
}

func TestIndexIteratorIncludeTreesSyntheticDirectories(t *testing.T) {
	idx := stageindex.NewFlatIndex([]stageindex.IndexEntry{
		{Path: "dir/a.txt", Mode: 0o100644},
		{Path: "dir/b.txt", Mode: 0o100644},
		{Path: "top.txt", Mode: 0o100644},
	}, false)

	it, err := ForIndex(idx, IncludeTrees, "", "")
	if err != nil {
		t.Fatalf("ForIndex() error = %v", err)
	}
	defer it.Free()

	var got []Entry
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e)
	}
	want := []struct {
		path string
		mode Mode
	}{
		{"dir/", ModeTree},
		{"dir/a.txt", ModeRegular},
		{"dir/b.txt", ModeRegular},
		{"top.txt", ModeRegular},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %d entries", got, len(want))
	}
	for i, w := range want {
		if got[i].Path != w.path || got[i].Mode != w.mode {
			t.Errorf("entry %d = %+v, want {%s %s}", i, got[i], w.path, w.mode)
		}
	}
}

func TestIndexIteratorSkipsConflictStages(t *testing.T) {
	idx := stageindex.NewFlatIndex([]stageindex.IndexEntry{
		{Path: "a.txt", Mode: 0o100644, Stage: 1},
		{Path: "a.txt", Mode: 0o100644, Stage: 2},
		{Path: "a.txt", Mode: 0o100644, Stage: 3},
		{Path: "b.txt", Mode: 0o100644, Stage: 0},
	}, false)

	it, err := ForIndex(idx, 0, "", "")
	if err != nil {
		t.Fatalf("ForIndex() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	if len(got) != 1 || got[0] != "b.txt" {
		t.Errorf("got %v, want [b.txt]", got)
	}
}

func TestIndexIteratorAdvanceIntoEntersSyntheticDirectory(t *testing.T) {
	idx := stageindex.NewFlatIndex([]stageindex.IndexEntry{
		{Path: "dir/sub/a.txt", Mode: 0o100644},
	}, false)

	it, err := ForIndex(idx, IncludeTrees, "", "")
	if err != nil {
		t.Fatalf("ForIndex() error = %v", err)
	}
	defer it.Free()

	e, ok := it.Current()
	if !ok || e.Path != "dir/" {
		t.Fatalf("Current() = %+v, want dir/", e)
	}
	e, ok, err = it.AdvanceInto()
	if err != nil {
		t.Fatalf("AdvanceInto() error = %v", err)
	}
	if !ok || e.Path != "dir/sub/" {
		t.Fatalf("AdvanceInto() = %+v, want dir/sub/", e)
	}
}

func TestIndexIteratorSeekUnsupported(t *testing.T) {
	idx := stageindex.NewFlatIndex([]stageindex.IndexEntry{{Path: "a.txt"}}, false)
	it, err := ForIndex(idx, 0, "", "")
	if err != nil {
		t.Fatalf("ForIndex() error = %v", err)
	}
	defer it.Free()
	if err := it.Seek("a.txt"); err != ErrUnsupported {
		t.Errorf("Seek() error = %v, want ErrUnsupported", err)
	}
}

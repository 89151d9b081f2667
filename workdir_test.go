/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnekeller/gititer/fsload"
	"github.com/arnekeller/gititer/ignoreengine"
	"github.com/arnekeller/gititer/submodule"
)

// writeTree materializes a small fixture directory tree for workdir tests.
func writeTree(t *testing.T) (root string) {
	t.Helper()
	root = t.TempDir()
	mustWrite := func(rel, content string) {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) error = %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", full, err)
		}
	}
	mustWrite(".git/HEAD", "ref: refs/heads/main\n")
	mustWrite("a.txt", "a")
	mustWrite("dir/b.txt", "b")
	mustWrite("dir/c.txt", "c")
	return root
}

func newWorkdirDeps(root string) WorkdirDeps {
	return WorkdirDeps{
		Loader: &fsload.Loader{Root: root},
		Ignore: ignoreengine.NewStackEngine(nil),
	}
}

func TestWorkdirIteratorSkipsDotGit(t *testing.T) {
	root := writeTree(t)
	it, err := ForWorkdir(root, newWorkdirDeps(root), 0, "", "")
	if err != nil {
		t.Fatalf("ForWorkdir() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	want := []string{"a.txt", "dir/b.txt", "dir/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("entry %d = %q, want %q", i, got[i], w)
		}
	}
}

func TestWorkdirIteratorIncludeTreesYieldsDirectory(t *testing.T) {
	root := writeTree(t)
	it, err := ForWorkdir(root, newWorkdirDeps(root), IncludeTrees, "", "")
	if err != nil {
		t.Fatalf("ForWorkdir() error = %v", err)
	}
	defer it.Free()

	var got []string
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, e.Path)
	}
	want := []string{"a.txt", "dir/", "dir/b.txt", "dir/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWorkdirIteratorSubmoduleCollapse(t *testing.T) {
	root := writeTree(t)
	if err := os.MkdirAll(filepath.Join(root, "vendor", "lib"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "vendor", "lib", "inner.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	deps := newWorkdirDeps(root)
	oid := [20]byte{1, 2, 3}
	deps.Submodule = submodule.InMemoryRegistry{"vendor/lib": submodule.Status{Path: "vendor/lib", Oid: oid}}

	it, err := ForWorkdir(root, deps, 0, "", "")
	if err != nil {
		t.Fatalf("ForWorkdir() error = %v", err)
	}
	defer it.Free()

	var found *Entry
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		if e.Path == "vendor/lib" {
			cp := e
			found = &cp
		}
	}
	if found == nil {
		t.Fatal("vendor/lib not observed")
	}
	if found.Mode != ModeGitlink {
		t.Errorf("vendor/lib mode = %s, want gitlink", found.Mode)
	}
	if found.Oid != oidFrom20(oid) {
		t.Errorf("vendor/lib oid = %x, want %x", found.Oid, oidFrom20(oid))
	}
}

func TestForWorkdirRejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := ForWorkdir(file, newWorkdirDeps(root), 0, "", ""); err == nil {
		t.Error("ForWorkdir(file) error = nil, want a Repository-kind error")
	}
}

func TestWorkdirIteratorCurrentIsIgnored(t *testing.T) {
	root := writeTree(t)
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("a.txt\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	deps := newWorkdirDeps(root)
	deps.Ignore = ignoreengine.NewStackEngine([]string{"a.txt"})

	it, err := ForWorkdir(root, deps, 0, "", "")
	if err != nil {
		t.Fatalf("ForWorkdir() error = %v", err)
	}
	defer it.Free()

	var sawIgnored bool
	for e, ok := it.Current(); ok; e, ok, err = it.Advance() {
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		if e.Path == "a.txt" && CurrentIsIgnored(it) {
			sawIgnored = true
		}
	}
	if !sawIgnored {
		t.Error("a.txt was never observed as ignored")
	}
}

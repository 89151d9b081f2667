/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package fsload implements the dirload_with_stat collaborator (§6): one
// level of real-filesystem directory listing, pre-sorted by the requested
// collation and pre-filtered to a [start,end] range, as the workdir iterator
// requires of it.
package fsload

import (
	"os"
	"sort"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/arnekeller/gititer/pathrange"
	"github.com/arnekeller/gititer/perrors"
)

// PathWithStat is one listed child: its path relative to dir, and the
// lstat-obtained metadata (symlinks are not followed).
type PathWithStat struct {
	Path string
	Stat os.FileInfo
}

// Loader lists one directory level against the real filesystem.
type Loader struct {
	// Root is the workdir iterator's traversal root; every Dirload path
	// join is confined inside it via securejoin.SecureJoin.
	Root string
}

// DirloadWithStat lists dir (an absolute path under l.Root), returning
// entries sorted by cmp and filtered to rng — the exact contract §6
// requires of dirload_with_stat. rootLen is unused by this reference
// implementation (the root-relative path is the caller's responsibility)
// but kept in the signature to mirror the collaborator interface exactly.
func (l *Loader) DirloadWithStat(dir string, rootLen int, rng pathrange.Range) (out []PathWithStat, err error) {
	names, err := readDirNames(dir)
	if err != nil {
		return nil, perrors.NewOSError(err, "fsload: read directory %s", dir)
	}
	sort.Slice(names, func(i, j int) bool { return rng.Cmp(names[i], names[j]) < 0 })

	out = make([]PathWithStat, 0, len(names))
	for _, name := range names {
		if !rng.Includes(name) {
			continue
		}
		full, err := securejoin.SecureJoin(l.Root, dir[len(l.Root):]+"/"+name)
		if err != nil {
			return nil, perrors.NewOSError(err, "fsload: secure join %s/%s", dir, name)
		}
		info, err := os.Lstat(full)
		if err != nil {
			return nil, perrors.NewOSError(err, "fsload: lstat %s", full)
		}
		out = append(out, PathWithStat{Path: name, Stat: info})
	}
	return out, nil
}

// readDirNames reads one directory's entry basenames, unsorted.
func readDirNames(dir string) (names []string, err error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

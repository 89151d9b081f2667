/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"sort"

	"github.com/arnekeller/gititer/fsload"
)

// workdirFrame is one level of the workdir iterator's descent, grounded on
// workdir_iterator_frame: an ordered vector of (path, stat) one directory
// deep, and a current index.
type workdirFrame struct {
	entries []fsload.PathWithStat
	index   int
}

// seekStart positions the frame at the first entry whose path is >= start
// under cmp, then steps past a leading ".git" entry — workdir_iterator__
// seek_frame_start.
func (wf *workdirFrame) seekStart(start string, cmp func(a, b string) int) {
	if start == "" {
		wf.index = 0
	} else {
		wf.index = sort.Search(len(wf.entries), func(i int) bool {
			return cmp(wf.entries[i].Path, start) >= 0
		})
	}
	if wf.index < len(wf.entries) && isDotGit(wf.entries[wf.index].Path) {
		wf.index++
	}
}

func (wf *workdirFrame) current() (e fsload.PathWithStat, ok bool) {
	if wf.index < 0 || wf.index >= len(wf.entries) {
		return fsload.PathWithStat{}, false
	}
	return wf.entries[wf.index], true
}

// isDotGit reports whether path's last component is ".git" (any case),
// with or without a trailing slash — ported from path_is_dotgit, the only
// hard-coded name in the whole subsystem.
func isDotGit(path string) bool {
	n := len(path)
	if n < 4 {
		return false
	}
	if path[n-1] == '/' {
		n--
	}
	if n < 4 {
		return false
	}
	if lower(path[n-1]) != 't' || lower(path[n-2]) != 'i' ||
		lower(path[n-3]) != 'g' || lower(path[n-4]) != '.' {
		return false
	}
	return n == 4 || path[n-5] == '/'
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

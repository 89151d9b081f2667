/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"strings"

	"github.com/arnekeller/gititer/pathrange"
	"github.com/arnekeller/gititer/stageindex"
)

// indexIterator is C4: a sequential walk over a sorted flat index with
// synthetic "intermediate directory" entries, grounded on the
// index_iterator__* family in iterator.c. Per §9's design note, the
// in-place '\0'-swap partial/partial_pos/restore_terminator trio is not
// ported; a synthetic directory is instead a distinct substring of the
// current leaf's own path, cursor-tracked by emittedPrefixLen.
type indexIterator struct {
	base
	index stageindex.Index
	pos   int

	// leafPath is the real entry's path at pos, cached across
	// synthetic-directory emission; emittedPrefixLen is how much of it has
	// already been yielded as synthetic directories (the byte offset of
	// the most recently inserted '\0' in the original, now just a length).
	leafPath         string
	emittedPrefixLen int
}

var _ Iterator = (*indexIterator)(nil)

func newIndexIterator(index stageindex.Index, flags Flags, start, end string) (it *indexIterator, err error) {
	b := newBase(flags, index.IgnoreCase(), start, end)
	ii := &indexIterator{base: b, index: index}
	if err = ii.Reset(start, end); err != nil {
		ii.Free()
		return nil, err
	}
	return ii, nil
}

// entryAt returns the index entry at pos, clamping pos to entryCount (and
// returning nil) once PastEnd is reached — index_iterator__index_entry.
func (ii *indexIterator) entryAt(pos int) *stageindex.IndexEntry {
	ie := ii.index.EntryAt(pos)
	if ie != nil && ii.rng.PastEnd(ie.Path) {
		ii.pos = ii.index.EntryCount()
		return nil
	}
	return ie
}

// skipConflicts advances past nonzero-stage entries — index_iterator__skip_conflicts.
func (ii *indexIterator) skipConflicts() {
	for {
		ie := ii.entryAt(ii.pos)
		if ie == nil || ie.Stage == 0 {
			return
		}
		ii.pos++
	}
}

// nextPrefixTree advances the synthetic-directory cursor to the next '/'
// boundary in leafPath, or to len(leafPath) when none remains — the
// distinct-string equivalent of index_iterator__next_prefix_tree.
func (ii *indexIterator) nextPrefixTree() {
	if !ii.flags.includeTrees() {
		return
	}
	if slash := strings.IndexByte(ii.leafPath[ii.emittedPrefixLen:], '/'); slash >= 0 {
		ii.emittedPrefixLen += slash + 1
	} else {
		ii.emittedPrefixLen = len(ii.leafPath)
	}
	if ii.entryAt(ii.pos) == nil {
		ii.emittedPrefixLen = len(ii.leafPath)
	}
}

// firstPrefixTree establishes leafPath/emittedPrefixLen for the entry now
// at pos, computing the longest common prefix (truncated to the last '/')
// with the previously emitted leaf — index_iterator__first_prefix_tree.
func (ii *indexIterator) firstPrefixTree() {
	ie := ii.entryAt(ii.pos)
	if ie == nil || !ii.flags.includeTrees() {
		return
	}
	l := commonSlashPrefixLen(ie.Path, ii.leafPath)
	ii.leafPath = ie.Path
	ii.emittedPrefixLen = l
	ii.nextPrefixTree()
}

// commonSlashPrefixLen returns the length of the longest common prefix of
// a and b, truncated back to end just after the last shared '/'.
func commonSlashPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	lastSlash := -1
	for i < n && a[i] == b[i] {
		if a[i] == '/' {
			lastSlash = i
		}
		i++
	}
	return lastSlash + 1
}

// inSynthetic reports whether the iterator is currently positioned on a
// synthetic directory entry rather than the real leaf at pos.
func (ii *indexIterator) inSynthetic() bool {
	return ii.flags.includeTrees() && ii.emittedPrefixLen < len(ii.leafPath)
}

func (ii *indexIterator) Current() (entry Entry, ok bool) {
	ie := ii.entryAt(ii.pos)
	if ie == nil {
		return Entry{}, false
	}
	if ii.inSynthetic() {
		return Entry{Mode: ModeTree, Path: ii.leafPath[:ii.emittedPrefixLen]}, true
	}
	return Entry{Mode: modeFromIndex(ie.Mode), Oid: ie.Oid, Path: ie.Path}, true
}

func (ii *indexIterator) AtEnd() bool {
	return ii.entryAt(ii.pos) == nil
}

func (ii *indexIterator) Advance() (entry Entry, ok bool, err error) {
	entryCount := ii.index.EntryCount()

	if ii.inSynthetic() {
		if ii.flags.autoExpand() {
			ii.nextPrefixTree()
		} else {
			dirPrefix := ii.leafPath[:ii.emittedPrefixLen]
			for ii.pos < entryCount {
				ii.pos++
				ie := ii.entryAt(ii.pos)
				if ie == nil || !hasPrefixCmp(ii.rng.Cmp, ie.Path, dirPrefix) {
					break
				}
			}
			ii.skipConflicts()
			ii.firstPrefixTree()
		}
	} else {
		if ii.pos < entryCount {
			ii.pos++
		}
		ii.skipConflicts()
		ii.firstPrefixTree()
	}

	entry, ok = ii.Current()
	return entry, ok, nil
}

func (ii *indexIterator) AdvanceInto() (entry Entry, ok bool, err error) {
	if ii.inSynthetic() {
		ii.nextPrefixTree()
	}
	entry, ok = ii.Current()
	return entry, ok, nil
}

func (ii *indexIterator) Seek(prefix string) error { return ErrUnsupported }

func (ii *indexIterator) Reset(start, end string) (err error) {
	ii.rng.Start, ii.rng.End = start, end

	if start != "" {
		ii.pos = ii.index.PrefixPosition(start)
	} else {
		ii.pos = 0
	}
	ii.skipConflicts()

	ie := ii.entryAt(ii.pos)
	if ie == nil {
		return nil
	}
	ii.leafPath = ie.Path
	ii.emittedPrefixLen = 0
	if start != "" {
		if len(start) > len(ii.leafPath) {
			ii.emittedPrefixLen = len(ii.leafPath)
		} else {
			ii.emittedPrefixLen = len(start)
		}
	}
	ii.nextPrefixTree()
	return nil
}

func (ii *indexIterator) Free() {}

// hasPrefixCmp reports whether s begins with prefix under cmp.
func hasPrefixCmp(cmp pathrange.Cmp, s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return cmp(s[:len(prefix)], prefix) == 0
}

func modeFromIndex(mode uint32) Mode {
	switch mode {
	case gitModeSymlink:
		return ModeSymlink
	case gitModeGitlink:
		return ModeGitlink
	default:
		if mode&gitModeExecBit != 0 {
			return ModeExecutable
		}
		return ModeRegular
	}
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"sort"

	"github.com/arnekeller/gititer/objectdb"
	"github.com/arnekeller/gititer/pathrange"
)

// treeFrame is one level of the tree iterator's DFS descent, grounded on
// tree_iterator_frame. Rendered per §9's design note as a slice element
// (owned by treeIterator.frames) instead of a doubly-linked list node: a
// depth index replaces pointer walking, and CurrentParentTree walks the
// slice front-to-back instead of following prev.
type treeFrame struct {
	tree     objectdb.Tree
	start    string // range start restricted to this frame's sub-path
	index    int
	icaseMap []int // permutation of [0..n) yielding case-insensitive order; nil when case-sensitive
}

// newTreeFrame builds a frame over tree, sorting an icase secondary-order
// map when ignoreCase is set (tree_iterator__push_frame).
func newTreeFrame(tree objectdb.Tree, start string, ignoreCase bool) *treeFrame {
	tf := &treeFrame{tree: tree, start: start}
	n := tree.EntryCount()
	if n == 0 {
		return tf
	}
	if ignoreCase {
		tf.icaseMap = make([]int, n)
		for i := range tf.icaseMap {
			tf.icaseMap[i] = i
		}
		sort.SliceStable(tf.icaseMap, func(a, b int) bool {
			ea := tree.EntryAt(tf.icaseMap[a])
			eb := tree.EntryAt(tf.icaseMap[b])
			return pathrange.PrefixCmpFold(ea.Name, eb.Name) < 0
		})
	}
	tf.seekStart()
	return tf
}

// entryAt translates i through the icase map when active, else returns the
// raw on-disk index — tree_iterator__tree_entry.
func (tf *treeFrame) entryAt(i int) objectdb.TreeEntry {
	if tf.icaseMap != nil {
		return tf.tree.EntryAt(tf.icaseMap[i])
	}
	return tf.tree.EntryAt(i)
}

// current returns the entry at tf.index, or ok=false if the frame is
// exhausted.
func (tf *treeFrame) current() (te objectdb.TreeEntry, ok bool) {
	if tf.index >= tf.tree.EntryCount() {
		return objectdb.TreeEntry{}, false
	}
	return tf.entryAt(tf.index), true
}

// seekStart positions tf.index at the first entry compatible with tf.start,
// grounded on tree_iterator__frame_seek_start: a case-sensitive binary
// search when not folding, else a bsearch over the icase map followed by a
// linear rewind while the preceding entry still shares the folded prefix
// (stable start positioning).
func (tf *treeFrame) seekStart() {
	if tf.start == "" {
		tf.index = 0
		return
	}
	if tf.icaseMap == nil {
		tf.index = tf.tree.PrefixPosition(tf.start)
		return
	}
	n := len(tf.icaseMap)
	tf.index = sort.Search(n, func(i int) bool {
		e := tf.entryAt(i)
		return pathrange.PrefixCmpFold(e.Name, tf.start) >= 0
	})
	for tf.index > 0 {
		prev := tf.entryAt(tf.index - 1)
		if !hasCaseFoldPrefix(prev.Name, tf.start) {
			break
		}
		tf.index--
	}
}

// hasCaseFoldPrefix reports whether name shares tf.start as a case-folded
// prefix, mirroring tree_iterator__frame_start_icmp's min-length strncasecmp.
func hasCaseFoldPrefix(name, start string) bool {
	minLen := len(name)
	if len(start) < minLen {
		minLen = len(start)
	}
	return pathrange.PrefixCmpFold(name[:minLen], start[:minLen]) == 0
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"strings"

	"github.com/arnekeller/gititer/objectdb"
	"github.com/arnekeller/gititer/perrors"
	"github.com/arnekeller/gititer/plog"
)

// treeIterator is C3: a DFS over an object-database tree with a frame
// stack and optional case-insensitive secondary ordering, grounded on the
// tree_iterator__* family in iterator.c.
type treeIterator struct {
	base
	store  objectdb.TreeStore
	frames []*treeFrame // depth-indexed; frames[0] is the root, never popped
	path   []string     // path.ptr rendered as owned segments instead of a byte buffer
}

var _ Iterator = (*treeIterator)(nil)

func newTreeIterator(tree objectdb.Tree, store objectdb.TreeStore, flags Flags, start, end string) (it *treeIterator, err error) {
	root := tree.Dup()
	b := newBase(flags, false, start, end)
	ti := &treeIterator{base: b, store: store}
	ti.frames = append(ti.frames, newTreeFrame(root, start, ti.flags.ignoreCase(false)))
	plog.D("gititer %s: ForTree flags=%s start=%q end=%q", ti.uuid, fmtFlags(ti.flags), start, end)

	// Under IncludeTrees a tree entry must be yielded by itself before it is
	// descended into (§4.1): at rest, expandTree only ever runs when
	// directories are invisible and can be tunnelled through transparently.
	// Explicit descent past an already-observed tree entry goes through
	// AdvanceInto instead (see Advance's first branch).
	if ti.flags.autoExpand() && !ti.flags.includeTrees() {
		if err = ti.expandTree(); err != nil {
			ti.Free()
			return nil, err
		}
	}
	return ti, nil
}

// top returns the innermost frame.
func (ti *treeIterator) top() *treeFrame { return ti.frames[len(ti.frames)-1] }

// currentTreeEntry returns the raw tree entry at the top frame's position,
// grounded on tree_iterator__tree_entry.
func (ti *treeIterator) currentTreeEntry() (te objectdb.TreeEntry, ok bool) {
	return ti.top().current()
}

// currentPath lazily joins ti.path with the current entry's filename,
// appending "/" for a subtree — tree_iterator__current_filename.
func (ti *treeIterator) currentPath(te objectdb.TreeEntry) string {
	segs := append(append([]string(nil), ti.path...), te.Name)
	p := strings.Join(segs, "/")
	if te.IsTree {
		p += "/"
	}
	return p
}

// popExhaustedFrames centralizes the AtEnd invariant (§9 Open Questions):
// every mutator that might leave an exhausted top-of-stack frame funnels
// through here instead of duplicating the pop loop. Each pop exposes a
// parent frame still pointed at the subtree entry just finished, so the
// parent's index is advanced past it before re-checking — tree_iterator__pop_frame's
// "++iterator->index" done by the caller on return, mirrored in
// workdir_iterator__advance (iterator.c:983-1001).
func (ti *treeIterator) popExhaustedFrames() {
	for len(ti.frames) > 1 {
		top := ti.top()
		if _, ok := top.current(); ok {
			return
		}
		ti.popFrame()
		ti.top().index++
	}
}

// popFrame releases the innermost frame's tree and truncates the path,
// unless it is the root frame, which stays alive so AtEnd can keep
// answering (tree_iterator__pop_frame).
func (ti *treeIterator) popFrame() (popped bool) {
	if len(ti.frames) <= 1 {
		return false
	}
	top := ti.frames[len(ti.frames)-1]
	top.tree.Free()
	ti.frames = ti.frames[:len(ti.frames)-1]
	if len(ti.path) > 0 {
		ti.path = ti.path[:len(ti.path)-1]
	}
	return true
}

// toEnd pops every non-root frame and parks the root's index past its last
// child — tree_iterator__to_end, invoked when range end is passed mid-descent.
func (ti *treeIterator) toEnd() {
	for ti.popFrame() {
	}
	ti.frames[0].index = ti.frames[0].tree.EntryCount()
}

func (ti *treeIterator) Current() (entry Entry, ok bool) {
	te, ok := ti.currentTreeEntry()
	if !ok {
		return Entry{}, false
	}
	path := ti.currentPath(te)
	if ti.rng.PastEnd(path) {
		ti.toEnd()
		return Entry{}, false
	}
	return Entry{Mode: modeOf(te), Oid: oidOf(te.Oid), Path: path}, true
}

func (ti *treeIterator) AtEnd() bool {
	_, ok := ti.currentTreeEntry()
	return !ok
}

// expandTree descends into the current entry while it is a subtree,
// grounded on tree_iterator__expand_tree: loads the subtree via the object
// store, pushes a frame, narrowing its start to the remainder after a
// matched prefix, and stops after one push when IncludeTrees requests the
// directory itself be observed before descent.
func (ti *treeIterator) expandTree() (err error) {
	for {
		te, ok := ti.currentTreeEntry()
		if !ok || !te.IsTree {
			return nil
		}
		path := ti.currentPath(te)
		if ti.rng.PastEnd(path) {
			ti.toEnd()
			return nil
		}

		subtree, err := ti.store.Lookup(te.Oid)
		if err != nil {
			return perrors.NewOSError(err, "gititer: tree lookup %x", te.Oid)
		}

		top := ti.top()
		relStart := ""
		if top.start != "" && strings.HasPrefix(top.start, te.Name) {
			if rest := top.start[len(te.Name):]; strings.HasPrefix(rest, "/") {
				relStart = rest[1:]
			}
		}

		ti.path = append(ti.path, te.Name)
		ti.frames = append(ti.frames, newTreeFrame(subtree, relStart, ti.flags.ignoreCase(false)))
		// an empty subtree is popped at once, leaving its parent on the next child
		ti.popExhaustedFrames()

		if ti.flags.includeTrees() {
			return nil
		}
	}
}

func (ti *treeIterator) AdvanceInto() (entry Entry, ok bool, err error) {
	te, has := ti.currentTreeEntry()
	if has && te.IsTree {
		if err = ti.expandTree(); err != nil {
			return Entry{}, false, err
		}
	}
	entry, ok = ti.Current()
	return entry, ok, nil
}

func (ti *treeIterator) Advance() (entry Entry, ok bool, err error) {
	te, has := ti.currentTreeEntry()
	if has && te.IsTree && ti.flags.autoExpand() {
		return ti.AdvanceInto()
	}

	ti.top().index++
	ti.popExhaustedFrames()

	te, has = ti.currentTreeEntry()
	if has && te.IsTree && !ti.flags.includeTrees() {
		return ti.AdvanceInto()
	}
	entry, ok = ti.Current()
	return entry, ok, nil
}

func (ti *treeIterator) Seek(prefix string) error { return ErrUnsupported }

func (ti *treeIterator) Reset(start, end string) (err error) {
	for ti.popFrame() {
	}
	ti.path = ti.path[:0]
	ti.rng.Start, ti.rng.End = start, end
	ti.frames[0].start = start
	ti.frames[0].seekStart()

	if ti.flags.autoExpand() && !ti.flags.includeTrees() {
		return ti.expandTree()
	}
	return nil
}

func (ti *treeIterator) Free() {
	for ti.popFrame() {
	}
	if len(ti.frames) > 0 {
		ti.frames[0].tree.Free()
		ti.frames = nil
	}
}

// currentParentTree walks the frame chain root-to-top looking for the frame
// whose accumulated path equals prefix, restored per §21 from
// git_iterator_current_parent_tree.
func (ti *treeIterator) currentParentTree(prefix string) (tree objectdb.Tree, ok bool) {
	prefix = strings.TrimSuffix(prefix, "/")
	acc := ""
	for depth, frame := range ti.frames {
		if acc == prefix {
			return frame.tree, true
		}
		if depth < len(ti.path) {
			if acc == "" {
				acc = ti.path[depth]
			} else {
				acc = acc + "/" + ti.path[depth]
			}
		}
	}
	if acc == prefix && len(ti.frames) > 0 {
		return ti.top().tree, true
	}
	return nil, false
}

// git tree-entry mode bits this module recognizes; the object database is an
// external collaborator (§1) so these constants describe only the subset of
// git's filemode_t this iterator must branch on.
const (
	gitModeTree    = 0o040000
	gitModeSymlink = 0o120000
	gitModeGitlink = 0o160000
	gitModeExecBit = 0o111
)

func modeOf(te objectdb.TreeEntry) Mode {
	switch {
	case te.IsTree || te.Mode == gitModeTree:
		return ModeTree
	case te.Mode == gitModeSymlink:
		return ModeSymlink
	case te.Mode == gitModeGitlink:
		return ModeGitlink
	case te.Mode&gitModeExecBit != 0:
		return ModeExecutable
	default:
		return ModeRegular
	}
}

func oidOf(oid objectdb.Oid) (out [32]byte) {
	return [32]byte(oid)
}

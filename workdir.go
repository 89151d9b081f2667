/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import (
	"errors"
	"os"
	"strings"

	"github.com/arnekeller/gititer/fsload"
	"github.com/arnekeller/gititer/pathrange"
	"github.com/arnekeller/gititer/perrors"
	"github.com/arnekeller/gititer/plog"
	"github.com/arnekeller/gititer/submodule"
)

// workdirMaxDepth bounds the frame stack — WORKDIR_MAX_DEPTH in
// iterator.c — a guard against symlink loops and pathological trees rather
// than a real traversal limit.
const workdirMaxDepth = 100

// workdirLoader narrows fsload.Loader to the one method the workdir
// iterator consumes (§6).
type workdirLoader interface {
	DirloadWithStat(dir string, rootLen int, rng pathrange.Range) ([]fsload.PathWithStat, error)
}

// ignoreEngine narrows ignoreengine.Engine to the methods the workdir
// iterator consumes, pushed and popped in lockstep with its frame stack.
type ignoreEngine interface {
	PushDir(dirname string, patterns []string)
	PopDir()
	Lookup(path string) bool
	Depth() int
	Free()
}

// submoduleRegistry narrows submodule.Registry to the one method consumed.
type submoduleRegistry interface {
	Lookup(path string) (submodule.Status, error)
}

// workdirWatcher narrows watch.Watcher to the methods consumed when live
// invalidation is wired in (§19).
type workdirWatcher interface {
	WatchDir(dir string) error
	UnwatchDir(dir string)
}

// workdirIterator is C5: a recursive real-filesystem listing with ignore
// integration and submodule collapsing, grounded on the
// workdir_iterator__* family in iterator.c.
type workdirIterator struct {
	base
	root string // absolute, trailing "/"
	deps WorkdirDeps

	frames []*workdirFrame
	path   []string // path segments below root, owned (mirrors treeIterator.path)

	ignoredKnown bool
	ignoredVal   bool
}

var _ Iterator = (*workdirIterator)(nil)

func newWorkdirIterator(root string, deps WorkdirDeps, flags Flags, start, end string) (it *workdirIterator, err error) {
	info, statErr := os.Stat(root)
	if statErr != nil || !info.IsDir() {
		return nil, perrors.NewRepository("gititer: workdir root %s is not a directory", root)
	}
	root = strings.TrimRight(root, "/") + "/"

	b := newBase(flags, false, start, end)
	wi := &workdirIterator{base: b, root: root, deps: deps}
	plog.D("gititer %s: ForWorkdir root=%s flags=%s start=%q end=%q", wi.uuid, root, fmtFlags(wi.flags), start, end)
	plog.HostFingerprint(wi.uuid.String())

	if err = wi.pushFrame(start, true); err != nil {
		wi.Free()
		return nil, err
	}
	wi.settle()

	// As in the tree iterator, a directory entry under IncludeTrees must be
	// observed by itself before being descended into (§4.1); at rest,
	// expandInto only runs when directories are invisible and can be
	// tunnelled through transparently.
	if wi.flags.autoExpand() && !wi.flags.includeTrees() {
		if err = wi.expandInto(); err != nil {
			wi.Free()
			return nil, err
		}
	}
	return wi, nil
}

func (wi *workdirIterator) top() *workdirFrame { return wi.frames[len(wi.frames)-1] }

// pushFrame lists the directory at wi.path (wi.root when wi.path is empty),
// seeds the new frame and, unless isRoot (the ignore engine is seeded once
// by the caller at construction, per ignoreengine.NewStackEngine), pushes
// its .gitignore patterns and registers it with the watcher — grounded on
// workdir_iterator__expand_dir's alloc/dirload/seek/push sequence.
func (wi *workdirIterator) pushFrame(start string, isRoot bool) (err error) {
	if len(wi.frames) >= workdirMaxDepth {
		return perrors.NewRepository("gititer: workdir depth exceeded %d levels", workdirMaxDepth)
	}
	relDir := strings.Join(wi.path, "/")
	absDir := wi.root + relDir

	entries, err := wi.deps.Loader.DirloadWithStat(absDir, len(wi.root), wi.rng)
	if err != nil {
		return err
	}

	frame := &workdirFrame{entries: entries}
	frame.seekStart(start, wi.rng.Cmp)
	wi.frames = append(wi.frames, frame)

	if !isRoot && wi.deps.Ignore != nil {
		wi.deps.Ignore.PushDir(relDir, readGitignorePatterns(absDir))
	}
	if wi.deps.Watcher != nil {
		_ = wi.deps.Watcher.WatchDir(absDir)
	}
	wi.ignoredKnown = false
	plog.DV("gititer %s: push frame %q depth=%d", wi.uuid, relDir, len(wi.frames))
	return nil
}

// popFrame releases the innermost frame, popping the ignore engine and
// unwatching the directory in lockstep, unless it is the root frame, which
// stays alive so AtEnd can keep answering (workdir_iterator__pop_frame).
func (wi *workdirIterator) popFrame() (popped bool) {
	if len(wi.frames) <= 1 {
		return false
	}
	relDir := strings.Join(wi.path, "/")
	wi.frames = wi.frames[:len(wi.frames)-1]
	wi.path = wi.path[:len(wi.path)-1]
	if wi.deps.Ignore != nil {
		wi.deps.Ignore.PopDir()
	}
	if wi.deps.Watcher != nil {
		wi.deps.Watcher.UnwatchDir(wi.root + relDir)
	}
	wi.ignoredKnown = false
	return true
}

// toEnd pops every non-root frame and parks the root past its last entry —
// workdir_iterator__to_end, invoked when range end is passed mid-descent.
func (wi *workdirIterator) toEnd() {
	for wi.popFrame() {
	}
	wi.frames[0].index = len(wi.frames[0].entries)
}

// settle pops exhausted frames and skips ".git" and unsupported file kinds
// at the new top, repeating until a real entry is current or the stack
// bottoms out at the root — the combined loop tail of
// workdir_iterator__advance and update_entry's skip logic. Each pop exposes
// a parent still pointed at the subdirectory just finished, so the parent's
// index is advanced past it before the next check (iterator.c:996-999).
func (wi *workdirIterator) settle() {
	wi.ignoredKnown = false
	for {
		pe, ok := wi.top().current()
		if !ok {
			if wi.popFrame() {
				wi.top().index++
				continue
			}
			return
		}
		if isDotGit(pe.Path) || !supportedFileKind(pe.Stat) {
			wi.top().index++
			continue
		}
		return
	}
}

func (wi *workdirIterator) currentRaw() (pe fsload.PathWithStat, ok bool) {
	return wi.top().current()
}

func (wi *workdirIterator) currentPathFor(name string, isDir bool) (path string) {
	segs := append(append([]string(nil), wi.path...), name)
	path = strings.Join(segs, "/")
	if isDir {
		path += "/"
	}
	return path
}

// currentEntry renders the raw (path,stat) at the top frame's position into
// the Entry the façade observes: mode classification, and submodule
// collapse into a gitlink when the directory is registered — the Go
// rendering of workdir_iterator__update_entry's mode/submodule logic.
func (wi *workdirIterator) currentEntry() (entry Entry, path string, ok bool) {
	pe, ok := wi.currentRaw()
	if !ok {
		return Entry{}, "", false
	}
	isDir := pe.Stat.IsDir()
	path = wi.currentPathFor(pe.Path, isDir)
	if isDir {
		if status, lerr := wi.lookupSubmodule(strings.TrimSuffix(path, "/")); lerr == nil {
			return Entry{Mode: ModeGitlink, Oid: oidFrom20(status.Oid), Path: strings.TrimSuffix(path, "/")}, path, true
		}
	}
	return Entry{Mode: modeFromStat(pe.Stat), Path: path}, path, true
}

func (wi *workdirIterator) lookupSubmodule(path string) (submodule.Status, error) {
	if wi.deps.Submodule == nil {
		return submodule.Status{}, submodule.ErrNotFound
	}
	return wi.deps.Submodule.Lookup(path)
}

func (wi *workdirIterator) Current() (entry Entry, ok bool) {
	entry, path, ok := wi.currentEntry()
	if !ok {
		return Entry{}, false
	}
	if wi.rng.PastEnd(path) {
		wi.toEnd()
		return Entry{}, false
	}
	return entry, true
}

func (wi *workdirIterator) AtEnd() bool {
	_, ok := wi.top().current()
	return !ok
}

// descendOne pushes one frame for the directory currently positioned on,
// regardless of whether currentEntry reports it as ModeTree or a
// submodule-collapsed ModeGitlink — restoring AdvanceInto's §21 ability to
// force descent into a submodule-looking path. A vanished directory (a
// not-exist error) is swallowed as empty, matching expand_dir's NOT_FOUND
// handling. An empty directory is skipped under auto-expand; with
// SuppressAutoExpand it is not entered and a NotFound-kind error is returned.
func (wi *workdirIterator) descendOne() (err error) {
	pe, ok := wi.currentRaw()
	if !ok || !pe.Stat.IsDir() {
		return nil
	}
	wi.path = append(wi.path, pe.Path)
	if err = wi.pushFrame("", false); err != nil {
		wi.path = wi.path[:len(wi.path)-1]
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(wi.top().entries) == 0 && !wi.flags.autoExpand() {
		wi.popFrame()
		return perrors.NewNotFound("gititer: directory %s is empty", pe.Path)
	}
	wi.settle()
	return nil
}

// expandInto transparently descends into directory-mode entries the same
// way tree_iterator__expand_tree does for C3: push one frame per level,
// stopping after a single push when IncludeTrees wants the directory entry
// itself observed before descent.
func (wi *workdirIterator) expandInto() (err error) {
	for {
		cur, path, has := wi.currentEntry()
		if !has {
			return nil
		}
		if wi.rng.PastEnd(path) {
			wi.toEnd()
			return nil
		}
		if cur.Mode != ModeTree {
			return nil
		}
		if err = wi.descendOne(); err != nil {
			return err
		}
		if wi.flags.includeTrees() {
			return nil
		}
	}
}

func (wi *workdirIterator) AdvanceInto() (entry Entry, ok bool, err error) {
	if err = wi.descendOne(); err != nil {
		return Entry{}, false, err
	}
	entry, ok = wi.Current()
	return entry, ok, nil
}

func (wi *workdirIterator) Advance() (entry Entry, ok bool, err error) {
	cur, _, has := wi.currentEntry()
	if has && cur.Mode == ModeTree && wi.flags.autoExpand() {
		return wi.AdvanceInto()
	}

	wi.top().index++
	wi.settle()

	cur, _, has = wi.currentEntry()
	if has && cur.Mode == ModeTree && !wi.flags.includeTrees() {
		return wi.AdvanceInto()
	}
	entry, ok = wi.Current()
	return entry, ok, nil
}

func (wi *workdirIterator) Seek(prefix string) error { return ErrUnsupported }

func (wi *workdirIterator) Reset(start, end string) (err error) {
	for wi.popFrame() {
	}
	wi.rng.Start, wi.rng.End = start, end
	wi.frames[0].seekStart(start, wi.rng.Cmp)
	wi.ignoredKnown = false
	wi.settle()

	if wi.flags.autoExpand() && !wi.flags.includeTrees() {
		return wi.expandInto()
	}
	return nil
}

func (wi *workdirIterator) Free() {
	for wi.popFrame() {
	}
	if wi.deps.Ignore != nil {
		wi.deps.Ignore.Free()
	}
	wi.frames = nil
}

// currentIsIgnored is the lazily computed, cached tri-state CurrentIsIgnored
// reads (§6): invalidated on every frame push/pop and every move to another
// entry (ignoredKnown reset by pushFrame/popFrame/settle) so a stale verdict
// never survives a re-stamp.
func (wi *workdirIterator) currentIsIgnored() bool {
	if wi.ignoredKnown {
		return wi.ignoredVal
	}
	wi.ignoredKnown = true
	_, path, ok := wi.currentEntry()
	if !ok || wi.deps.Ignore == nil {
		wi.ignoredVal = false
		return false
	}
	wi.ignoredVal = wi.deps.Ignore.Lookup(path)
	return wi.ignoredVal
}

func (wi *workdirIterator) currentWorkdirPath() string {
	_, path, ok := wi.currentEntry()
	if !ok {
		return ""
	}
	return wi.root + path
}

func modeFromStat(info os.FileInfo) Mode {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return ModeSymlink
	case info.IsDir():
		return ModeTree
	case info.Mode()&0o111 != 0:
		return ModeExecutable
	default:
		return ModeRegular
	}
}

// supportedFileKind reports whether info is a kind this subsystem yields at
// all — sockets, devices, and other special files are silently skipped the
// way update_entry drops unsupported st_mode values.
func supportedFileKind(info os.FileInfo) bool {
	switch {
	case info.Mode()&os.ModeSymlink != 0, info.IsDir(), info.Mode().IsRegular():
		return true
	default:
		return false
	}
}

func oidFrom20(oid [20]byte) (out [32]byte) {
	copy(out[:], oid[:])
	return out
}

// readGitignorePatterns loads dir's own .gitignore, if any, as the pattern
// set pushed for that level; a missing file contributes no patterns.
func readGitignorePatterns(dir string) (patterns []string) {
	data, err := os.ReadFile(dir + "/.gitignore")
	if err != nil {
		return nil
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

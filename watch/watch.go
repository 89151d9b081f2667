/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package watch supplements spec.md (§19 of SPEC_FULL.md) with optional
// change reporting for a workdir iterator: a Watcher wraps fsnotify and
// reports a .gitignore change underneath an in-flight traversal on its
// Invalidated channel. The workdir iterator registers and unregisters the
// directories it expands (WatchDir/UnwatchDir) but does not read
// Invalidated, so its cached ignored-ness tri-state is not dropped by such
// a change. This is opt-in and never required; a workdir iterator built
// without a Watcher behaves exactly per spec.md.
package watch

import (
	"github.com/fsnotify/fsnotify"

	"github.com/arnekeller/gititer/perrors"
)

// Watcher tracks the directories a workdir iterator has expanded and
// reports when a .gitignore file beneath them changes.
type Watcher struct {
	fs        *fsnotify.Watcher
	invalidate chan string
}

// New starts a Watcher. Call Close when the owning iterator is Freed.
func New() (w *Watcher, err error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, perrors.NewOSError(err, "watch: fsnotify.NewWatcher")
	}
	w = &Watcher{fs: fsw, invalidate: make(chan string, 16)}
	go w.run()
	return w, nil
}

// WatchDir registers dir for change notification, called once per directory
// the workdir iterator expands into (mirroring the frame-stack push).
func (w *Watcher) WatchDir(dir string) (err error) {
	if err = w.fs.Add(dir); err != nil {
		return perrors.NewOSError(err, "watch: add %s", dir)
	}
	return nil
}

// UnwatchDir unregisters dir, called when the workdir iterator pops the
// corresponding frame.
func (w *Watcher) UnwatchDir(dir string) {
	_ = w.fs.Remove(dir)
}

// Invalidated returns a channel carrying the path of each .gitignore file
// that was written, created or removed. The workdir iterator does not read
// it; the channel holds 16 paths before the watcher blocks.
func (w *Watcher) Invalidated() <-chan string {
	return w.invalidate
}

func (w *Watcher) run() {
	for event := range w.fs.Events {
		if event.Name == "" {
			continue
		}
		if isGitignore(event.Name) && (event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) != 0) {
			w.invalidate <- event.Name
		}
	}
}

func isGitignore(path string) bool {
	const suffix = ".gitignore"
	if len(path) < len(suffix) {
		return false
	}
	return path[len(path)-len(suffix):] == suffix
}

// Close stops watching and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

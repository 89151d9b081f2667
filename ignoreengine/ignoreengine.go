/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package ignoreengine implements the ignore-rules collaborator consumed by
// the workdir iterator (§6): a stack of per-directory rule sets, pushed and
// popped in lockstep with the workdir frame stack (§4.3, §8 invariant 7).
package ignoreengine

import "path/filepath"

// Engine mirrors the ignore_for_path/push_dir/pop_dir/lookup/free
// collaborator of §6.
type Engine interface {
	PushDir(dirname string, patterns []string)
	PopDir()
	Lookup(path string) bool
	Depth() int
	Free()
}

// level holds the glob patterns that apply from one directory downward.
type level struct {
	dirname  string
	patterns []string
}

// StackEngine is the reference Engine: one level per PushDir call, Lookup
// checking every level's patterns from root to the innermost.
type StackEngine struct {
	levels []level
}

// NewStackEngine returns an engine seeded with the root's own patterns — the
// "seeded once" push the workdir iterator performs at root construction
// (§4.3).
func NewStackEngine(rootPatterns []string) *StackEngine {
	return &StackEngine{levels: []level{{dirname: "", patterns: rootPatterns}}}
}

func (e *StackEngine) PushDir(dirname string, patterns []string) {
	e.levels = append(e.levels, level{dirname: dirname, patterns: patterns})
}

func (e *StackEngine) PopDir() {
	if len(e.levels) > 1 {
		e.levels = e.levels[:len(e.levels)-1]
	}
}

// Lookup reports whether path matches any pattern at any level, innermost
// levels taking precedence the way .gitignore rules nest — a later,
// deeper-level match overrides an earlier exclusion.
func (e *StackEngine) Lookup(path string) bool {
	base := filepath.Base(path)
	ignored := false
	for _, lvl := range e.levels {
		for _, pat := range lvl.patterns {
			negate := len(pat) > 0 && pat[0] == '!'
			glob := pat
			if negate {
				glob = pat[1:]
			}
			if matched, _ := filepath.Match(glob, base); matched {
				ignored = !negate
				continue
			}
			if matched, _ := filepath.Match(glob, path); matched {
				ignored = !negate
			}
		}
	}
	return ignored
}

func (e *StackEngine) Depth() int { return len(e.levels) - 1 }

func (e *StackEngine) Free() {
	e.levels = nil
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import "fmt"

const (
	// force case-insensitive prefix comparison regardless of the backing
	// index's own ignore_case attribute
	IgnoreCase Flags = 1 << iota
	// force case-sensitive prefix comparison regardless of the backing
	// index's own ignore_case attribute
	DoNotIgnoreCase
	// yield a directory entry once, immediately before descending into it
	IncludeTrees
	// never auto-descend into a directory; the caller must call AdvanceInto
	SuppressAutoExpand
)

// Flags is a bitmask selecting case-folding and expansion behavior,
// passed to every constructor (ForNothing, ForTree, ForIndex, ForWorkdir).
//   - SuppressAutoExpand implies IncludeTrees: Normalize enforces this
type Flags uint8

func (f Flags) String() (s string) {
	var parts []string
	if f&IgnoreCase != 0 {
		parts = append(parts, "IgnoreCase")
	}
	if f&DoNotIgnoreCase != 0 {
		parts = append(parts, "DoNotIgnoreCase")
	}
	if f&IncludeTrees != 0 {
		parts = append(parts, "IncludeTrees")
	}
	if f&SuppressAutoExpand != 0 {
		parts = append(parts, "SuppressAutoExpand")
	}
	if len(parts) == 0 {
		return "none"
	}
	s = parts[0]
	for _, p := range parts[1:] {
		s += "|" + p
	}
	return
}

// Normalize applies the one flag-implication rule of §4.1:
// SuppressAutoExpand implies IncludeTrees.
func (f Flags) Normalize() (normalized Flags) {
	normalized = f
	if normalized&SuppressAutoExpand != 0 {
		normalized |= IncludeTrees
	}
	return
}

// autoExpand reports whether directories are transparently entered by Advance.
func (f Flags) autoExpand() (is bool) {
	return f&SuppressAutoExpand == 0
}

// includeTrees reports whether directory entries themselves are yielded.
func (f Flags) includeTrees() (is bool) {
	return f&IncludeTrees != 0
}

// ignoreCase resolves the three-source case-folding priority of §4.1:
// explicit IgnoreCase, explicit DoNotIgnoreCase, else inheritedIgnoreCase
// (typically the backing index's own ignore_case attribute).
func (f Flags) ignoreCase(inheritedIgnoreCase bool) (fold bool) {
	switch {
	case f&IgnoreCase != 0:
		return true
	case f&DoNotIgnoreCase != 0:
		return false
	default:
		return inheritedIgnoreCase
	}
}

// fmtFlags renders f for error messages and debug logging.
func fmtFlags(f Flags) string {
	return fmt.Sprintf("%s(%#02x)", f, uint8(f))
}

/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package pathrange implements C1: the [start,end] prefix-bound predicate and
// the case-sensitive/case-folding prefix comparators every iterator binds at
// construction and rebinds on Reset.
package pathrange

import (
	"strings"

	"golang.org/x/text/cases"
)

// Cmp compares two paths the way a prefix comparison is used throughout this
// module: the sign of comparing a against b, treating b as a prefix the way
// git__prefixcmp does (an a that begins with b compares equal).
type Cmp func(a, b string) int

// PrefixCmp is the case-sensitive comparator, grounded on git__prefixcmp.
func PrefixCmp(a, b string) int {
	if strings.HasPrefix(a, b) {
		return 0
	}
	return strings.Compare(a, b)
}

var foldCaser = cases.Fold()

// PrefixCmpFold is the case-folding comparator, grounded on
// git__prefixcmp_icase. Folding uses golang.org/x/text/cases for
// Unicode-aware case folding rather than ASCII strings.ToLower.
func PrefixCmpFold(a, b string) int {
	fa, fb := foldCaser.String(a), foldCaser.String(b)
	if strings.HasPrefix(fa, fb) {
		return 0
	}
	return strings.Compare(fa, fb)
}

// Select returns PrefixCmpFold when ignoreCase is true, else PrefixCmp —
// the single rebinding point used at construction and on Reset.
func Select(ignoreCase bool) Cmp {
	if ignoreCase {
		return PrefixCmpFold
	}
	return PrefixCmp
}

// Range bounds a traversal by optional inclusive path prefixes.
//   - a zero Range (both bounds empty) admits every path
type Range struct {
	Start string
	End   string
	Cmp   Cmp
}

// NewRange constructs a Range bound to cmp, the comparator already selected
// for the iterator's case-folding policy.
func NewRange(start, end string, cmp Cmp) Range {
	return Range{Start: start, End: end, Cmp: cmp}
}

// Includes reports whether path lies within [Start, End], per §4.1:
// (start == ∅ ∨ cmp(path,start) ≥ 0) ∧ (end == ∅ ∨ cmp(path,end) ≤ 0).
func (r Range) Includes(path string) (ok bool) {
	if r.Start != "" && r.Cmp(path, r.Start) < 0 {
		return false
	}
	if r.End != "" && r.Cmp(path, r.End) > 0 {
		return false
	}
	return true
}

// PastEnd reports whether path is beyond End, grounded directly on
// iterator__past_end: end != ∅ && prefixcmp(path, end) > 0.
func (r Range) PastEnd(path string) (past bool) {
	return r.End != "" && r.Cmp(path, r.End) > 0
}

// BeforeStart reports whether path lies strictly before Start.
func (r Range) BeforeStart(path string) (before bool) {
	return r.Start != "" && r.Cmp(path, r.Start) < 0
}

// Empty reports whether start > end under cmp, making every traversal
// immediately exhausted (§8 boundary behaviour: "start > end → at_end is
// immediately true").
func (r Range) Empty() (isEmpty bool) {
	return r.Start != "" && r.End != "" && r.Cmp(r.Start, r.End) > 0
}

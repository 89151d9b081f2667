/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package gititer

import "github.com/arnekeller/gititer/pathrange"

// emptyIterator is C2: the zero-entry instance, grounded verbatim on
// empty_iterator__* in iterator.c — every operation is a no-op that
// reports at_end=true.
type emptyIterator struct {
	base
}

var _ Iterator = (*emptyIterator)(nil)

func (e *emptyIterator) Current() (entry Entry, ok bool) { return Entry{}, false }

func (e *emptyIterator) Advance() (entry Entry, ok bool, err error) { return Entry{}, false, nil }

func (e *emptyIterator) AdvanceInto() (entry Entry, ok bool, err error) { return Entry{}, false, nil }

func (e *emptyIterator) Seek(prefix string) error { return ErrUnsupported }

// Reset on the empty iterator is always a no-op success, matching
// empty_iterator__reset.
func (e *emptyIterator) Reset(start, end string) error {
	e.rng.Start, e.rng.End = start, end
	return nil
}

func (e *emptyIterator) AtEnd() bool { return true }

func (e *emptyIterator) Free() {}

// setIgnoreCase mutates e's case-folding comparator in place — the one
// mutation §4.1 permits after construction, and only on the empty iterator.
func (e *emptyIterator) setIgnoreCase(ignoreCase bool) {
	if ignoreCase {
		e.flags |= IgnoreCase
		e.flags &^= DoNotIgnoreCase
	} else {
		e.flags |= DoNotIgnoreCase
		e.flags &^= IgnoreCase
	}
	e.rng.Cmp = pathrange.Select(ignoreCase)
}

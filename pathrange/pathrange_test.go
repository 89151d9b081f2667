/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pathrange

import "testing"

func TestRangeIncludes(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		path       string
		want       bool
	}{
		{"no bounds", "", "", "anything", true},
		{"at start", "m", "", "m", true},
		{"before start", "m", "", "a", false},
		{"after start", "m", "", "z", true},
		{"at end", "", "m", "m", true},
		{"past end", "", "m", "z", false},
		{"within both", "a", "z", "m", true},
		{"extends end prefix", "a", "z", "zz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(tt.start, tt.end, PrefixCmp)
			if got := r.Includes(tt.path); got != tt.want {
				t.Errorf("Includes(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRangePastEnd(t *testing.T) {
	r := NewRange("", "m", PrefixCmp)
	if r.PastEnd("a") {
		t.Error("PastEnd(a) = true, want false")
	}
	if !r.PastEnd("z") {
		t.Error("PastEnd(z) = false, want true")
	}
	unbounded := NewRange("", "", PrefixCmp)
	if unbounded.PastEnd("anything") {
		t.Error("PastEnd on unbounded range should never be true")
	}
}

func TestRangeEmpty(t *testing.T) {
	if !(NewRange("z", "a", PrefixCmp).Empty()) {
		t.Error("Empty() = false, want true when start > end")
	}
	if NewRange("a", "z", PrefixCmp).Empty() {
		t.Error("Empty() = true, want false when start <= end")
	}
	if NewRange("", "", PrefixCmp).Empty() {
		t.Error("Empty() = true, want false when both bounds are unset")
	}
}

func TestPrefixCmpFold(t *testing.T) {
	if PrefixCmpFold("README.md", "readme.md") != 0 {
		t.Error("PrefixCmpFold should treat differently-cased names as equal")
	}
	if PrefixCmpFold("a.txt", "b.txt") >= 0 {
		t.Error("PrefixCmpFold(a.txt, b.txt) should be negative")
	}
}

func TestSelect(t *testing.T) {
	if Select(true)("A", "a") != 0 {
		t.Error("Select(true) should return a case-folding comparator")
	}
	if Select(false)("A", "a") == 0 {
		t.Error("Select(false) should return a case-sensitive comparator")
	}
}

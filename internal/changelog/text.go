package changelog

import "strings"

// Text is an optional string that either borrows a slice of a larger source
// document or owns a private copy. Both forms compare equal when their
// contents match; the mode only affects memory retention. The zero value is
// an absent string.
type Text struct {
	value string
	set   bool
}

// Borrow wraps s without copying. The result keeps the memory backing s
// alive, which is what parsed values want when they point into the
// document they came from.
func Borrow(s string) Text {
	return Text{value: s, set: true}
}

// Own wraps a private copy of s.
func Own(s string) Text {
	return Text{value: strings.Clone(s), set: true}
}

// TrimBorrow trims surrounding whitespace and borrows the remainder.
// Empty or all-whitespace input yields an absent Text.
func TrimBorrow(s string) Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return Text{}
	}
	return Borrow(s)
}

// TrimOwn trims surrounding whitespace and owns the remainder.
// Empty or all-whitespace input yields an absent Text.
func TrimOwn(s string) Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return Text{}
	}
	return Own(s)
}

// Get returns the string and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.set
}

// IsSet reports whether the string is present.
func (t Text) IsSet() bool {
	return t.set
}

// String returns the contents, or "" when absent.
func (t Text) String() string {
	return t.value
}

// Equal compares presence and contents.
func (t Text) Equal(other Text) bool {
	return t.set == other.set && t.value == other.value
}

// Trim returns the trimmed form, collapsing to absent when nothing is left.
// Trimming never copies.
func (t Text) Trim() Text {
	if !t.set {
		return t
	}
	return TrimBorrow(t.value)
}

// Detach returns an owned copy that no longer references the source document.
func (t Text) Detach() Text {
	if !t.set {
		return t
	}
	return Own(t.value)
}

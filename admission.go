package u16view

import (
	"iter"
	"unicode/utf8"
	"unicode/utf16"
)

// CodeUnit admits every element type whose underlying type is uint16, such as
// uint16 itself, Char, or a caller's own unit type. int16, byte and rune do not
// qualify.
type CodeUnit interface {
	~uint16
}

// StringLike is implemented by owning strings that keep a null string apart
// from an empty one. Utf16 returns the current contents and is only read when
// IsNull reports false.
type StringLike interface {
	Utf16() []uint16
	IsNull() bool
}

// Container is the structural shape of a non-slice sequence of code units:
// a pointer to the first unit, a length, and an iteration over the units.
// View deliberately does not satisfy it.
type Container[C CodeUnit] interface {
	Ptr() *C
	Len() int
	All() iter.Seq[C]
}

// FromPtrLen views n units starting at p. n must not be negative and p may only
// be nil when n is zero, in which case the view is null.
func FromPtrLen[C CodeUnit](p *C, n int) View {
	precondition(n >= 0, "negative length")
	precondition(p != nil || n == 0, "nil pointer with non-zero length")
	if p == nil {
		return View{}
	}
	return View{d: unitsAt(p, n)}
}

// FromRange views the half-open range [first, last).
func FromRange[C CodeUnit](first, last *C) View {
	if first == nil {
		precondition(last == nil, "nil first with non-nil last")
		return View{}
	}
	return FromPtrLen(first, unitDistance(first, last))
}

// FromPtr views a zero-terminated run of units. The length is found by
// scanning for the terminator. A nil p gives a null view without scanning.
func FromPtr[C CodeUnit](p *C) View {
	if p == nil {
		return View{}
	}
	return FromPtrLen(p, ustrlen(unsafePointer(p)))
}

// FromArray views arr[:] of a fixed array whose last slot holds the
// terminator. The length is len(arr)-1; nothing is scanned.
func FromArray[C CodeUnit](arr []C) View {
	precondition(len(arr) > 0, "array without terminator slot")
	return View{d: clip(units(arr[:len(arr)-1]))}
}

// FromStringLike views an owning string. A null source gives a null view; an
// empty but non-null source gives an empty, non-null view.
func FromStringLike(s StringLike) View {
	if s.IsNull() {
		return View{}
	}
	d := s.Utf16()
	if d == nil {
		d = emptyUnits[:0:0]
	}
	return View{d: clip(d)}
}

// FromStringLikeIgnoringNull views the contents of s without looking at its
// null state.
func FromStringLikeIgnoringNull(s StringLike) View {
	return View{d: clip(s.Utf16())}
}

// From views any slice of code units. The slice's pointer and length are taken
// as they are.
func From[S ~[]C, C CodeUnit](s S) View {
	return View{d: units([]C(s))}
}

// FromContainer views a Container through its pointer and length.
func FromContainer[C CodeUnit, T Container[C]](c T) View {
	return FromPtrLen(c.Ptr(), c.Len())
}

// Of encodes a Go string into a freshly allocated buffer and views it. Unlike
// every other constructor it copies; invalid UTF-8 becomes U+FFFD.
func Of(s string) View {
	buf := make([]uint16, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		buf = utf16.AppendRune(buf, r)
	}
	return View{d: clip(buf)}
}

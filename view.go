package u16view

import (
	"iter"
	"slices"

	"github.com/rawbytedev/u16view/internal/algo"
)

// NotFound is returned by the search methods when nothing matches.
const NotFound = algo.NotFound

// View is a read-only window onto UTF-16 code units owned elsewhere. The zero
// value is the null view. Views are small values; copy them freely.
type View struct {
	d []uint16
}

// Size returns the number of code units, not decoded characters.
func (v View) Size() int { return len(v.d) }

// Length is Size.
func (v View) Length() int { return len(v.d) }

// Data returns the referenced units. The slice aliases the owner's buffer and
// must not be written to; its capacity equals its length.
func (v View) Data() []uint16 { return v.d }

// IsNull reports whether v refers to no buffer at all.
func (v View) IsNull() bool { return v.d == nil }

// IsEmpty reports whether v has no units. Null views are empty.
func (v View) IsEmpty() bool { return len(v.d) == 0 }

// At returns the unit at n. It panics unless 0 <= n < Size().
func (v View) At(n int) Char {
	precondition(n >= 0 && n < len(v.d), "index out of range")
	return Char(v.d[n])
}

// Front returns the first unit. It panics on an empty view.
func (v View) Front() Char {
	precondition(len(v.d) > 0, "front of empty view")
	return Char(v.d[0])
}

// Back returns the last unit. It panics on an empty view.
func (v View) Back() Char {
	precondition(len(v.d) > 0, "back of empty view")
	return Char(v.d[len(v.d)-1])
}

func (v View) sub(begin, end int) View { return View{d: v.d[begin:end:end]} }

// Mid returns up to n units starting at pos; a negative n reaches the end.
// It never panics. A pos past the end, or a range lying entirely before the
// start, yields a null view. A negative pos shortens n by the same amount.
func (v View) Mid(pos, n int) View {
	size := len(v.d)
	if pos > size {
		return View{}
	}
	if pos < 0 {
		if n < 0 || n+pos >= size {
			return v
		}
		if n+pos <= 0 {
			return View{}
		}
		n += pos
		pos = 0
	} else if uint(n) > uint(size-pos) {
		n = size - pos
	}
	return v.sub(pos, pos+n)
}

// Left returns the first n units. An n outside [0, Size()] selects the whole
// view, so Left(-1) is the view itself.
func (v View) Left(n int) View {
	if uint(n) >= uint(len(v.d)) {
		n = len(v.d)
	}
	return v.sub(0, n)
}

// Right returns the last n units, clamped like Left.
func (v View) Right(n int) View {
	if uint(n) >= uint(len(v.d)) {
		n = len(v.d)
	}
	return v.sub(len(v.d)-n, len(v.d))
}

// First returns the first n units. It panics unless 0 <= n <= Size().
func (v View) First(n int) View {
	precondition(n >= 0 && n <= len(v.d), "First length out of range")
	return v.sub(0, n)
}

// Last returns the last n units. It panics unless 0 <= n <= Size().
func (v View) Last(n int) View {
	precondition(n >= 0 && n <= len(v.d), "Last length out of range")
	return v.sub(len(v.d)-n, len(v.d))
}

// Sliced drops the first pos units. It panics unless 0 <= pos <= Size().
func (v View) Sliced(pos int) View {
	precondition(pos >= 0 && pos <= len(v.d), "Sliced position out of range")
	return v.sub(pos, len(v.d))
}

// SlicedN returns n units from pos. It panics unless the range fits.
func (v View) SlicedN(pos, n int) View {
	precondition(pos >= 0 && n >= 0, "SlicedN negative argument")
	precondition(uint(pos)+uint(n) <= uint(len(v.d)), "SlicedN range out of bounds")
	return v.sub(pos, pos+n)
}

// Chopped drops the last n units. It panics unless 0 <= n <= Size().
func (v View) Chopped(n int) View {
	precondition(n >= 0 && n <= len(v.d), "Chopped length out of range")
	return v.sub(0, len(v.d)-n)
}

// Truncate shortens the view itself to n units. The buffer is untouched.
func (v *View) Truncate(n int) {
	precondition(n >= 0 && n <= len(v.d), "Truncate length out of range")
	v.d = v.d[:n:n]
}

// Chop shortens the view itself by n units. The buffer is untouched.
func (v *View) Chop(n int) {
	precondition(n >= 0 && n <= len(v.d), "Chop length out of range")
	m := len(v.d) - n
	v.d = v.d[:m:m]
}

// Trimmed strips leading and trailing whitespace. A non-null view made only
// of whitespace trims to an empty, non-null view.
func (v View) Trimmed() View {
	b, e := algo.TrimBounds(v.d)
	return v.sub(b, e)
}

// Equal reports whether v and o hold the same units. Null and empty views are
// equal.
func (v View) Equal(o View) bool { return slices.Equal(v.d, o.d) }

// All yields each index and unit in order.
func (v View) All() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i, u := range v.d {
			if !yield(i, Char(u)) {
				return
			}
		}
	}
}

// Backward yields each index and unit from the end.
func (v View) Backward() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i := len(v.d) - 1; i >= 0; i-- {
			if !yield(i, Char(v.d[i])) {
				return
			}
		}
	}
}

// Runes yields the starting unit index and code point of each character,
// combining surrogate pairs. Unpaired surrogates yield U+FFFD.
func (v View) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(v.d); {
			r, w := algo.DecodeAt(v.d, i)
			if w == 1 && algo.IsSurrogate(uint16(r)) {
				r = 0xFFFD
			}
			if !yield(i, r) {
				return
			}
			i += w
		}
	}
}

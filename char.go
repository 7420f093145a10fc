package u16view

import (
	"unicode/utf16"

	"github.com/rawbytedev/u16view/internal/algo"
)

// Char is a single UTF-16 code unit.
type Char uint16

func (c Char) Unicode() uint16 { return uint16(c) }

func (c Char) IsNull() bool { return c == 0 }

func (c Char) IsHighSurrogate() bool { return algo.IsHighSurrogate(uint16(c)) }

func (c Char) IsLowSurrogate() bool { return algo.IsLowSurrogate(uint16(c)) }

func (c Char) IsSurrogate() bool { return algo.IsSurrogate(uint16(c)) }

// IsSpace uses the same whitespace set as Trimmed.
func (c Char) IsSpace() bool { return algo.IsSpace(uint16(c)) }

// ToCaseFolded returns the simple case fold of c. Surrogates and units whose
// fold leaves the BMP come back unchanged.
func (c Char) ToCaseFolded() Char {
	if c.IsSurrogate() {
		return c
	}
	r := algo.FoldRune(rune(c))
	if r > 0xFFFF {
		return c
	}
	return Char(r)
}

// RequiresSurrogates reports whether r needs two code units.
func RequiresSurrogates(r rune) bool { return r >= 0x10000 }

// SurrogateToUcs4 combines a high and a low surrogate.
func SurrogateToUcs4(hi, lo Char) rune { return algo.Combine(uint16(hi), uint16(lo)) }

// Ucs4 holds the one or two code units that encode a single code point.
type Ucs4 struct {
	chars [2]uint16
}

// FromUcs4 encodes r. Invalid code points encode as U+FFFD.
func FromUcs4(r rune) Ucs4 {
	if RequiresSurrogates(r) && r <= 0x10FFFF {
		hi, lo := utf16.EncodeRune(r)
		return Ucs4{chars: [2]uint16{uint16(hi), uint16(lo)}}
	}
	if r < 0 || r > 0x10FFFF || (r >= algo.SurrogateHighStart && r <= algo.SurrogateLowEnd) {
		r = 0xFFFD
	}
	return Ucs4{chars: [2]uint16{uint16(r)}}
}

func (u *Ucs4) Size() int {
	if u.chars[1] != 0 {
		return 2
	}
	return 1
}

// View refers to u's storage, so it is only valid while u is.
func (u *Ucs4) View() View {
	n := u.Size()
	return View{d: u.chars[:n:n]}
}

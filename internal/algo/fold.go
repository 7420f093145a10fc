package algo

import (
	"slices"
	"unicode"
	"unicode/utf16"
)

const (
	dottedCapitalI = 0x130
	dotlessSmallI  = 0x131
)

// FoldRune maps r to its simple case fold. Every rune in a unicode.SimpleFold
// orbit maps to the same value, normally the lowercase form. It does not
// depend on the locale.
func FoldRune(r rune) rune {
	if r < 0x80 {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}
	switch {
	case r >= SurrogateHighStart && r <= SurrogateLowEnd:
		return r
	case r == dottedCapitalI || r == dotlessSmallI:
		// Only the Turkic mappings fold these onto 'i'.
		return r
	}
	f := lowerOfUpper(r)
	for o := unicode.SimpleFold(r); o != r; o = unicode.SimpleFold(o) {
		f = min(f, lowerOfUpper(o))
	}
	return f
}

func lowerOfUpper(r rune) rune { return unicode.ToLower(unicode.ToUpper(r)) }

// leadUnit is the first UTF-16 unit that encodes r.
func leadUnit(r rune) uint16 {
	if r < 0x10000 {
		return uint16(r)
	}
	hi, _ := utf16.EncodeRune(r)
	return uint16(hi)
}

// EqualFold reports whether a and b hold the same text under simple case
// folding, decoded one code point at a time.
func EqualFold(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); {
		ra, wa := DecodeAt(a, i)
		rb, wb := DecodeAt(b, i)
		if wa != wb || FoldRune(ra) != FoldRune(rb) {
			return false
		}
		i += wa
	}
	return true
}

// Compare orders a and b. With fold unset it compares code units; otherwise
// folded code points, ranked by their leading unit so both modes agree on the
// relative order of BMP and supplementary text. A proper prefix sorts first.
func Compare(a, b []uint16, fold bool) int {
	if !fold {
		return slices.Compare(a, b)
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ra, wa := DecodeAt(a, i)
		rb, wb := DecodeAt(b, j)
		if fa, fb := FoldRune(ra), FoldRune(rb); fa != fb {
			ua, ub := leadUnit(fa), leadUnit(fb)
			switch {
			case ua < ub:
				return -1
			case ua > ub:
				return 1
			case fa < fb:
				return -1
			default:
				return 1
			}
		}
		i += wa
		j += wb
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

// HasPrefix reports whether s begins with prefix. A nil s only starts with a
// nil prefix.
func HasPrefix(s, prefix []uint16, fold bool) bool {
	if s == nil {
		return prefix == nil
	}
	if len(prefix) > len(s) {
		return false
	}
	return equal(s[:len(prefix)], prefix, fold)
}

// HasSuffix is the mirror of HasPrefix.
func HasSuffix(s, suffix []uint16, fold bool) bool {
	if s == nil {
		return suffix == nil
	}
	if len(suffix) > len(s) {
		return false
	}
	return equal(s[len(s)-len(suffix):], suffix, fold)
}

func equal(a, b []uint16, fold bool) bool {
	if fold {
		return EqualFold(a, b)
	}
	return slices.Equal(a, b)
}

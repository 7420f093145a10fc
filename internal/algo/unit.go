// Package algo holds the buffer-level primitives behind u16view. Every function
// works on a plain []uint16 and never retains or mutates it.
package algo

import "unicode"

const (
	SurrogateHighStart = 0xD800
	SurrogateHighEnd   = 0xDBFF
	SurrogateLowStart  = 0xDC00
	SurrogateLowEnd    = 0xDFFF

	surrogateOffset = 0x10000 - (SurrogateHighStart << 10) - SurrogateLowStart
)

// IsHighSurrogate reports whether u is the leading half of a surrogate pair.
func IsHighSurrogate(u uint16) bool { return u&0xFC00 == SurrogateHighStart }

// IsLowSurrogate reports whether u is the trailing half of a surrogate pair.
func IsLowSurrogate(u uint16) bool { return u&0xFC00 == SurrogateLowStart }

// IsSurrogate reports whether u is either half of a surrogate pair.
func IsSurrogate(u uint16) bool { return u&0xF800 == SurrogateHighStart }

// Combine joins a high and a low surrogate into a supplementary code point.
func Combine(hi, lo uint16) rune {
	return rune(hi)<<10 + rune(lo) + surrogateOffset
}

// DecodeAt returns the code point starting at s[i] and how many units it spans.
// An unpaired surrogate is returned unchanged with width 1.
func DecodeAt(s []uint16, i int) (rune, int) {
	u := s[i]
	if IsHighSurrogate(u) && i+1 < len(s) && IsLowSurrogate(s[i+1]) {
		return Combine(u, s[i+1]), 2
	}
	return rune(u), 1
}

// DecodeBefore returns the code point that ends at s[i-1] and its width.
func DecodeBefore(s []uint16, i int) (rune, int) {
	u := s[i-1]
	if IsLowSurrogate(u) && i >= 2 && IsHighSurrogate(s[i-2]) {
		return Combine(s[i-2], u), 2
	}
	return rune(u), 1
}

// IsSpace matches the whitespace notion of the owning string type:
// TAB..CR, SPACE, NEL, NBSP and the Unicode space, line and paragraph separators.
func IsSpace(u uint16) bool {
	if u == ' ' || (u >= '\t' && u <= '\r') {
		return true
	}
	if u < 0x80 {
		return false
	}
	if u == 0x85 || u == 0xA0 {
		return true
	}
	return !IsSurrogate(u) && unicode.IsSpace(rune(u))
}

// TrimBounds returns the half-open range of s left after stripping leading
// and trailing whitespace units.
func TrimBounds(s []uint16) (begin, end int) {
	begin, end = 0, len(s)
	for begin < end && IsSpace(s[begin]) {
		begin++
	}
	for end > begin && IsSpace(s[end-1]) {
		end--
	}
	return begin, end
}

// IsValidUTF16 reports whether every surrogate in s belongs to a correctly
// ordered high/low pair.
func IsValidUTF16(s []uint16) bool {
	for i := 0; i < len(s); i++ {
		u := s[i]
		if !IsSurrogate(u) {
			continue
		}
		if !IsHighSurrogate(u) || i+1 >= len(s) || !IsLowSurrogate(s[i+1]) {
			return false
		}
		i++
	}
	return true
}

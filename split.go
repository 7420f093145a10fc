package u16view

import (
	"iter"
	"regexp"
	"unicode/utf8"

	"github.com/rawbytedev/u16view/internal/algo"
)

// Tokenize lazily yields the parts of v between non-overlapping matches of
// sep, left to right. Every part aliases v. The sequence can be ranged over
// any number of times; each range rescans v.
//
// An empty sep splits between every unit and reports an empty part at both
// ends when behavior is KeepEmptyParts.
func (v View) Tokenize(sep View, behavior SplitBehavior, cs CaseSensitivity) iter.Seq[View] {
	return func(yield func(View) bool) {
		start, extra := 0, 0
		for {
			end := algo.Find(v.d, start+extra, sep.d, cs.fold())
			if end == NotFound {
				break
			}
			if start != end || behavior == KeepEmptyParts {
				if !yield(v.sub(start, end)) {
					return
				}
			}
			start = end + len(sep.d)
			extra = 0
			if len(sep.d) == 0 {
				extra = 1
			}
		}
		if start != len(v.d) || behavior == KeepEmptyParts {
			yield(v.sub(start, len(v.d)))
		}
	}
}

// TokenizeChar is Tokenize with a single-unit separator.
func (v View) TokenizeChar(sep Char, behavior SplitBehavior, cs CaseSensitivity) iter.Seq[View] {
	return v.Tokenize(View{d: []uint16{uint16(sep)}}, behavior, cs)
}

// Split collects Tokenize into a slice.
func (v View) Split(sep View, behavior SplitBehavior, cs CaseSensitivity) []View {
	var parts []View
	for p := range v.Tokenize(sep, behavior, cs) {
		parts = append(parts, p)
	}
	return parts
}

// SplitChar collects TokenizeChar into a slice.
func (v View) SplitChar(sep Char, behavior SplitBehavior, cs CaseSensitivity) []View {
	var parts []View
	for p := range v.TokenizeChar(sep, behavior, cs) {
		parts = append(parts, p)
	}
	return parts
}

// SplitRegexp splits v around the matches of re. The text is transcoded to
// UTF-8 for matching, but the parts still alias v.
func (v View) SplitRegexp(re *regexp.Regexp, behavior SplitBehavior) []View {
	text, offsets := v.utf8WithOffsets()
	var parts []View
	start := 0
	for _, m := range re.FindAllIndex(text, -1) {
		end := offsets[m[0]]
		if start != end || behavior == KeepEmptyParts {
			parts = append(parts, v.sub(start, end))
		}
		start = offsets[m[1]]
	}
	if start != len(v.d) || behavior == KeepEmptyParts {
		parts = append(parts, v.sub(start, len(v.d)))
	}
	return parts
}

// utf8WithOffsets returns v as UTF-8 together with a table mapping every byte
// offset (and the end offset) to the unit offset it came from.
func (v View) utf8WithOffsets() ([]byte, []int) {
	text := make([]byte, 0, len(v.d))
	offsets := make([]int, 0, len(v.d)+1)
	for i, r := range v.Runes() {
		n := len(text)
		text = utf8.AppendRune(text, r)
		for range len(text) - n {
			offsets = append(offsets, i)
		}
	}
	return text, append(offsets, len(v.d))
}

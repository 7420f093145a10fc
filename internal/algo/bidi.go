package algo

import "golang.org/x/text/unicode/bidi"

// IsRightToLeft reports whether the first strongly directional code point of
// s is right-to-left. Text between an isolate initiator (LRI, RLI, FSI) and
// its matching PDI does not count.
func IsRightToLeft(s []uint16) bool {
	isolate := 0
	for i := 0; i < len(s); {
		r, w := DecodeAt(s, i)
		i += w
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			isolate++
		case bidi.PDI:
			if isolate > 0 {
				isolate--
			}
		case bidi.L:
			if isolate == 0 {
				return false
			}
		case bidi.R, bidi.AL:
			if isolate == 0 {
				return true
			}
		}
	}
	return false
}

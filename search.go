package u16view

import "github.com/rawbytedev/u16view/internal/algo"

// Compare orders v against o and returns -1, 0 or +1. Case-sensitive
// comparison is by code unit; case-insensitive comparison uses simple case
// folding and ignores the locale. An empty view sorts before any non-empty one.
func (v View) Compare(o View, cs CaseSensitivity) int {
	return algo.Compare(v.d, o.d, cs.fold())
}

// CompareChar compares v against the single unit c. With CaseSensitive it
// only looks at the first unit and the size, never at the rest of the view.
func (v View) CompareChar(c Char, cs CaseSensitivity) int {
	if cs == CaseSensitive {
		switch {
		case len(v.d) == 0:
			return -1
		case v.d[0] < uint16(c):
			return -1
		case v.d[0] > uint16(c):
			return 1
		case len(v.d) > 1:
			return 1
		}
		return 0
	}
	one := [1]uint16{uint16(c)}
	return algo.Compare(v.d, one[:], true)
}

// EqualFold reports whether v and o are equal under case folding.
func (v View) EqualFold(o View) bool {
	return algo.EqualFold(v.d, o.d)
}

// StartsWith reports whether v begins with s. A null view only starts with
// another null view.
func (v View) StartsWith(s View, cs CaseSensitivity) bool {
	return algo.HasPrefix(v.d, s.d, cs.fold())
}

// StartsWithChar is StartsWith for a single unit. CaseSensitive checks Front
// directly.
func (v View) StartsWithChar(c Char, cs CaseSensitivity) bool {
	if cs == CaseSensitive {
		return len(v.d) > 0 && v.d[0] == uint16(c)
	}
	one := [1]uint16{uint16(c)}
	return algo.HasPrefix(v.d, one[:], true)
}

// EndsWith reports whether v ends with s.
func (v View) EndsWith(s View, cs CaseSensitivity) bool {
	return algo.HasSuffix(v.d, s.d, cs.fold())
}

// EndsWithChar is EndsWith for a single unit. CaseSensitive checks Back
// directly.
func (v View) EndsWithChar(c Char, cs CaseSensitivity) bool {
	if cs == CaseSensitive {
		return len(v.d) > 0 && v.d[len(v.d)-1] == uint16(c)
	}
	one := [1]uint16{uint16(c)}
	return algo.HasSuffix(v.d, one[:], true)
}

// IndexOf returns the offset of the first match of s at or after from, or
// NotFound. A negative from counts back from the end.
func (v View) IndexOf(s View, from int, cs CaseSensitivity) int {
	return algo.Find(v.d, from, s.d, cs.fold())
}

// IndexOfChar is IndexOf for a single unit.
func (v View) IndexOfChar(c Char, from int, cs CaseSensitivity) int {
	one := [1]uint16{uint16(c)}
	return algo.Find(v.d, from, one[:], cs.fold())
}

// LastIndexOf returns the offset of the last match of s starting at or
// before from, or NotFound. Pass -1 to search from the last unit.
func (v View) LastIndexOf(s View, from int, cs CaseSensitivity) int {
	return algo.FindLast(v.d, from, s.d, cs.fold())
}

// LastIndexOfChar is LastIndexOf for a single unit.
func (v View) LastIndexOfChar(c Char, from int, cs CaseSensitivity) int {
	one := [1]uint16{uint16(c)}
	return algo.FindLast(v.d, from, one[:], cs.fold())
}

// Contains reports whether s occurs in v.
func (v View) Contains(s View, cs CaseSensitivity) bool {
	return v.IndexOf(s, 0, cs) != NotFound
}

// ContainsChar reports whether c occurs in v.
func (v View) ContainsChar(c Char, cs CaseSensitivity) bool {
	return v.IndexOfChar(c, 0, cs) != NotFound
}

// Count returns the number of non-overlapping occurrences of s. An empty s
// is counted Size()+1 times.
func (v View) Count(s View, cs CaseSensitivity) int {
	return algo.Count(v.d, s.d, cs.fold())
}

// CountChar counts the occurrences of c in v.
func (v View) CountChar(c Char, cs CaseSensitivity) int {
	one := [1]uint16{uint16(c)}
	return algo.Count(v.d, one[:], cs.fold())
}

// IsRightToLeft reports whether the first strongly directional character is
// right-to-left.
func (v View) IsRightToLeft() bool { return algo.IsRightToLeft(v.d) }

// IsValidUtf16 reports whether every surrogate is part of a well-ordered pair.
func (v View) IsValidUtf16() bool { return algo.IsValidUTF16(v.d) }

package algo

import "slices"

// NotFound is the miss sentinel shared by every search routine.
const NotFound = -1

// Find returns the offset of the first match of needle in hay at or after
// from. A negative from counts back from the end and is clamped to 0. An empty
// needle matches at from as long as from <= len(hay).
func Find(hay []uint16, from int, needle []uint16, fold bool) int {
	l, sl := len(hay), len(needle)
	if from < 0 {
		from = max(from+l, 0)
	}
	if from > l || sl > l-from {
		return NotFound
	}
	if sl == 0 {
		return from
	}
	if !fold {
		first := needle[0]
		if sl == 1 {
			if i := slices.Index(hay[from:], first); i >= 0 {
				return from + i
			}
			return NotFound
		}
		for i := from; i <= l-sl; i++ {
			if hay[i] == first && slices.Equal(hay[i:i+sl], needle) {
				return i
			}
		}
		return NotFound
	}
	for i := from; i <= l-sl; i++ {
		if EqualFold(hay[i:i+sl], needle) {
			return i
		}
	}
	return NotFound
}

// FindLast returns the offset of the last match of needle that starts at or
// before from. from == -1 names the last unit of hay.
func FindLast(hay []uint16, from int, needle []uint16, fold bool) int {
	l, sl := len(hay), len(needle)
	if from < 0 {
		from += l
	}
	if sl == 0 {
		if from < 0 || from > l {
			return NotFound
		}
		return from
	}
	delta := l - sl
	if from < 0 || from >= l || delta < 0 {
		return NotFound
	}
	if from > delta {
		from = delta
	}
	for i := from; i >= 0; i-- {
		if equal(hay[i:i+sl], needle, fold) {
			return i
		}
	}
	return NotFound
}

// Count returns the number of non-overlapping matches of needle in hay,
// scanning left to right. An empty needle matches len(hay)+1 times.
func Count(hay, needle []uint16, fold bool) int {
	if len(needle) == 0 {
		return len(hay) + 1
	}
	n := 0
	for i := 0; ; {
		j := Find(hay, i, needle, fold)
		if j == NotFound {
			return n
		}
		n++
		i = j + len(needle)
	}
}

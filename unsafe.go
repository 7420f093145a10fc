package u16view

import "unsafe"

// unitSize is the width of one code unit in bytes.
const unitSize = int(unsafe.Sizeof(uint16(0)))

// units reinterprets a slice of any CodeUnit type as []uint16 sharing the same
// backing array. A nil slice stays nil; an empty non-nil slice stays non-nil.
func units[C CodeUnit](s []C) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// unitsAt aliases n units starting at p.
func unitsAt[C CodeUnit](p *C, n int) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(p)), n)
}

func unsafePointer[C CodeUnit](p *C) unsafe.Pointer { return unsafe.Pointer(p) }

// ustrlen counts units up to the first zero unit. The caller guarantees that
// a terminator exists inside the allocation p points into.
func ustrlen(p unsafe.Pointer) int {
	n := 0
	for *(*uint16)(unsafe.Add(p, n*unitSize)) != 0 {
		n++
	}
	return n
}

// unitDistance returns last-first in code units; negative when last precedes first.
func unitDistance[C CodeUnit](first, last *C) int {
	return int(uintptr(unsafe.Pointer(last))-uintptr(unsafe.Pointer(first))) / unitSize
}

// clip caps the capacity of s at its length so appends never reach the
// borrowed buffer.
func clip(s []uint16) []uint16 { return s[:len(s):len(s)] }

// emptyUnits backs empty-but-not-null views whose source returned no slice.
var emptyUnits [1]uint16

func precondition(ok bool, msg string) {
	if !ok {
		panic("u16view: " + msg)
	}
}

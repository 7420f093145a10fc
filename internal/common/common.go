package common

import (
	"encoding/binary"
	"unsafe"
)

// UnitSize is the byte width of one UTF-16 code unit.
const UnitSize = 2

// HostLittleEndian reports whether the machine stores uint16 low byte first,
// in which case a UTF-16LE byte buffer can be read as []uint16 in place.
var HostLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// IsAligned reports whether b starts on a code unit boundary.
func IsAligned(b []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%UnitSize == 0
}

// AliasUnits reinterprets b as host-order code units without copying. len(b)
// must be even. A nil b gives nil; an empty non-nil b gives an empty non-nil
// slice.
func AliasUnits(b []byte) []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/UnitSize)
}

// AliasBytes is the inverse of AliasUnits.
func AliasBytes(u []uint16) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u)*UnitSize)
}

// ReadUnitsLE decodes little-endian units from b into a fresh slice.
func ReadUnitsLE(b []byte) []uint16 {
	out := make([]uint16, len(b)/UnitSize)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*UnitSize:])
	}
	return out
}

// AppendUnitsLE appends u to dst as little-endian bytes.
func AppendUnitsLE(dst []byte, u []uint16) []byte {
	if HostLittleEndian {
		return append(dst, AliasBytes(u)...)
	}
	for _, x := range u {
		dst = binary.LittleEndian.AppendUint16(dst, x)
	}
	return dst
}

package u16view

import (
	"bytes"
	"strconv"
)

// numeric returns the trimmed view as ASCII bytes appended to buf. Any unit
// outside ASCII makes the text unparseable.
func (v View) numeric(buf []byte) ([]byte, bool) {
	for _, u := range v.Trimmed().d {
		if u >= 0x80 {
			return nil, false
		}
		buf = append(buf, byte(u))
	}
	return buf, len(buf) > 0
}

func (v View) parseInt(base, bits int) (int64, bool) {
	var stack [64]byte
	b, ok := v.numeric(stack[:0])
	if !ok || (base == 0 && bytes.IndexByte(b, '_') >= 0) {
		return 0, false
	}
	n, err := strconv.ParseInt(string(b), base, bits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v View) parseUint(base, bits int) (uint64, bool) {
	var stack [64]byte
	b, ok := v.numeric(stack[:0])
	if !ok || (base == 0 && bytes.IndexByte(b, '_') >= 0) {
		return 0, false
	}
	if b[0] == '+' {
		b = b[1:]
	}
	n, err := strconv.ParseUint(string(b), base, bits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v View) parseFloat(bits int) (float64, bool) {
	var stack [64]byte
	b, ok := v.numeric(stack[:0])
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(b), bits)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToInt64 parses v as a signed integer in base, ignoring surrounding
// whitespace. Base 0 picks the base from a 0x, 0o, 0b or 0 prefix. On failure,
// including overflow, it returns 0 and false.
func (v View) ToInt64(base int) (int64, bool) { return v.parseInt(base, 64) }

// ToUint64 is ToInt64 for unsigned values. A leading minus sign fails.
func (v View) ToUint64(base int) (uint64, bool) { return v.parseUint(base, 64) }

// ToInt32 is ToInt64 limited to 32 bits.
func (v View) ToInt32(base int) (int32, bool) {
	n, ok := v.parseInt(base, 32)
	return int32(n), ok
}

// ToUint32 is ToUint64 limited to 32 bits.
func (v View) ToUint32(base int) (uint32, bool) {
	n, ok := v.parseUint(base, 32)
	return uint32(n), ok
}

// ToInt16 is ToInt64 limited to 16 bits.
func (v View) ToInt16(base int) (int16, bool) {
	n, ok := v.parseInt(base, 16)
	return int16(n), ok
}

// ToUint16 is ToUint64 limited to 16 bits.
func (v View) ToUint16(base int) (uint16, bool) {
	n, ok := v.parseUint(base, 16)
	return uint16(n), ok
}

// ToInt is ToInt64 limited to the size of int.
func (v View) ToInt(base int) (int, bool) {
	n, ok := v.parseInt(base, strconv.IntSize)
	return int(n), ok
}

// ToUint is ToUint64 limited to the size of uint.
func (v View) ToUint(base int) (uint, bool) {
	n, ok := v.parseUint(base, strconv.IntSize)
	return uint(n), ok
}

// ToFloat64 parses v as a decimal or hexadecimal floating-point number. Values
// that overflow fail.
func (v View) ToFloat64() (float64, bool) { return v.parseFloat(64) }

// ToFloat32 is ToFloat64 rounded to float32 precision.
func (v View) ToFloat32() (float32, bool) {
	f, ok := v.parseFloat(32)
	return float32(f), ok
}

// Package compactwire frames UTF-16 views for storage or transport.
//
// Frame layout (all integers little-endian):
//
//	magic   2B  0x55 0x16
//	type    1B  TypeData or TypeError
//	length  4B  total frame size, CRC included
//	flags   1B  FlagZstd
//	payload     UTF-16LE units, zstd-compressed when FlagZstd is set
//	crc     4B  CRC-32 (IEEE) of everything after the magic
//
// An error frame's payload is a code byte, one reserved zero byte, then the
// message units, so the message stays 2-byte aligned.
package compactwire

import (
	"bytes"
	"errors"
	"io"
)

const (
	Magic0 = 0x55
	Magic1 = 0x16

	TypeData  byte = 0x01
	TypeError byte = 0x02

	FlagZstd byte = 0x01

	HeaderSize   = 8
	TrailerSize  = 4
	MinFrameSize = HeaderSize + TrailerSize

	errorPrefix = 2

	// DefaultMaxDecodedSize bounds decompression for a Decoder built by
	// NewDecoder.
	DefaultMaxDecodedSize = 64 << 20
)

var (
	ErrNotFrame       = errors.New("compactwire: not a frame")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrCRCMismatch    = errors.New("compactwire: crc mismatch")
	ErrTruncated      = errors.New("compactwire: truncated frame")
)

func writePreamble(buf *bytes.Buffer, typ byte) {
	buf.WriteByte(Magic0)
	buf.WriteByte(Magic1)
	buf.WriteByte(typ)
}

func readPreamble(r io.ByteReader) (byte, error) {
	m0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	m1, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if m0 != Magic0 || m1 != Magic1 {
		return 0, ErrNotFrame
	}
	return r.ReadByte()
}

// FrameType returns the type byte of the frame at the start of b without
// validating the rest of it.
func FrameType(b []byte) (byte, error) {
	if len(b) < MinFrameSize {
		return 0, ErrTruncated
	}
	return readPreamble(bytes.NewReader(b))
}

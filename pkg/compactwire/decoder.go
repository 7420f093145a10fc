package compactwire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/zc"
)

// Decoder validates frames and views their payloads. Uncompressed payloads are
// aliased in place according to Options; compressed ones are inflated into a
// fresh buffer. A Decoder is not safe for concurrent use.
type Decoder struct {
	Options zc.Options
	// MaxDecodedSize caps the inflated size of a compressed payload. Zero
	// means DefaultMaxDecodedSize. It is read when the first compressed frame
	// is decoded.
	MaxDecodedSize uint64

	zr *zstd.Decoder
}

// NewDecoder returns a Decoder that aliases payloads according to opts.
func NewDecoder(opts zc.Options) *Decoder {
	return &Decoder{Options: opts, MaxDecodedSize: DefaultMaxDecodedSize}
}

// Close releases the zstd state, if any was created.
func (d *Decoder) Close() {
	if d.zr != nil {
		d.zr.Close()
		d.zr = nil
	}
}

// DecodeView returns the text carried by a data frame. Unless the frame was
// compressed, the view aliases data.
func (d *Decoder) DecodeView(data []byte) (u16view.View, error) {
	payload, err := d.open(data, TypeData)
	if err != nil {
		return u16view.View{}, err
	}
	return zc.Alias(payload, d.Options)
}

// DecodeError returns the code and message carried by an error frame.
func (d *Decoder) DecodeError(data []byte) (byte, u16view.View, error) {
	payload, err := d.open(data, TypeError)
	if err != nil {
		return 0, u16view.View{}, err
	}
	if len(payload) < errorPrefix {
		return 0, u16view.View{}, ErrTruncated
	}
	msg, err := zc.Alias(payload[errorPrefix:], d.Options)
	if err != nil {
		return 0, u16view.View{}, err
	}
	return payload[0], msg, nil
}

// open checks the frame envelope and returns its payload, decompressed when
// FlagZstd is set.
func (d *Decoder) open(data []byte, want byte) ([]byte, error) {
	if len(data) < MinFrameSize {
		return nil, ErrTruncated
	}
	t, err := readPreamble(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if t != want {
		return nil, fmt.Errorf("%w: type 0x%02x, want 0x%02x", ErrNotFrame, t, want)
	}

	length := binary.LittleEndian.Uint32(data[3:7])
	flags := data[7]
	if int(length) != len(data) {
		return nil, fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, length, len(data))
	}

	payloadEnd := len(data) - TrailerSize
	want32 := binary.LittleEndian.Uint32(data[payloadEnd:])
	if crc32.ChecksumIEEE(data[2:payloadEnd]) != want32 {
		return nil, ErrCRCMismatch
	}

	payload := data[HeaderSize:payloadEnd:payloadEnd]
	if flags&FlagZstd == 0 {
		return payload, nil
	}
	if d.zr == nil {
		limit := d.MaxDecodedSize
		if limit == 0 {
			limit = DefaultMaxDecodedSize
		}
		zr, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(limit))
		if err != nil {
			return nil, err
		}
		d.zr = zr
	}
	out, err := d.zr.DecodeAll(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("compactwire: decompress: %w", err)
	}
	return out, nil
}

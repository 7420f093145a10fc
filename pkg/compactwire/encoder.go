package compactwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/zc"
)

// Encoder builds frames. It reuses its buffers between calls and is not safe
// for concurrent use.
type Encoder struct {
	// Compress sets FlagZstd and compresses every payload.
	Compress bool

	buf     bytes.Buffer
	payload []byte
	zw      *zstd.Encoder
}

// NewEncoder returns an Encoder; compress selects zstd payloads.
func NewEncoder(compress bool) *Encoder {
	return &Encoder{Compress: compress}
}

// EncodeView frames the units of v as a data frame. The returned slice is
// owned by the caller.
func (e *Encoder) EncodeView(v u16view.View) ([]byte, error) {
	e.payload = zc.AppendLE(e.payload[:0], v)
	return e.frame(TypeData, e.payload)
}

// EncodeError frames an error code and message.
func (e *Encoder) EncodeError(code byte, msg u16view.View) ([]byte, error) {
	e.payload = append(e.payload[:0], code, 0)
	e.payload = zc.AppendLE(e.payload, msg)
	return e.frame(TypeError, e.payload)
}

func (e *Encoder) frame(typ byte, payload []byte) ([]byte, error) {
	var flags byte
	if e.Compress {
		if e.zw == nil {
			zw, err := zstd.NewWriter(nil)
			if err != nil {
				return nil, err
			}
			e.zw = zw
		}
		payload = e.zw.EncodeAll(payload, nil)
		flags |= FlagZstd
	}

	e.buf.Reset()
	writePreamble(&e.buf, typ)

	// reserve length
	binary.Write(&e.buf, binary.LittleEndian, uint32(0))
	e.buf.WriteByte(flags)
	e.buf.Write(payload)

	out := e.buf.Bytes()
	total := uint32(len(out) + TrailerSize)
	binary.LittleEndian.PutUint32(out[3:], total)

	// CRC over entire frame minus magic
	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return bytes.Clone(out), nil
}

// Package zc (zero-copy) turns byte buffers holding UTF-16 text into views
// without copying when the buffer's layout allows it, and back into bytes for
// writing out.
//
// Aliasing is opt-in and carries the usual lifetime rule: the byte buffer must
// not be modified while a view over it is in use.
package zc

import (
	"errors"

	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/internal/common"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// CheckAlignment enables a runtime check that the buffer starts on a
	// 2-byte boundary before it is aliased.
	CheckAlignment bool

	// AllowCopy lets Alias fall back to decoding into a fresh buffer when the
	// bytes cannot be aliased in place.
	AllowCopy bool
}

var (
	ErrMisaligned = errors.New("zc: buffer is not 2-byte aligned")
	ErrOddLength  = errors.New("zc: odd number of bytes for UTF-16 data")
	ErrByteOrder  = errors.New("zc: host is not little-endian")
)

// Alias views b as UTF-16LE code units. On a little-endian host with an even,
// aligned buffer the view refers to b itself. Otherwise it copies when
// opts.AllowCopy is set and fails when it is not.
func Alias(b []byte, opts Options) (u16view.View, error) {
	if len(b)%common.UnitSize != 0 {
		return u16view.View{}, ErrOddLength
	}
	if !common.HostLittleEndian {
		if opts.AllowCopy {
			return Copy(b)
		}
		return u16view.View{}, ErrByteOrder
	}
	if opts.CheckAlignment && !common.IsAligned(b) {
		if opts.AllowCopy {
			return Copy(b)
		}
		return u16view.View{}, ErrMisaligned
	}
	return u16view.From(common.AliasUnits(b)), nil
}

// Copy decodes UTF-16LE bytes into a fresh buffer.
func Copy(b []byte) (u16view.View, error) {
	if len(b)%common.UnitSize != 0 {
		return u16view.View{}, ErrOddLength
	}
	if b == nil {
		return u16view.View{}, nil
	}
	return u16view.From(common.ReadUnitsLE(b)), nil
}

// Bytes returns the memory behind v as bytes, without copying. The bytes are
// in host order, which is UTF-16LE on little-endian machines.
func Bytes(v u16view.View) []byte {
	return common.AliasBytes(v.Data())
}

// AppendLE appends v to dst as UTF-16LE regardless of the host byte order.
func AppendLE(dst []byte, v u16view.View) []byte {
	return common.AppendUnitsLE(dst, v.Data())
}

// DecodeText decodes b into a new view. A UTF-8, UTF-16LE or UTF-16BE byte
// order mark selects the input encoding and is dropped; without one the input
// is taken as UTF-8. Invalid sequences become U+FFFD.
func DecodeText(b []byte) (u16view.View, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return u16view.View{}, err
	}
	return u16view.Of(string(out)), nil
}

// EncodeText encodes v as UTF-16LE, prefixed with a byte order mark when bom
// is set. Unpaired surrogates are written as U+FFFD.
func EncodeText(v u16view.View, bom bool) ([]byte, error) {
	policy := unicode.IgnoreBOM
	if bom {
		policy = unicode.UseBOM
	}
	enc := unicode.UTF16(unicode.LittleEndian, policy).NewEncoder()
	out, _, err := transform.Bytes(enc, v.ToUtf8())
	return out, err
}

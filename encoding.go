package u16view

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownEncoding = errors.New("u16view: unknown encoding")

// String returns v as UTF-8. Unpaired surrogates become U+FFFD.
func (v View) String() string { return string(v.ToUtf8()) }

// ToUtf8 returns v as UTF-8 bytes. A null view gives nil.
func (v View) ToUtf8() []byte {
	if v.d == nil {
		return nil
	}
	out := make([]byte, 0, len(v.d))
	for _, r := range v.Runes() {
		out = utf8.AppendRune(out, r)
	}
	return out
}

// ToUcs4 decodes v to code points. Unpaired surrogates become U+FFFD.
func (v View) ToUcs4() []rune {
	if v.d == nil {
		return nil
	}
	out := make([]rune, 0, len(v.d))
	for _, r := range v.Runes() {
		out = append(out, r)
	}
	return out
}

// ToLatin1 maps each unit to one byte. Units above U+00FF, surrogates
// included, become '?'.
func (v View) ToLatin1() []byte {
	if v.d == nil {
		return nil
	}
	out := make([]byte, len(v.d))
	for i, u := range v.d {
		b, ok := charmap.ISO8859_1.EncodeRune(rune(u))
		if !ok {
			b = '?'
		}
		out[i] = b
	}
	return out
}

// ToLocal8Bit encodes v in the local encoding. Characters the encoding cannot
// represent become '?' for single-byte charsets and the encoding's own
// substitute otherwise.
func (v View) ToLocal8Bit() []byte {
	if v.d == nil {
		return nil
	}
	enc := localEncoding()
	if cm, ok := enc.(*charmap.Charmap); ok {
		out := make([]byte, 0, len(v.d))
		for _, r := range v.Runes() {
			b, ok := cm.EncodeRune(r)
			if !ok {
				b = '?'
			}
			out = append(out, b)
		}
		return out
	}
	out, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes(v.ToUtf8())
	if err != nil {
		return v.ToUtf8()
	}
	return out
}

var local struct {
	once sync.Once
	mu   sync.RWMutex
	enc  encoding.Encoding
	name string
}

func loadLocal() {
	local.once.Do(func() {
		enc, name := encodingFromEnv()
		local.mu.Lock()
		if local.enc == nil {
			local.enc, local.name = enc, name
		}
		local.mu.Unlock()
	})
}

func localEncoding() encoding.Encoding {
	loadLocal()
	local.mu.RLock()
	defer local.mu.RUnlock()
	return local.enc
}

// LocalEncodingName returns the canonical name of the encoding ToLocal8Bit
// uses.
func LocalEncodingName() string {
	loadLocal()
	local.mu.RLock()
	defer local.mu.RUnlock()
	return local.name
}

// SetLocalEncoding overrides the encoding detected from the environment. name
// is any WHATWG encoding label, such as "utf-8", "latin1" or "shift_jis".
func SetLocalEncoding(name string) error {
	enc, canon, err := lookupEncoding(name)
	if err != nil {
		return err
	}
	loadLocal()
	local.mu.Lock()
	local.enc, local.name = enc, canon
	local.mu.Unlock()
	return nil
}

func lookupEncoding(name string) (encoding.Encoding, string, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canon, err := htmlindex.Name(enc)
	if err != nil {
		canon = strings.ToLower(name)
	}
	return enc, canon, nil
}

// encodingFromEnv reads the codeset of the first locale variable that is set,
// as in "de_DE.ISO-8859-15@euro". No codeset or an unknown one means UTF-8.
func encodingFromEnv() (encoding.Encoding, string) {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		codeset, ok := localeCodeset(val)
		if !ok {
			break
		}
		if enc, name, err := lookupEncoding(codeset); err == nil {
			return enc, name
		}
		break
	}
	return unicode.UTF8, "utf-8"
}

func localeCodeset(locale string) (string, bool) {
	_, codeset, ok := strings.Cut(locale, ".")
	if !ok {
		return "", false
	}
	codeset, _, _ = strings.Cut(codeset, "@")
	return codeset, codeset != ""
}

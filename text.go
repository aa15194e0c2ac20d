package utf8text

import "runtime"

// Encoding tags how the bytes of a String were produced. It mirrors the
// encoding marks a host runtime keeps on its character data: most strings
// arrive already in UTF-8, some are opaque byte blobs, and the rest need
// transcoding before any character-level operation runs.
type Encoding uint8

const (
	UTF8   Encoding = iota // bytes are UTF-8
	Bytes                  // opaque bytes, no character interpretation
	Latin1                 // ISO 8859-1
	Native                 // platform native encoding
	Symbol                 // symbol font encoding
	Any                    // pure ASCII, valid under any encoding
)

// String returns the diagnostic name of the encoding, used in error messages.
func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "latin1"
	case UTF8:
		return "UTF-8"
	case Symbol:
		return "symbol"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// EncodesUTF8 reports whether bytes tagged with this encoding can be scanned
// as UTF-8 directly, without transcoding. Opaque byte strings qualify: they
// are never transcoded, only validated or byte-escaped. Native is assumed to
// be UTF-8 everywhere except Windows.
func (e Encoding) EncodesUTF8() bool {
	switch e {
	case Any, Bytes, UTF8:
		return true
	case Native:
		return runtime.GOOS != "windows"
	default:
		return false
	}
}

// String is one element of a character vector: raw bytes plus the encoding
// tag they carry. The zero value is an empty UTF-8 string. Data is not owned
// by the core operations; they never mutate it.
type String struct {
	Data []byte
	Enc  Encoding
	NA   bool
}

// NAString is the missing-value sentinel. Every operation passes it through
// untouched: it is never scanned, transcoded, or counted in errors.
var NAString = String{NA: true}

// New returns a UTF-8 tagged String over the bytes of s.
func New(s string) String {
	return String{Data: []byte(s), Enc: UTF8}
}

// NewBytes returns an opaque byte-tagged String over b.
func NewBytes(b []byte) String {
	return String{Data: b, Enc: Bytes}
}

// NAInteger is the missing-value sentinel for integer results such as
// display widths.
const NAInteger = -1 << 31

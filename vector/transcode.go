package vector

import (
	"golang.org/x/text/encoding/charmap"

	utf8text "github.com/corpustext/utf8text"
	"github.com/corpustext/utf8text/errors"
)

// transcode converts an element's bytes to UTF-8. It is only called for
// encodings that cannot be scanned directly: Latin1 always, Native on
// platforms where native is not UTF-8. Symbol and unknown tags have no
// usable byte mapping and are rejected.
func transcode(s utf8text.String) ([]byte, error) {
	switch s.Enc {
	case utf8text.Latin1:
		return charmap.ISO8859_1.NewDecoder().Bytes(s.Data)
	case utf8text.Native:
		// Windows-1252 is the de facto native single-byte encoding on the
		// one platform where native is not UTF-8.
		return charmap.Windows1252.NewDecoder().Bytes(s.Data)
	default:
		return nil, errors.UnsupportedEncoding(errors.PhaseCoerce, s.Enc.String())
	}
}

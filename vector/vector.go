package vector

import (
	"fmt"
	"slices"

	utf8text "github.com/corpustext/utf8text"
	"github.com/corpustext/utf8text/charwidth"
	"github.com/corpustext/utf8text/errors"
	"github.com/corpustext/utf8text/escape"
	"github.com/corpustext/utf8text/scan"
)

// Tristate is a per-element answer that can also be missing.
type Tristate int8

const (
	TriFalse Tristate = iota
	TriTrue
	TriNA
)

// Coerce validates every element as UTF-8 and converts the elements that
// carry another encoding. NA elements pass through untouched. The input
// slice is returned as-is when no element changed; otherwise a copy is made
// on the first change and the input is never mutated.
//
// Any invalid element is fatal: the error names the 1-based entry, the
// 1-based byte position, and the offending byte's hex value.
func Coerce(v []utf8text.String) ([]utf8text.String, error) {
	out := v
	duped := false
	for i, s := range v {
		if s.NA {
			continue
		}

		raw := s.Enc.EncodesUTF8()
		data := s.Data
		if !raw {
			d, err := transcode(s)
			if err != nil {
				return nil, errors.New(errors.PhaseCoerce, errors.KindUnsupportedEncoding).
					Path(elemPath(i)).
					Elem(i + 1).
					Cause(err).
					Detail("entry %d cannot be converted from %q encoding to \"UTF-8\"", i+1, s.Enc.String()).
					Build()
			}
			data = d
		}

		if ok, off := scan.Valid(data); !ok {
			return nil, coerceError(i, off, data[off], s.Enc, raw)
		}

		if !raw || s.Enc == utf8text.Bytes || s.Enc == utf8text.Native {
			if !duped {
				out = slices.Clone(v)
				duped = true
				debugf("coerce: duplicating vector at entry %d", i+1)
			}
			out[i] = utf8text.String{Data: data, Enc: utf8text.UTF8}
		}
	}
	return out, nil
}

// coerceError picks the message variant matching how the bytes were obtained.
func coerceError(i, off int, b byte, enc utf8text.Encoding, raw bool) *errors.Error {
	var detail string
	switch {
	case enc == utf8text.Bytes:
		detail = fmt.Sprintf(
			"entry %d cannot be converted from \"bytes\" to \"UTF-8\"; it contains an invalid byte in position %d (\\x%02x)",
			i+1, off+1, b)
	case raw:
		detail = fmt.Sprintf(
			"entry %d is marked as \"UTF-8\" but contains an invalid byte in position %d (\\x%02x)",
			i+1, off+1, b)
	default:
		detail = fmt.Sprintf(
			"entry %d cannot be converted from %q encoding to \"UTF-8\"; the transcoded entry contains an invalid byte in position %d (\\x%02x)",
			i+1, enc.String(), off+1, b)
	}
	return errors.New(errors.PhaseCoerce, errors.KindInvalidUTF8).
		Path(elemPath(i)).
		Elem(i + 1).
		Offset(off + 1).
		Value(b).
		Detail("%s", detail).
		Build()
}

// Valid reports, per element, whether the bytes are valid UTF-8 after any
// needed transcoding. NA elements report TriNA; elements whose encoding
// cannot be transcoded report TriFalse.
func Valid(v []utf8text.String) []Tristate {
	out := make([]Tristate, len(v))
	for i, s := range v {
		if s.NA {
			out[i] = TriNA
			continue
		}
		data := s.Data
		if !s.Enc.EncodesUTF8() {
			d, err := transcode(s)
			if err != nil {
				out[i] = TriFalse
				continue
			}
			data = d
		}
		if ok, _ := scan.Valid(data); ok {
			out[i] = TriTrue
		}
	}
	return out
}

// Widths returns the display width of each element in terminal columns.
// NA elements report utf8text.NAInteger. Elements must hold valid UTF-8;
// see charwidth.Width for the behavior on malformed bytes.
func Widths(v []utf8text.String) []int {
	out := make([]int, len(v))
	for i, s := range v {
		if s.NA {
			out[i] = utf8text.NAInteger
			continue
		}
		out[i] = charwidth.Width(s.Data)
	}
	return out
}

// Encode escapes every element of v under opts. Elements tagged Bytes use
// byte-opaque escaping; everything else is transcoded to UTF-8 first when
// needed, then character-escaped. NA elements pass through untouched, and
// the input slice is returned as-is when no element changed.
//
// A size overflow on any element is fatal and aborts the whole batch.
func Encode(v []utf8text.String, opts escape.Options) ([]utf8text.String, error) {
	out := v
	duped := false
	for i, s := range v {
		if s.NA {
			continue
		}
		enc, changed, err := encodeElement(s, opts)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseVector, errorKind(err), err,
				fmt.Sprintf("encoding entry %d failed", i+1))
		}
		if !changed {
			continue
		}
		if !duped {
			out = slices.Clone(v)
			duped = true
		}
		out[i] = enc
	}
	return out, nil
}

// encodeElement runs the estimate-then-encode pair for one element and
// reports whether the element changed.
func encodeElement(s utf8text.String, opts escape.Options) (utf8text.String, bool, error) {
	data := s.Data
	conv := false
	if !s.Enc.EncodesUTF8() {
		d, err := transcode(s)
		if err != nil {
			return s, false, err
		}
		data, conv = d, true
	}

	var (
		size        int
		transformed bool
		err         error
	)
	if s.Enc == utf8text.Bytes {
		size, transformed, err = escape.EstimateBytes(data)
	} else {
		size, transformed, err = escape.Estimate(data, opts)
	}
	if err != nil {
		return s, false, err
	}

	if !transformed {
		if conv {
			return utf8text.String{Data: data, Enc: utf8text.UTF8}, true, nil
		}
		return s, false, nil
	}

	dst := make([]byte, size)
	if s.Enc == utf8text.Bytes {
		escape.EncodeBytes(dst, data)
	} else {
		escape.Encode(dst, data, opts)
	}
	debugf("escaped element: %d -> %d bytes", len(data), size)
	return utf8text.String{Data: dst, Enc: utf8text.UTF8}, true, nil
}

func errorKind(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return errors.KindInvalidInput
}

func elemPath(i int) string {
	return fmt.Sprintf("x[%d]", i+1)
}

package escape

import (
	"math"

	"github.com/corpustext/utf8text/charwidth"
	"github.com/corpustext/utf8text/errors"
	"github.com/corpustext/utf8text/scan"
)

// MaxEncodedSize is the hard ceiling on the size of one encoded string.
// Exceeding it is a fatal condition that aborts a whole batch, not a
// per-element error.
const MaxEncodedSize = math.MaxInt32

// Some displays will wrongly format emoji with one space instead of two.
// Fortunately, these displays also give zero-width spaces one space instead
// of zero. Appending a zero-width space after each emoji fixes the emoji
// display on those terminals while leaving other terminals unaffected.
const zwsp = "\xe2\x80\x8b" // U+200B

const hexDigits = "0123456789abcdef"

// Options selects the escape policy for code points above ASCII.
//
//	ASCIIOnly=true:                 every code point >= 0x80 is numerically
//	                                escaped (\uXXXX or \UXXXXYYYY)
//	ASCIIOnly=false, Display=false: only Other-class code points are escaped,
//	                                everything else passes through
//	ASCIIOnly=false, Display=true:  additionally drop ignorables and pad
//	                                emoji with a zero-width space
//
// Controls, stray bytes, and non-printable ASCII are escaped under every
// combination.
type Options struct {
	Display   bool
	ASCIIOnly bool
}

type actionKind uint8

const (
	actCopy         actionKind = iota
	actShorthand               // \a \b \f \n \r \t \v
	actHexByte                 // \xHH
	actUnicodeShort            // \uXXXX
	actUnicodeLong             // \UXXXXYYYY
	actDrop                    // ignorable in display mode
	actEmojiPad                // copy + zero-width-space pad
)

// action describes the output for one unit run: how many input bytes it
// consumes, how many output bytes it produces, and what to write. Estimate
// and Encode both derive their behavior from this one value, which is what
// keeps the two passes in lockstep.
type action struct {
	kind actionKind
	adv  int  // input bytes consumed
	size int  // output bytes produced
	r    rune // code point for numeric escapes
	b    byte // escape letter or raw byte value
}

// analyze decides the escape action for the unit run at the start of p.
func analyze(p []byte, opts Options) action {
	n, ok := scan.First(p)
	if !ok {
		// Each bad byte is escaped individually; the cursor advances by
		// one so the rest of the run gets its own chance to scan.
		return action{kind: actHexByte, adv: 1, size: 4, b: p[0]}
	}

	if n == 1 { // code < 0x80
		b := p[0]
		if letter, ok := shorthand(b); ok {
			return action{kind: actShorthand, adv: 1, size: 2, b: letter}
		}
		if b < 0x20 || b == 0x7F {
			return action{kind: actHexByte, adv: 1, size: 4, b: b}
		}
		return action{kind: actCopy, adv: 1, size: 1}
	}

	r, _ := scan.Decode(p)
	if opts.ASCIIOnly {
		return numericEscape(r, n)
	}

	switch charwidth.Classify(r) {
	case charwidth.Other:
		return numericEscape(r, n)
	case charwidth.Ignorable:
		if opts.Display {
			return action{kind: actDrop, adv: n, size: 0}
		}
	case charwidth.Emoji:
		if opts.Display {
			return action{kind: actEmojiPad, adv: n, size: n + len(zwsp)}
		}
	}
	return action{kind: actCopy, adv: n, size: n}
}

func numericEscape(r rune, n int) action {
	if r <= 0xFFFF {
		return action{kind: actUnicodeShort, adv: n, size: 6, r: r}
	}
	return action{kind: actUnicodeLong, adv: n, size: 10, r: r}
}

func shorthand(b byte) (letter byte, ok bool) {
	switch b {
	case '\a':
		return 'a', true
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	case '\v':
		return 'v', true
	}
	return 0, false
}

// Estimate walks p and computes the exact number of bytes the escaped
// encoding will occupy, without writing anything. transformed is false when
// the output would be byte-identical to the input, letting callers skip
// allocation and return the input unchanged.
func Estimate(p []byte, opts Options) (size int, transformed bool, err error) {
	for i := 0; i < len(p); {
		act := analyze(p[i:], opts)
		size, err = addSize(size, act.size)
		if err != nil {
			return 0, false, err
		}
		if act.kind != actCopy {
			transformed = true
		}
		i += act.adv
	}
	return size, transformed, nil
}

// addSize accumulates an output size, failing when the running total would
// exceed MaxEncodedSize.
func addSize(total, n int) (int, error) {
	if total > MaxEncodedSize-n {
		return 0, errors.Overflow(errors.PhaseEscape,
			"encoded character string size exceeds maximum (2^31-1 bytes)")
	}
	return total + n, nil
}

// Encode writes the escaped encoding of p into dst and returns the number of
// bytes written, which is exactly the size reported by Estimate for the same
// input and options. dst must be at least that large; Encode performs no
// bounds checking of its own.
func Encode(dst, p []byte, opts Options) int {
	o := 0
	for i := 0; i < len(p); {
		act := analyze(p[i:], opts)
		switch act.kind {
		case actCopy:
			o += copy(dst[o:], p[i:i+act.adv])
		case actShorthand:
			dst[o] = '\\'
			dst[o+1] = act.b
			o += 2
		case actHexByte:
			dst[o] = '\\'
			dst[o+1] = 'x'
			dst[o+2] = hexDigits[act.b>>4]
			dst[o+3] = hexDigits[act.b&0xF]
			o += 4
		case actUnicodeShort:
			dst[o] = '\\'
			dst[o+1] = 'u'
			putHex(dst[o+2:], uint32(act.r), 4)
			o += 6
		case actUnicodeLong:
			dst[o] = '\\'
			dst[o+1] = 'U'
			putHex(dst[o+2:], uint32(act.r), 8)
			o += 10
		case actDrop:
			// nothing written
		case actEmojiPad:
			o += copy(dst[o:], p[i:i+act.adv])
			o += copy(dst[o:], zwsp)
		}
		i += act.adv
	}
	return o
}

// putHex writes v as exactly width lowercase hex digits.
func putHex(dst []byte, v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		dst[i] = hexDigits[v&0xF]
		v >>= 4
	}
}

// Append appends the escaped encoding of p to dst and returns the extended
// slice. When no transform is needed the input bytes are appended verbatim.
func Append(dst, p []byte, opts Options) ([]byte, error) {
	size, transformed, err := Estimate(p, opts)
	if err != nil {
		return dst, err
	}
	if !transformed {
		return append(dst, p...), nil
	}
	n := len(dst)
	dst = grow(dst, size)
	Encode(dst[n:], p, opts)
	return dst, nil
}

// String escapes s and returns the result. When no transform is needed the
// input string itself is returned, with no copy made.
func String(s string, opts Options) (string, error) {
	size, transformed, err := Estimate([]byte(s), opts)
	if err != nil {
		return "", err
	}
	if !transformed {
		return s, nil
	}
	dst := make([]byte, size)
	Encode(dst, []byte(s), opts)
	return string(dst), nil
}

func grow(p []byte, n int) []byte {
	if cap(p)-len(p) >= n {
		return p[:len(p)+n]
	}
	q := make([]byte, len(p)+n)
	copy(q, p)
	return q
}

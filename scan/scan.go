package scan

// UTF-8 well-formedness follows the Unicode 15 byte-range table: overlong
// forms, surrogates, code points above U+10FFFF, and 5/6-byte leads are all
// malformed. Each check is against the lead byte's allowed second-byte
// window, so a bad run is rejected without consuming it.

const (
	locb = 0x80 // low bound of a continuation byte
	hicb = 0xBF // high bound of a continuation byte
)

// First returns the length in bytes of the well-formed UTF-8 unit run at the
// start of p. It returns ok=false for an empty buffer, a lone continuation
// byte, a truncated run, an overlong form, a surrogate, or a code point out
// of range; the cursor position is then still at the start of the bad run.
func First(p []byte) (n int, ok bool) {
	if len(p) == 0 {
		return 0, false
	}
	b0 := p[0]
	switch {
	case b0 < 0x80: // ASCII
		return 1, true

	case b0 < 0xC2: // continuation byte, or overlong 2-byte lead (C0, C1)
		return 0, false

	case b0 < 0xE0: // 2-byte run
		if len(p) < 2 || !isCont(p[1]) {
			return 0, false
		}
		return 2, true

	case b0 < 0xF0: // 3-byte run
		if len(p) < 3 {
			return 0, false
		}
		lo, hi := byte(locb), byte(hicb)
		switch b0 {
		case 0xE0:
			lo = 0xA0 // reject overlong forms
		case 0xED:
			hi = 0x9F // reject surrogates U+D800..U+DFFF
		}
		if p[1] < lo || p[1] > hi || !isCont(p[2]) {
			return 0, false
		}
		return 3, true

	case b0 < 0xF5: // 4-byte run
		if len(p) < 4 {
			return 0, false
		}
		lo, hi := byte(locb), byte(hicb)
		switch b0 {
		case 0xF0:
			lo = 0x90 // reject overlong forms
		case 0xF4:
			hi = 0x8F // reject code points above U+10FFFF
		}
		if p[1] < lo || p[1] > hi || !isCont(p[2]) || !isCont(p[3]) {
			return 0, false
		}
		return 4, true

	default: // 0xF5..0xFF: 5/6-byte leads, never valid in UTF-8
		return 0, false
	}
}

// Decode returns the code point of the unit run at the start of p and the
// run's byte length. The run must already have been scanned: Decode trusts
// its input and performs no validity checks.
func Decode(p []byte) (r rune, n int) {
	b0 := p[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0 < 0xE0:
		return rune(b0&0x1F)<<6 | rune(p[1]&0x3F), 2
	case b0 < 0xF0:
		return rune(b0&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F), 3
	default:
		return rune(b0&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F), 4
	}
}

// Valid scans the whole buffer and reports whether every unit run is
// well-formed. On failure, offset is the byte index where the first
// malformed run starts; on success it is -1.
func Valid(p []byte) (ok bool, offset int) {
	for i := 0; i < len(p); {
		n, ok := First(p[i:])
		if !ok {
			return false, i
		}
		i += n
	}
	return true, -1
}

func isCont(b byte) bool {
	return b >= locb && b <= hicb
}

package escape

// Byte-opaque mode, for strings tagged as raw bytes. No character
// interpretation happens: every byte is either a printable ASCII
// passthrough, a control shorthand, or a \xHH escape.

// byteAction is the bytes-mode counterpart of analyze, shared by
// EstimateBytes and EncodeBytes.
func byteAction(b byte) action {
	if letter, ok := shorthand(b); ok {
		return action{kind: actShorthand, adv: 1, size: 2, b: letter}
	}
	if b >= 0x20 && b < 0x7F {
		return action{kind: actCopy, adv: 1, size: 1}
	}
	return action{kind: actHexByte, adv: 1, size: 4, b: b}
}

// EstimateBytes computes the exact escaped size of p in byte-opaque mode.
func EstimateBytes(p []byte) (size int, transformed bool, err error) {
	for _, b := range p {
		act := byteAction(b)
		size, err = addSize(size, act.size)
		if err != nil {
			return 0, false, err
		}
		if act.kind != actCopy {
			transformed = true
		}
	}
	return size, transformed, nil
}

// EncodeBytes writes the byte-opaque escaped encoding of p into dst and
// returns the number of bytes written, exactly as reported by EstimateBytes.
func EncodeBytes(dst, p []byte) int {
	o := 0
	for _, b := range p {
		act := byteAction(b)
		switch act.kind {
		case actCopy:
			dst[o] = b
			o++
		case actShorthand:
			dst[o] = '\\'
			dst[o+1] = act.b
			o += 2
		default:
			dst[o] = '\\'
			dst[o+1] = 'x'
			dst[o+2] = hexDigits[act.b>>4]
			dst[o+3] = hexDigits[act.b&0xF]
			o += 4
		}
	}
	return o
}

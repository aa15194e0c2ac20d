package charwidth

import "github.com/corpustext/utf8text/scan"

// Width returns the display width of p in terminal columns: 1 per narrow or
// ambiguous code point, 2 per wide or emoji code point, 0 for ignorable and
// non-printable ones.
//
// p must be valid UTF-8; that is the caller's precondition. If a malformed
// run is hit anyway, Width stops there and returns the columns accumulated
// so far rather than decoding garbage.
func Width(p []byte) int {
	width := 0
	for i := 0; i < len(p); {
		n, ok := scan.First(p[i:])
		if !ok {
			return width
		}
		r, _ := scan.Decode(p[i:])
		i += n
		width += Classify(r).Columns()
	}
	return width
}

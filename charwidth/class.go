package charwidth

import "unicode"

// Class is the display-width classification of a code point.
type Class int

const (
	Other     Class = iota // non-printable, needs a numeric escape
	Ignorable              // no visual rendering, dropped in display mode
	Narrow
	Ambiguous // narrow or wide depending on East Asian context
	Wide
	Emoji // emoji presentation, rendered double-width
)

func (c Class) String() string {
	switch c {
	case Ignorable:
		return "ignorable"
	case Narrow:
		return "narrow"
	case Ambiguous:
		return "ambiguous"
	case Wide:
		return "wide"
	case Emoji:
		return "emoji"
	default:
		return "other"
	}
}

// Columns returns the number of terminal columns the class occupies:
// 1 for narrow and ambiguous, 2 for wide and emoji, 0 otherwise.
func (c Class) Columns() int {
	switch c {
	case Narrow, Ambiguous:
		return 1
	case Wide, Emoji:
		return 2
	default:
		return 0
	}
}

// Classify maps a code point to its width class. Every valid code point maps
// to exactly one class; there is no error case.
//
// Precedence: default-ignorable code points are Ignorable even when another
// property also applies (the Hangul fillers are in the wide table too);
// anything without a graphic rendering is Other; emoji presentation wins
// over East Asian width.
func Classify(r rune) Class {
	if r < 0x80 {
		if r >= 0x20 && r != 0x7F {
			return Narrow
		}
		return Other
	}
	if inTable(defaultIgnorable, r) {
		return Ignorable
	}
	if !unicode.IsGraphic(r) {
		return Other
	}
	if inTable(emojiPresentation, r) {
		return Emoji
	}
	if inTable(eastAsianWide, r) {
		return Wide
	}
	if inTable(eastAsianAmbiguous, r) {
		return Ambiguous
	}
	return Narrow
}

// inTable performs a binary search on a sorted range table.
func inTable(table [][2]rune, r rune) bool {
	from := 0
	to := len(table)
	for to > from {
		// Avoid overflow.
		middle := from + (to-from)/2
		cpRange := table[middle]
		if r < cpRange[0] {
			to = middle
			continue
		}
		if r > cpRange[1] {
			from = middle + 1
			continue
		}
		return true
	}
	return false
}

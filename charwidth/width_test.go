package charwidth

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"ascii letter", 'a', Narrow},
		{"ascii digit", '7', Narrow},
		{"space", ' ', Narrow},
		{"bell", 0x07, Other},
		{"newline", '\n', Other},
		{"delete", 0x7F, Other},
		{"latin e acute", 0x00E9, Ambiguous},
		{"greek alpha", 0x03B1, Ambiguous},
		{"combining acute", 0x0301, Ambiguous},
		{"cjk ideograph", 0x4E2D, Wide},
		{"hiragana a", 0x3042, Wide},
		{"hangul syllable", 0xAC00, Wide},
		{"fullwidth A", 0xFF21, Wide},
		{"grinning face", 0x1F600, Emoji},
		{"watch", 0x231A, Emoji},
		{"rocket", 0x1F680, Emoji},
		{"zero width space", 0x200B, Ignorable},
		{"soft hyphen", 0x00AD, Ignorable},
		{"byte order mark", 0xFEFF, Ignorable},
		{"hangul filler", 0x115F, Ignorable},
		{"variation selector", 0xFE0F, Ignorable},
		{"line separator", 0x2028, Other},
		{"unassigned", 0x0378, Other},
		{"tibetan letter", 0x0F40, Narrow},
		{"hebrew alef", 0x05D0, Narrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r); got != tt.want {
				t.Errorf("Classify(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		class Class
		want  int
	}{
		{Narrow, 1},
		{Ambiguous, 1},
		{Wide, 2},
		{Emoji, 2},
		{Ignorable, 0},
		{Other, 0},
	}

	for _, tt := range tests {
		if got := tt.class.Columns(); got != tt.want {
			t.Errorf("%v.Columns() = %d, want %d", tt.class, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single narrow", "a", 1},
		{"single wide", "中", 2},
		{"single emoji", "😀", 2},
		{"single ignorable", "​", 0},
		{"ascii word", "hello", 5},
		{"cjk word", "中文", 4},
		{"mixed", "a中😀", 5},
		{"ignorable between", "a​b", 2},
		{"control contributes zero", "a\nb", 2},
		{"combining mark counts as ambiguous", "é", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width([]byte(tt.in)); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// Invalid input terminates the walk, returning the width accumulated so far.
func TestWidth_InvalidStops(t *testing.T) {
	p := append([]byte("ab"), 0xFF, 'c', 'd')
	if got := Width(p); got != 2 {
		t.Errorf("Width = %d, want 2 (accumulated before the invalid byte)", got)
	}
}

func TestTablesSorted(t *testing.T) {
	for name, table := range map[string][][2]rune{
		"eastAsianWide":      eastAsianWide,
		"eastAsianAmbiguous": eastAsianAmbiguous,
		"emojiPresentation":  emojiPresentation,
		"defaultIgnorable":   defaultIgnorable,
	} {
		last := rune(-1)
		for i, r := range table {
			if r[0] > r[1] {
				t.Errorf("%s[%d]: range %U..%U inverted", name, i, r[0], r[1])
			}
			if r[0] <= last {
				t.Errorf("%s[%d]: range %U..%U overlaps or is out of order", name, i, r[0], r[1])
			}
			last = r[1]
		}
	}
}

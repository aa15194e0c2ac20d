package scan

import (
	"strings"
	"testing"
)

func TestFirst(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		n    int
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"ascii", []byte("a"), 1, true},
		{"nul", []byte{0x00}, 1, true},
		{"del", []byte{0x7F}, 1, true},
		{"two byte", []byte("é"), 2, true},
		{"three byte", []byte("中"), 3, true},
		{"four byte", []byte("😀"), 4, true},
		{"max rune", []byte{0xF4, 0x8F, 0xBF, 0xBF}, 4, true},
		{"lone continuation", []byte{0x80}, 0, false},
		{"high continuation", []byte{0xBF}, 0, false},
		{"overlong two byte C0", []byte{0xC0, 0x80}, 0, false},
		{"overlong two byte C1", []byte{0xC1, 0xBF}, 0, false},
		{"overlong three byte", []byte{0xE0, 0x9F, 0xBF}, 0, false},
		{"smallest valid three byte", []byte{0xE0, 0xA0, 0x80}, 3, true},
		{"surrogate D800", []byte{0xED, 0xA0, 0x80}, 0, false},
		{"below surrogate", []byte{0xED, 0x9F, 0xBF}, 3, true},
		{"overlong four byte", []byte{0xF0, 0x8F, 0xBF, 0xBF}, 0, false},
		{"above max rune", []byte{0xF4, 0x90, 0x80, 0x80}, 0, false},
		{"five byte lead", []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, 0, false},
		{"six byte lead", []byte{0xFC, 0x84, 0x80, 0x80, 0x80, 0x80}, 0, false},
		{"ff lead", []byte{0xFF}, 0, false},
		{"truncated two byte", []byte{0xC3}, 0, false},
		{"truncated three byte", []byte{0xE4, 0xB8}, 0, false},
		{"truncated four byte", []byte{0xF0, 0x9F, 0x98}, 0, false},
		{"bad continuation mid run", []byte{0xE4, 0x28, 0xAD}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := First(tt.in)
			if n != tt.n || ok != tt.ok {
				t.Errorf("First(% x) = (%d, %v), want (%d, %v)", tt.in, n, ok, tt.n, tt.ok)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in string
		r  rune
		n  int
	}{
		{"a", 'a', 1},
		{"é", 0x00E9, 2},
		{"中", 0x4E2D, 3},
		{"​", 0x200B, 3},
		{"😀", 0x1F600, 4},
		{"\U0010FFFF", 0x10FFFF, 4},
	}

	for _, tt := range tests {
		p := []byte(tt.in)
		if n, ok := First(p); !ok || n != tt.n {
			t.Fatalf("First(%q) = (%d, %v), want (%d, true)", tt.in, n, ok, tt.n)
		}
		r, n := Decode(p)
		if r != tt.r || n != tt.n {
			t.Errorf("Decode(%q) = (%U, %d), want (%U, %d)", tt.in, r, n, tt.r, tt.n)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		ok     bool
		offset int
	}{
		{"empty", nil, true, -1},
		{"ascii", []byte("hello"), true, -1},
		{"mixed", []byte("héllo 中 😀"), true, -1},
		{"invalid at start", []byte{0xFF, 'a'}, false, 0},
		{"invalid after prefix", append([]byte("abc"), 0x80), false, 3},
		{"truncated at end", append([]byte("ab"), 0xE4, 0xB8), false, 2},
		{"invalid after multibyte", append([]byte("中"), 0xC0, 0xAF), false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, offset := Valid(tt.in)
			if ok != tt.ok || offset != tt.offset {
				t.Errorf("Valid(% x) = (%v, %d), want (%v, %d)", tt.in, ok, offset, tt.ok, tt.offset)
			}
		})
	}
}

// Buffers built from any sequence of valid code points always validate.
func TestValid_RoundTrip(t *testing.T) {
	runs := []string{"a", "é", "中", "😀", "​", "­", strings.Repeat("語", 50)}
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString(runs[i%len(runs)])
	}
	if ok, offset := Valid([]byte(sb.String())); !ok {
		t.Errorf("constructed buffer reported invalid at %d", offset)
	}
}

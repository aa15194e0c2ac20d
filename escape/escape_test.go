package escape

import (
	"bytes"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/corpustext/utf8text/errors"
)

var allOptions = []Options{
	{},
	{Display: true},
	{ASCIIOnly: true},
	{Display: true, ASCIIOnly: true},
}

func encodeToString(t *testing.T, p []byte, opts Options) string {
	t.Helper()
	size, _, err := Estimate(p, opts)
	if err != nil {
		t.Fatalf("Estimate(% x) failed: %v", p, err)
	}
	dst := make([]byte, size)
	if written := Encode(dst, p, opts); written != size {
		t.Fatalf("Encode wrote %d bytes, Estimate said %d", written, size)
	}
	return string(dst)
}

func TestEscapeExactness(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		opts Options
		want string
	}{
		{"bell shorthand", []byte{0x07}, Options{}, `\a`},
		{"newline shorthand", []byte{'\n'}, Options{}, `\n`},
		{"tab shorthand", []byte{'\t'}, Options{}, `\t`},
		{"vertical tab shorthand", []byte{'\v'}, Options{}, `\v`},
		{"escape control", []byte{0x1B}, Options{}, `\x1b`},
		{"delete", []byte{0x7F}, Options{}, `\x7f`},
		{"invalid lead byte", []byte{0xFF}, Options{}, `\xff`},
		{"each invalid byte individually", []byte{0xC3, 0x28}, Options{}, `\xc3(`},
		{"truncated run at end", append([]byte("ab"), 0xE4, 0xB8), Options{}, `ab\xe4\xb8`},
		{"wide passthrough", []byte("中"), Options{}, "中"},
		{"wide passthrough display", []byte("中"), Options{Display: true}, "中"},
		{"emoji untouched without display", []byte("😀"), Options{}, "😀"},
		{"emoji zwsp pad in display", []byte("😀"), Options{Display: true}, "😀​"},
		{"ignorable kept without display", []byte("​"), Options{}, "​"},
		{"ignorable dropped in display", []byte("​"), Options{Display: true}, ""},
		{"soft hyphen dropped in display", []byte("­"), Options{Display: true}, ""},
		{"ascii only short escape", []byte("é"), Options{ASCIIOnly: true}, `\u00e9`},
		{"ascii only wide", []byte("中"), Options{ASCIIOnly: true}, `\u4e2d`},
		{"ascii only long escape", []byte("😀"), Options{ASCIIOnly: true}, `\U0001f600`},
		{"line separator escaped", []byte("\u2028"), Options{}, `\u2028`},
		{"unassigned escaped", []byte("\u0378"), Options{}, `\u0378`},
		{"mixed", []byte("a\tb\xffc"), Options{}, `a\tb\xffc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeToString(t, tt.in, tt.opts)
			if got != tt.want {
				t.Errorf("encode(% x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEstimateSizes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		opts Options
		size int
	}{
		{"bell", []byte{0x07}, Options{}, 2},
		{"invalid byte", []byte{0xFF}, Options{}, 4},
		{"wide passthrough", []byte("中"), Options{}, 3},
		{"emoji display", []byte("😀"), Options{Display: true}, 7},
		{"ignorable display", []byte("​"), Options{Display: true}, 0},
		{"ascii only bmp", []byte("é"), Options{ASCIIOnly: true}, 6},
		{"ascii only astral", []byte("😀"), Options{ASCIIOnly: true}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, _, err := Estimate(tt.in, tt.opts)
			if err != nil {
				t.Fatalf("Estimate failed: %v", err)
			}
			if size != tt.size {
				t.Errorf("Estimate(% x) = %d, want %d", tt.in, size, tt.size)
			}
		})
	}
}

// Printable ASCII with no controls needs no transform under any options.
func TestNoOpFastPath(t *testing.T) {
	in := []byte("The quick brown fox jumps over the lazy dog! 0123456789 ~}|{")
	for _, opts := range allOptions {
		size, transformed, err := Estimate(in, opts)
		if err != nil {
			t.Fatalf("Estimate failed: %v", err)
		}
		if transformed {
			t.Errorf("opts %+v: printable ASCII reported as needing transform", opts)
		}
		if size != len(in) {
			t.Errorf("opts %+v: size = %d, want %d", opts, size, len(in))
		}
	}
}

// Multibyte passthrough is byte-preserving but a transform is still not
// flagged, so valid non-ASCII text also takes the fast path.
func TestNoOpMultibyte(t *testing.T) {
	in := []byte("héllo 中文")
	_, transformed, err := Estimate(in, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if transformed {
		t.Error("valid text without escapes reported as needing transform")
	}
}

// Encode must write exactly the byte count Estimate computed, for every
// input and option combination.
func TestDualPassAgreement(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("plain ascii"),
		[]byte("tabs\tand\nnewlines\r\v\f\a\b"),
		[]byte{0x00, 0x01, 0x1F, 0x7F},
		[]byte("héllo wörld"),
		[]byte("中文字符串"),
		[]byte("emoji 😀🚀⌚ soup"),
		[]byte("zwsp\u200bsoft\u00adhyphen\ufeff"),
		[]byte("sep\u2028\u2029"),
		{0xFF, 0xFE, 0x80, 0xC0, 0xC1},
		append([]byte("valid prefix "), 0xE4, 0xB8),
		[]byte(strings.Repeat("aé中😀​\t", 37)),
	}

	for _, in := range inputs {
		for _, opts := range allOptions {
			size, _, err := Estimate(in, opts)
			if err != nil {
				t.Fatalf("Estimate(% x) failed: %v", in, err)
			}
			dst := make([]byte, size)
			if written := Encode(dst, in, opts); written != size {
				t.Errorf("opts %+v input % x: Encode wrote %d, Estimate said %d",
					opts, in, written, size)
			}
		}
	}
}

func TestBytesMode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"printable passthrough", []byte("abc"), "abc"},
		{"shorthand", []byte("a\nb"), `a\nb`},
		{"high byte", []byte{0x80}, `\x80`},
		{"valid utf8 still byte escaped", []byte("é"), `\xc3\xa9`},
		{"control", []byte{0x1F}, `\x1f`},
		{"mixed", []byte{'x', 0xFF, '\t', 'y'}, `x\xff\ty`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, _, err := EstimateBytes(tt.in)
			if err != nil {
				t.Fatalf("EstimateBytes failed: %v", err)
			}
			dst := make([]byte, size)
			if written := EncodeBytes(dst, tt.in); written != size {
				t.Fatalf("EncodeBytes wrote %d, EstimateBytes said %d", written, size)
			}
			if string(dst) != tt.want {
				t.Errorf("EncodeBytes(% x) = %q, want %q", tt.in, dst, tt.want)
			}
		})
	}
}

func TestBytesModeNoOp(t *testing.T) {
	size, transformed, err := EstimateBytes([]byte("plain"))
	if err != nil {
		t.Fatal(err)
	}
	if transformed || size != 5 {
		t.Errorf("EstimateBytes(plain) = (%d, %v), want (5, false)", size, transformed)
	}
}

func TestAddSizeOverflow(t *testing.T) {
	if _, err := addSize(MaxEncodedSize-4, 4); err != nil {
		t.Errorf("total exactly at ceiling should not overflow: %v", err)
	}

	_, err := addSize(MaxEncodedSize-3, 4)
	if err == nil {
		t.Fatal("expected overflow error")
	}
	target := &errors.Error{Phase: errors.PhaseEscape, Kind: errors.KindOverflow}
	if !stderrors.Is(err, target) {
		t.Errorf("overflow error = %v, want phase escape, kind overflow", err)
	}
}

func TestString(t *testing.T) {
	got, err := String("a\tb", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got != `a\tb` {
		t.Errorf("String = %q, want %q", got, `a\tb`)
	}

	in := "untouched"
	got, err = String(in, Options{Display: true})
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("String = %q, want input unchanged", got)
	}
}

func TestAppend(t *testing.T) {
	out, err := Append([]byte("prefix:"), []byte("a\x07"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `prefix:a\a` {
		t.Errorf("Append = %q", out)
	}

	out, err = Append(nil, []byte("clean"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte("clean")) {
		t.Errorf("Append no-op = %q", out)
	}
}

func TestScratch(t *testing.T) {
	var s Scratch
	b1 := s.Bytes(16)
	if len(b1) != 16 {
		t.Fatalf("len = %d, want 16", len(b1))
	}
	b2 := s.Bytes(512)
	if len(b2) != 512 {
		t.Fatalf("len = %d, want 512", len(b2))
	}
	// grow-only: a smaller request reuses the larger buffer
	b3 := s.Bytes(8)
	if len(b3) != 8 || cap(s.buf) < 512 {
		t.Error("scratch shrank")
	}
}

func TestScratchPool(t *testing.T) {
	s := GetScratch()
	buf := s.Bytes(64)
	copy(buf, "data")
	PutScratch(s)

	// oversized buffers are rejected rather than retained
	big := &Scratch{buf: make([]byte, poolMaxCap+1)}
	PutScratch(big)
}

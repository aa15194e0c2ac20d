// Package utf8text provides UTF-8 validation, display-width measurement, and
// safe escape encoding for byte strings.
//
// The library answers three questions about a byte sequence: is it valid
// UTF-8 (and if not, where is the first bad byte), how many terminal columns
// does it occupy, and what does a human-safe escaped rendition of it look
// like. The escaped form uses shorthand escapes for the common controls
// (\n, \t, ...), \xHH for stray bytes, and \uXXXX / \UXXXXYYYY for
// non-printable code points.
//
// # Architecture Overview
//
// The packages are layered leaves-first, with distinct responsibilities:
//
//	utf8text/            Root package with the String value and Encoding tags
//	├── scan/            UTF-8 unit-run scanner and whole-buffer validity
//	├── charwidth/       Code-point width classes and display-width sums
//	├── escape/          Two-pass (measure, then write) escape encoder
//	├── vector/          Batch drivers: coerce, validate, width, encode
//	├── errors/          Structured errors with phase and kind taxonomy
//	└── cmd/utf8vet/     CLI and interactive inspector
//
// # Escape Encoding
//
// Encoding is a strict two-pass transform. escape.Estimate walks the input
// and computes the exact output size without writing; the caller allocates;
// escape.Encode writes exactly that many bytes. Both passes consult one
// shared per-run analysis, so size and content cannot drift apart:
//
//	input bytes ──> Estimate ──> size, transformed?
//	                   │ no transform: return input unchanged
//	                   ▼
//	caller allocates size bytes ──> Encode ──> escaped output
//
// Per unit run, the output is one of:
//
//	Category           Output                 Size
//	────────────────────────────────────────────────
//	printable ASCII    the byte               1
//	control shorthand  \a \b \f \n \r \t \v   2
//	other control      \xHH                   4
//	invalid byte       \xHH                   4
//	non-printable      \uXXXX or \UXXXXYYYY   6 or 10
//	ignorable          dropped (display)      0
//	emoji              bytes + U+200B pad     n+3
//	everything else    the bytes              n
//
// All operations are pure, synchronous walks over caller-provided buffers.
// The core never allocates output; batch callers may reuse a grow-only
// escape.Scratch across elements.
package utf8text

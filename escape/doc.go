// Package escape produces safe escaped renditions of byte strings.
//
// Encoding is a strict two-pass transform: Estimate computes the exact
// output size without writing, the caller allocates, and Encode writes
// exactly that many bytes. Both passes derive every branch from one shared
// per-run analysis, so the size and the content cannot drift apart. That
// agreement is the central correctness invariant of the package: a
// divergence would overflow the caller's buffer.
//
// Two modes exist. Character mode scans UTF-8 unit runs and applies the
// Options policy to each code point; byte-opaque mode (EstimateBytes,
// EncodeBytes) treats every byte individually and never interprets
// characters. In both modes, a string needing no change reports
// transformed=false so the caller can return the input untouched.
//
// Escape formats, byte-exact:
//
//	\a \b \f \n \r \t \v   control shorthand, 2 bytes
//	\xHH                   stray or non-printable byte, lowercase hex
//	\uXXXX                 code point <= U+FFFF, lowercase hex
//	\UXXXXYYYY             code point above U+FFFF, lowercase hex
//
// Output size is capped at MaxEncodedSize (2^31-1); crossing the cap is a
// fatal overflow error, not a per-element failure.
package escape

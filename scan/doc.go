// Package scan decodes and validates UTF-8 unit runs.
//
// A unit run is the 1-4 byte sequence encoding one code point. First scans a
// single run and reports its length without moving past a malformed run;
// Decode extracts the code point from a run that is known to be valid; Valid
// walks a whole buffer and reports the offset of the first malformed run.
//
// The scanner contains malformed input rather than propagating it: a bad
// byte is reported at its own offset and never decoded, so callers can
// escape it individually and continue one byte later.
package scan

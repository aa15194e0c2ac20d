// Package vector applies the core text operations element-wise over
// character vectors.
//
// A vector is a []utf8text.String. Every operation passes NA elements
// through untouched and never mutates its input: slices are copied on the
// first change and returned as-is otherwise, so an all-clean vector costs
// nothing.
//
// Error policy follows a strict split. Per-element invalidity from Valid is
// a structural result, not an error. Coerce treats invalid bytes as fatal
// because its callers require valid UTF-8 as a precondition; the error
// message cites the 1-based entry index, byte position, and hex byte value.
// A size overflow in Encode aborts the whole batch.
package vector

// Package errors provides structured error types for the utf8text library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element index, byte offset, and cause chain.
// Indices and offsets in user-facing messages are 1-based.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEscape, errors.KindOverflow).
//		Path("x[3]").
//		Detail("encoded character string size exceeds maximum (2^31-1 bytes)").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidUTF8Elem(errors.PhaseCoerce, i, off, b)
//	err := errors.TypeMismatch(errors.PhaseVector, "nil", "a character vector")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

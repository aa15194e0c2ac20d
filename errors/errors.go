package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseScan   Phase = "scan"   // UTF-8 scanning and validation
	PhaseWidth  Phase = "width"  // display width measurement
	PhaseEscape Phase = "escape" // escape encoding
	PhaseCoerce Phase = "coerce" // encoding conversion to UTF-8
	PhaseVector Phase = "vector" // batch element dispatch
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8         Kind = "invalid_utf8"
	KindOverflow            Kind = "overflow"
	KindTypeMismatch        Kind = "type_mismatch"
	KindUnsupportedEncoding Kind = "unsupported_encoding"
	KindInvalidInput        Kind = "invalid_input"
	KindOutOfBounds         Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the library.
//
// Elem and Offset carry the 1-based element index and byte position shown in
// user-facing messages; zero means not set. Overflow and type-mismatch
// errors are fatal and abort a whole batch; invalid-UTF-8 errors refer to a
// single element.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Elem   int
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Elem sets the 1-based element index
func (b *Builder) Elem(i int) *Builder {
	b.err.Elem = i
	return b
}

// Offset sets the 1-based byte position
func (b *Builder) Offset(pos int) *Builder {
	b.err.Offset = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidUTF8 creates an invalid UTF-8 error for byte b at 0-based buffer
// offset. The message reports the 1-based position.
func InvalidUTF8(phase Phase, offset int, b byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Offset: offset + 1,
		Value:  b,
		Detail: fmt.Sprintf("invalid byte in position %d (\\x%02x)", offset+1, b),
	}
}

// InvalidUTF8Elem creates an invalid UTF-8 error for element elem (0-based)
// at byte offset (0-based). Messages use 1-based indices.
func InvalidUTF8Elem(phase Phase, elem, offset int, b byte) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Elem:   elem + 1,
		Offset: offset + 1,
		Value:  b,
		Detail: fmt.Sprintf("entry %d contains an invalid byte in position %d (\\x%02x)",
			elem+1, offset+1, b),
	}
}

// Overflow creates a fatal output-size overflow error
func Overflow(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: detail,
	}
}

// TypeMismatch creates a fatal input-type error
func TypeMismatch(phase Phase, got, want string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Detail: fmt.Sprintf("argument is %s, not %s", got, want),
	}
}

// UnsupportedEncoding creates an error for an encoding the transcoder
// cannot convert
func UnsupportedEncoding(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedEncoding,
		Detail: fmt.Sprintf("cannot convert from %q encoding to \"UTF-8\"", name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

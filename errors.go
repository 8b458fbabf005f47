package pretty

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrMalformedEscape indicates an escape prefix inside an open capture
	// or a non-hex rune inside the 2-digit capture.
	ErrMalformedEscape = errors.New("malformed escape")

	// ErrUnmappableRune indicates a rune with no byte inverse that is not
	// part of any escape, newline, or continuation syntax.
	ErrUnmappableRune = errors.New("unmappable rune")

	// ErrUnterminatedEscape indicates the stream was finalized while a
	// 2-digit escape capture was still open.
	ErrUnterminatedEscape = errors.New("unterminated escape")

	// ErrInvalidOptions indicates a glyph configuration that cannot be used.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrBadState indicates a session state snapshot that cannot be
	// serialized or restored.
	ErrBadState = errors.New("bad session state")
)

// EncodeError reports a failure while turning pretty text back into bytes.
// It wraps a sentinel error with the position and the partial escape
// buffer, so the caller can decide to resynchronize or abort.
type EncodeError struct {
	Err    error  // Underlying sentinel error (ErrMalformedEscape, etc.)
	Offset int    // Rune offset within the chunk that failed
	Rune   rune   // Offending rune; zero when the stream ended mid-capture
	Buffer string // Partial hex capture at the point of failure
}

func (e *EncodeError) Error() string {
	if e.Rune == 0 {
		return fmt.Sprintf("%s at offset %d (buffer %q)", e.Err.Error(), e.Offset, e.Buffer)
	}
	if e.Buffer != "" {
		return fmt.Sprintf("%s at offset %d: %q (buffer %q)", e.Err.Error(), e.Offset, e.Rune, e.Buffer)
	}
	return fmt.Sprintf("%s at offset %d: %q", e.Err.Error(), e.Offset, e.Rune)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// OptionsError reports an unusable glyph configuration.
type OptionsError struct {
	Err    error  // Underlying sentinel error (ErrInvalidOptions)
	Field  string // Option field that failed validation
	Value  string // Offending value
	Reason string // Human-readable constraint that was violated
	Cause  error  // Original error, when parsing failed
}

func (e *OptionsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s %q %s", e.Err.Error(), e.Field, e.Value, e.Reason)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}

// StateError reports a session snapshot that failed to serialize or restore.
type StateError struct {
	Err   error // Underlying sentinel error (ErrBadState)
	Cause error // Original error from the state codec
}

func (e *StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// newEncodeError creates an EncodeError for engine failures.
func newEncodeError(sentinel error, offset int, r rune, buffer string) error {
	return &EncodeError{
		Err:    sentinel,
		Offset: offset,
		Rune:   r,
		Buffer: buffer,
	}
}

// newOptionsError creates an OptionsError for validation failures.
func newOptionsError(field, value, reason string) error {
	return &OptionsError{
		Err:    ErrInvalidOptions,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// newStateError creates a StateError for snapshot failures.
func newStateError(cause error) error {
	return &StateError{
		Err:   ErrBadState,
		Cause: cause,
	}
}

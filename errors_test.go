package pretty

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeError_Is(t *testing.T) {
	err := newEncodeError(ErrMalformedEscape, 4, '˟', "1")

	if !errors.Is(err, ErrMalformedEscape) {
		t.Error("EncodeError should unwrap to ErrMalformedEscape")
	}
	if errors.Is(err, ErrUnmappableRune) {
		t.Error("EncodeError should not match ErrUnmappableRune")
	}
}

func TestEncodeError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantPart string
	}{
		{
			name:     "with rune and buffer",
			err:      newEncodeError(ErrMalformedEscape, 4, '˟', "1"),
			wantPart: `malformed escape at offset 4: '˟' (buffer "1")`,
		},
		{
			name:     "with rune only",
			err:      newEncodeError(ErrUnmappableRune, 2, 'é', ""),
			wantPart: `unmappable rune at offset 2: 'é'`,
		},
		{
			name:     "stream ended mid-capture",
			err:      newEncodeError(ErrUnterminatedEscape, 7, 0, "c"),
			wantPart: `unterminated escape at offset 7 (buffer "c")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); !strings.Contains(got, tt.wantPart) {
				t.Errorf("Error() = %q, want substring %q", got, tt.wantPart)
			}
		})
	}
}

func TestOptionsError_IsAndMessage(t *testing.T) {
	err := newOptionsError("escape_prefix", "x", "collides with a mapped glyph")

	if !errors.Is(err, ErrInvalidOptions) {
		t.Error("OptionsError should unwrap to ErrInvalidOptions")
	}
	want := `invalid options: escape_prefix "x" collides with a mapped glyph`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStateError_IsAndMessage(t *testing.T) {
	cause := errors.New("truncated input")
	err := newStateError(cause)

	if !errors.Is(err, ErrBadState) {
		t.Error("StateError should unwrap to ErrBadState")
	}
	if got := err.Error(); !strings.Contains(got, "truncated input") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestEncodeError_As(t *testing.T) {
	_, err := Encode("˟zz")

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("error should be *EncodeError, got %T", err)
	}
	if encErr.Err != ErrMalformedEscape {
		t.Errorf("Err = %v, want ErrMalformedEscape", encErr.Err)
	}
}

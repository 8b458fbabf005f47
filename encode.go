package pretty

import "strconv"

// EncoderState carries the text→byte transform across chunk boundaries.
// The zero value is the initial state.
type EncoderState struct {
	// PendingSkip is true when a continuation marker was seen and the
	// next rune (the injected line break) must be consumed unemitted.
	PendingSkip bool `msgpack:"pending_skip"`

	// SuppressNewlines is true inside a run of newline representations,
	// which collapse to the single LF already emitted.
	SuppressNewlines bool `msgpack:"suppress_newlines"`

	// EscapeRemaining counts hex digits still expected (0, 1, or 2).
	EscapeRemaining uint8 `msgpack:"escape_remaining"`

	// EscapeBuffer holds the hex digits captured so far.
	EscapeBuffer string `msgpack:"escape_buffer"`
}

// Reset returns the state to its initial value.
func (st *EncoderState) Reset() {
	*st = EncoderState{}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// encodeRune advances the encoder by one input rune. At most one byte is
// produced per rune; emitted is false when the rune only mutated state.
//
// Branch order is load-bearing: continuation marker, then newline
// representations, then the escape prefix, then an open capture, then the
// tab companion, then the inverse table. A newline rune inside an open
// capture is therefore treated as a newline, and the capture stays open.
//
// Errors are returned before any state mutation, so the caller may skip
// the offending rune and resume.
func (t *Table) encodeRune(st *EncoderState, r rune) (b byte, emitted bool, err error) {
	if st.PendingSkip {
		st.PendingSkip = false
		return 0, false, nil
	}

	if r == t.continuation {
		st.PendingSkip = true
		return 0, false, nil
	}

	switch r {
	case '\r', '\n', lfGlyph, crGlyph:
		if st.SuppressNewlines {
			return 0, false, nil
		}
		st.SuppressNewlines = true
		return '\n', true, nil
	}
	st.SuppressNewlines = false

	if r == t.prefix {
		if st.EscapeRemaining > 0 {
			return 0, false, ErrMalformedEscape
		}
		st.EscapeRemaining = escapeDigits
		return 0, false, nil
	}

	if st.EscapeRemaining > 0 {
		if !isHexDigit(r) {
			return 0, false, ErrMalformedEscape
		}
		st.EscapeBuffer += string(r)
		st.EscapeRemaining--
		if st.EscapeRemaining == 0 {
			v, _ := strconv.ParseUint(st.EscapeBuffer, 16, 8)
			st.EscapeBuffer = ""
			return byte(v), true, nil
		}
		return 0, false, nil
	}

	if r == tabCompanion {
		return 0, false, nil
	}

	if raw, ok := t.fromGlyph[r]; ok {
		return raw, true, nil
	}
	return 0, false, ErrUnmappableRune
}

// encodeChunk turns one chunk of pretty text back into bytes, mutating st
// in place. With final set, a dangling escape capture is an error and the
// session must be reset before further use.
//
// Error offsets are rune offsets relative to text.
func encodeChunk(t *Table, st *EncoderState, text string, final bool) ([]byte, error) {
	out := make([]byte, 0, len(text))
	pos := 0
	for _, r := range text {
		b, emitted, err := t.encodeRune(st, r)
		if err != nil {
			return out, newEncodeError(err, pos, r, st.EscapeBuffer)
		}
		if emitted {
			out = append(out, b)
		}
		pos++
	}
	if final && st.EscapeRemaining > 0 {
		return out, newEncodeError(ErrUnterminatedEscape, pos, 0, st.EscapeBuffer)
	}
	return out, nil
}

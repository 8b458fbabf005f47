package pretty

import "strings"

// DecoderState carries the byte→text transform across chunk boundaries.
// The zero value is the initial state.
type DecoderState struct {
	// PrevNewline is true when the previous byte was CR or LF, meaning a
	// plain line break is still owed as soon as the run ends.
	PrevNewline bool `msgpack:"prev_newline"`
}

// Reset returns the state to its initial value.
func (st *DecoderState) Reset() {
	st.PrevNewline = false
}

// decodeByte advances the decoder by one raw byte and returns the glyph to
// emit plus whether a plain line break must be emitted first. Decoding is
// total: every byte has exactly one glyph and this can never fail.
//
// The break is owed when a CR/LF run transitions back to non-newline
// bytes, so the raw newline bytes stay visible as glyphs while the text
// still wraps on the terminal. A run at end-of-input emits no break until
// a later chunk delivers the first non-newline byte.
func (t *Table) decodeByte(st *DecoderState, b byte) (glyph string, breakBefore bool) {
	isNewline := b == '\n' || b == '\r'
	breakBefore = st.PrevNewline && !isNewline
	st.PrevNewline = isNewline
	return t.toGlyph[b], breakBefore
}

// decodeChunk renders one chunk of raw bytes as pretty text, mutating st
// in place. Output is identical for any split of the input into chunks.
func decodeChunk(t *Table, st *DecoderState, src []byte) string {
	var sb strings.Builder
	sb.Grow(len(src) + len(src)/8)
	for _, b := range src {
		glyph, breakBefore := t.decodeByte(st, b)
		if breakBefore {
			sb.WriteByte('\n')
		}
		sb.WriteString(glyph)
	}
	return sb.String()
}

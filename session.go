package pretty

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
)

// DecoderSession holds decoder state across repeated Feed calls, so a live
// byte stream can be rendered chunk by chunk with output identical to a
// single-block decode.
//
// Each session owns its state exclusively; concurrent callers need one
// session each. The underlying Table is shared and immutable.
type DecoderSession struct {
	table *Table
	state DecoderState
}

// NewDecoderSession creates a decoder session for the given options.
func NewDecoderSession(opts Options) (*DecoderSession, error) {
	t, err := tableFor(opts)
	if err != nil {
		return nil, err
	}
	emitSessionCreated(context.Background(), directionDecode)
	return &DecoderSession{table: t}, nil
}

// Feed decodes one chunk and returns only the text produced for it.
// Decoding is total and cannot fail.
func (s *DecoderSession) Feed(ctx context.Context, chunk []byte) string {
	start := time.Now()
	text := decodeChunk(s.table, &s.state, chunk)
	emitDecodeComplete(ctx, len(chunk), utf8.RuneCountInString(text), time.Since(start))
	return text
}

// Reset returns the session to its initial state.
func (s *DecoderSession) Reset() {
	s.state.Reset()
	emitSessionReset(context.Background(), directionDecode)
}

// GetState serializes the exact mid-stream position as an opaque value.
func (s *DecoderSession) GetState() ([]byte, error) {
	data, err := msgpack.Marshal(&s.state)
	if err != nil {
		return nil, newStateError(err)
	}
	return data, nil
}

// SetState restores a position previously captured with GetState.
// Continuation behavior after a restore is bit-identical to the session
// that produced the snapshot.
func (s *DecoderSession) SetState(data []byte) error {
	var st DecoderState
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return newStateError(err)
	}
	s.state = st
	emitSessionRestored(context.Background(), directionDecode)
	return nil
}

// EncoderSession holds encoder state across repeated Feed calls, so pretty
// text can be turned back into bytes as it arrives, including escape
// sequences and continuation pairs split across chunks.
type EncoderSession struct {
	table *Table
	state EncoderState
}

// NewEncoderSession creates an encoder session for the given options.
func NewEncoderSession(opts Options) (*EncoderSession, error) {
	t, err := tableFor(opts)
	if err != nil {
		return nil, err
	}
	emitSessionCreated(context.Background(), directionEncode)
	return &EncoderSession{table: t}, nil
}

// Feed encodes one chunk and returns only the bytes produced for it.
// With final set, a dangling escape capture fails with
// ErrUnterminatedEscape and the session is unusable until Reset; with
// final unset the partial capture carries over to the next Feed.
//
// Error offsets are rune offsets relative to this chunk.
func (s *EncoderSession) Feed(ctx context.Context, text string, final bool) ([]byte, error) {
	start := time.Now()
	out, err := encodeChunk(s.table, &s.state, text, final)
	emitEncodeComplete(ctx, utf8.RuneCountInString(text), len(out), time.Since(start), err)
	return out, err
}

// Reset returns the session to its initial state, clearing any error.
func (s *EncoderSession) Reset() {
	s.state.Reset()
	emitSessionReset(context.Background(), directionEncode)
}

// GetState serializes the exact mid-stream position as an opaque value.
func (s *EncoderSession) GetState() ([]byte, error) {
	data, err := msgpack.Marshal(&s.state)
	if err != nil {
		return nil, newStateError(err)
	}
	return data, nil
}

// SetState restores a position previously captured with GetState.
func (s *EncoderSession) SetState(data []byte) error {
	var st EncoderState
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return newStateError(err)
	}
	s.state = st
	emitSessionRestored(context.Background(), directionEncode)
	return nil
}

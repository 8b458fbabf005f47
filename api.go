// Package pretty renders a probably-ASCII byte stream as human-readable
// Unicode text and provides a lossy-but-bounded inverse back to bytes.
//
// Raw device traffic, serial ports especially, mixes printable ASCII
// with control bytes, bare CR/LF soup, and arbitrary 8-bit values. The
// pretty transform makes all of it visible: controls get Unicode picture
// glyphs (NUL renders as ␀, space as ·), bytes 128–255 render as a
// 2-hex-digit escape such as ˟c8, and every CR/LF run is shown glyph by
// glyph and then followed by exactly one real line break so the terminal
// still wraps.
//
// # Transforms
//
// Decode is total: every byte value 0–255 has exactly one glyph form and
// decoding can never fail. Encode walks pretty text back to bytes,
// interpreting escape sequences, collapsing newline representations to a
// single LF, and eliding breaks flagged by the continuation marker. For
// byte sequences without newline bytes, Encode(Decode(b)) == b.
//
//	text := pretty.Decode([]byte("A\x00 B"))   // "A␀·B"
//	raw, err := pretty.Encode(text)            // []byte("A\x00 B")
//
// # Sessions
//
// Incremental sessions carry transform state across chunk boundaries, so a
// live stream fed in arbitrary splits produces output identical to a
// one-shot call:
//
//	dec, _ := pretty.NewDecoderSession(pretty.DefaultOptions())
//	for chunk := range port {
//	    fmt.Print(dec.Feed(ctx, chunk))
//	}
//
// Sessions expose GetState/SetState snapshots for suspension and
// resumption, serialized as opaque MessagePack values.
//
// # Strict transforms
//
// The Substituter covers the other direction of tolerance: a strict ASCII
// transform that never fails, replacing each unmappable unit with a
// hex-escape substitution (uppercase on this path) and resuming in place.
// Use it when garbled-but-visible beats an error.
//
// # Streaming adapters
//
// NewDecodingTransformer and NewEncodingTransformer wrap the engine as
// golang.org/x/text/transform Transformers for use with transform.NewReader
// and transform.NewWriter on a port stream.
//
// # Configuration
//
// The escape prefix (default ˟) and continuation marker (default ↲) come
// from Options, which embedding applications may load from YAML via
// ParseOptions. The core never hardcodes either glyph.
package pretty

// Decode renders raw bytes as pretty text using the default options.
// It is a one-shot equivalent of feeding a fresh DecoderSession once.
func Decode(data []byte) string {
	var st DecoderState
	return decodeChunk(defaultTable, &st, data)
}

// DecodeWith renders raw bytes as pretty text using custom options.
func DecodeWith(opts Options, data []byte) (string, error) {
	t, err := tableFor(opts)
	if err != nil {
		return "", err
	}
	var st DecoderState
	return decodeChunk(t, &st, data), nil
}

// Encode turns pretty text back into bytes using the default options,
// treating the input as a complete stream.
func Encode(text string) ([]byte, error) {
	var st EncoderState
	return encodeChunk(defaultTable, &st, text, true)
}

// EncodeWith turns pretty text back into bytes using custom options.
func EncodeWith(opts Options, text string) ([]byte, error) {
	t, err := tableFor(opts)
	if err != nil {
		return nil, err
	}
	var st EncoderState
	return encodeChunk(t, &st, text, true)
}

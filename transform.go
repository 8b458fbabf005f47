package pretty

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// decodingTransformer adapts the byte→text engine to x/text's Transformer
// contract, for use with transform.NewReader over a port stream.
type decodingTransformer struct {
	table *Table
	state DecoderState
}

// NewDecodingTransformer returns a Transformer that rewrites raw bytes as
// pretty UTF-8 text. It never fails beyond the short-buffer signals of the
// transform package.
func NewDecodingTransformer(opts Options) (transform.Transformer, error) {
	t, err := tableFor(opts)
	if err != nil {
		return nil, err
	}
	return &decodingTransformer{table: t}, nil
}

func (d *decodingTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]

		// Size the emission before touching state so a short dst leaves
		// the byte unconsumed.
		glyph := d.table.toGlyph[b]
		isNewline := b == '\n' || b == '\r'
		need := len(glyph)
		if d.state.PrevNewline && !isNewline {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if d.state.PrevNewline && !isNewline {
			dst[nDst] = '\n'
			nDst++
		}
		d.state.PrevNewline = isNewline
		nDst += copy(dst[nDst:], glyph)
		nSrc++
	}
	return nDst, nSrc, nil
}

func (d *decodingTransformer) Reset() {
	d.state.Reset()
}

// encodingTransformer adapts the text→byte engine to x/text's Transformer
// contract, for use with transform.NewWriter toward a port.
type encodingTransformer struct {
	table *Table
	state EncoderState
	pos   int // rune offset across the whole stream, for error reporting
}

// NewEncodingTransformer returns a Transformer that rewrites pretty UTF-8
// text as raw bytes. Malformed escape or continuation syntax surfaces as
// an *EncodeError; offsets count runes from the start of the stream.
func NewEncodingTransformer(opts Options) (transform.Transformer, error) {
	t, err := tableFor(opts)
	if err != nil {
		return nil, err
	}
	return &encodingTransformer{table: t}, nil
}

func (e *encodingTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			return nDst, nSrc, newEncodeError(ErrUnmappableRune, e.pos, utf8.RuneError, e.state.EscapeBuffer)
		}

		// A rune emits at most one byte; require the space up front so
		// state never advances past output we could not write.
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		b, emitted, stepErr := e.table.encodeRune(&e.state, r)
		if stepErr != nil {
			return nDst, nSrc, newEncodeError(stepErr, e.pos, r, e.state.EscapeBuffer)
		}
		if emitted {
			dst[nDst] = b
			nDst++
		}
		nSrc += size
		e.pos++
	}
	if atEOF && e.state.EscapeRemaining > 0 {
		return nDst, nSrc, newEncodeError(ErrUnterminatedEscape, e.pos, 0, e.state.EscapeBuffer)
	}
	return nDst, nSrc, nil
}

func (e *encodingTransformer) Reset() {
	e.state.Reset()
	e.pos = 0
}

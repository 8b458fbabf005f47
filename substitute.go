package pretty

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecodeFailure identifies a byte range a strict decode could not map.
type DecodeFailure struct {
	Bytes []byte // Full input being decoded
	Start int    // First offending byte offset
	End   int    // One past the last offending byte
}

// EncodeFailure identifies a rune range a strict encode could not map.
type EncodeFailure struct {
	Text  string // Full input being encoded
	Start int    // First offending rune offset
	End   int    // One past the last offending rune
}

// Substituter replaces unmappable units with hex-escape text instead of
// failing, and reports how far the surrounding transform loop should
// resume. It never errors.
//
// Hex case differs by direction on purpose: byte substitutions are
// uppercase, while the pretty transform's escape forms are lowercase. Both
// parse back case-insensitively.
type Substituter struct {
	Prefix rune
}

// NewSubstituter builds a Substituter from validated options.
func NewSubstituter(opts Options) (*Substituter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	prefix, _ := utf8.DecodeRuneInString(opts.EscapePrefix)
	return &Substituter{Prefix: prefix}, nil
}

// ReplaceBytes returns the substitution text for a failed decode and the
// offset at which to resume. Every byte in the range contributes two
// uppercase hex digits after a single prefix.
func (s *Substituter) ReplaceBytes(f DecodeFailure) (string, int) {
	var sb strings.Builder
	sb.WriteRune(s.Prefix)
	sb.WriteString(strings.ToUpper(hex.EncodeToString(f.Bytes[f.Start:f.End])))
	return sb.String(), f.End
}

// ReplaceRunes returns the substitution bytes for a failed encode and the
// offset at which to resume. Runes below U+0100 become \xNN, runes below
// U+10000 become \uNNNN, and larger runes carry the prefix before eight
// hex digits. A non-ASCII prefix degrades to a literal 'x' since the
// output must stay ASCII.
//
// This is a rare path and is allowed to allocate freely.
func (s *Substituter) ReplaceRunes(f EncodeFailure) ([]byte, int) {
	prefix := "x"
	if s.Prefix < utf8.RuneSelf {
		prefix = string(s.Prefix)
	}
	var out []byte
	runes := []rune(f.Text)
	for _, r := range runes[f.Start:f.End] {
		switch {
		case r < 0x100:
			out = append(out, fmt.Sprintf(`\x%02x`, r)...)
		case r < 0x10000:
			out = append(out, fmt.Sprintf(`\u%04x`, r)...)
		default:
			out = append(out, fmt.Sprintf(`%s%08x`, prefix, r)...)
		}
	}
	return out, f.End
}

// DecodeASCII renders data as ASCII text, substituting the uppercase
// hex-escape form for every byte outside the 7-bit range. Valid ASCII
// passes through unchanged and substitutions preserve input order.
func (s *Substituter) DecodeASCII(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	substituted := 0
	for i := 0; i < len(data); {
		b := data[i]
		if b < 0x80 {
			sb.WriteByte(b)
			i++
			continue
		}
		rep, next := s.ReplaceBytes(DecodeFailure{Bytes: data, Start: i, End: i + 1})
		sb.WriteString(rep)
		substituted++
		i = next
	}
	if substituted > 0 {
		emitSubstitution(context.Background(), directionDecode, len(data), substituted)
	}
	return sb.String()
}

// EncodeASCII turns text into ASCII bytes, substituting a best-effort
// escape form for every rune outside the 7-bit range. It never fails.
func (s *Substituter) EncodeASCII(text string) []byte {
	out := make([]byte, 0, len(text))
	substituted := 0
	pos := 0
	for _, r := range text {
		if r < 0x80 {
			out = append(out, byte(r))
			pos++
			continue
		}
		rep, next := s.ReplaceRunes(EncodeFailure{Text: text, Start: pos, End: pos + 1})
		out = append(out, rep...)
		substituted++
		pos = next
	}
	if substituted > 0 {
		emitSubstitution(context.Background(), directionEncode, len(out), substituted)
	}
	return out
}

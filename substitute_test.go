package pretty

import (
	"bytes"
	"strings"
	"testing"
)

func newTestSubstituter(t *testing.T) *Substituter {
	t.Helper()
	s, err := NewSubstituter(DefaultOptions())
	if err != nil {
		t.Fatalf("NewSubstituter error: %v", err)
	}
	return s
}

func TestSubstituter_DecodeASCII(t *testing.T) {
	s := newTestSubstituter(t)

	in := append([]byte("this is a bad character: 0123456789"), 0x81)
	in = append(in, []byte("0123456789")...)

	got := s.DecodeASCII(in)

	if !strings.Contains(got, "this is a bad character:") {
		t.Errorf("valid text not preserved: %q", got)
	}
	if !strings.Contains(got, "0123456789˟810123456789") {
		t.Errorf("substitution missing or misplaced: %q", got)
	}
}

func TestSubstituter_DecodeASCII_Independence(t *testing.T) {
	s := newTestSubstituter(t)

	// Each unmappable byte substitutes independently, in order.
	got := s.DecodeASCII([]byte{'a', 0x81, 'b', 0xC8, 0xFF, 'c'})
	want := "a˟81b˟C8˟FFc"
	if got != want {
		t.Errorf("DecodeASCII = %q, want %q", got, want)
	}
}

func TestSubstituter_DecodeASCII_HexIsUppercase(t *testing.T) {
	s := newTestSubstituter(t)

	// The substitution path is uppercase; the pretty path stays lowercase.
	if got := s.DecodeASCII([]byte{0xC8}); got != "˟C8" {
		t.Errorf("DecodeASCII = %q, want %q", got, "˟C8")
	}
	if got := Decode([]byte{0xC8}); got != "˟c8" {
		t.Errorf("Decode = %q, want %q", got, "˟c8")
	}
}

func TestSubstituter_EncodeASCII(t *testing.T) {
	s := newTestSubstituter(t)

	got := s.EncodeASCII("this is a unicode string: 0123456789🐋0123456789")

	if !bytes.Contains(got, []byte("this is a unicode string")) {
		t.Errorf("valid text not preserved: %q", got)
	}
	// The default prefix is not ASCII, so the wide-rune form degrades to a
	// literal 'x' before eight hex digits.
	if !bytes.Contains(got, []byte("0123456789x0001f40b0123456789")) {
		t.Errorf("substitution missing or misplaced: %q", got)
	}
}

func TestSubstituter_ReplaceBytes_Range(t *testing.T) {
	s := newTestSubstituter(t)

	data := []byte{'a', 0x81, 0xC8, 'b'}
	rep, resume := s.ReplaceBytes(DecodeFailure{Bytes: data, Start: 1, End: 3})
	if rep != "˟81C8" {
		t.Errorf("replacement = %q, want %q", rep, "˟81C8")
	}
	if resume != 3 {
		t.Errorf("resume = %d, want 3", resume)
	}
}

func TestSubstituter_ReplaceRunes_Forms(t *testing.T) {
	tests := []struct {
		name   string
		prefix rune
		text   string
		want   string
	}{
		{"latin-1 rune", '˟', "é", `\xe9`},
		{"bmp rune", '˟', "ģ", `\u0123`},
		{"wide rune non-ascii prefix", '˟', "🐋", "x0001f40b"},
		{"wide rune ascii prefix", '#', "🐋", "#0001f40b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Substituter{Prefix: tt.prefix}
			runes := []rune(tt.text)
			rep, resume := s.ReplaceRunes(EncodeFailure{Text: tt.text, Start: 0, End: len(runes)})
			if string(rep) != tt.want {
				t.Errorf("replacement = %q, want %q", rep, tt.want)
			}
			if resume != len(runes) {
				t.Errorf("resume = %d, want %d", resume, len(runes))
			}
		})
	}
}

func TestSubstituter_NeverFails(t *testing.T) {
	s := newTestSubstituter(t)

	// All 256 byte values decode to something; all of Unicode encodes to
	// something. No panics, no errors to check.
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if got := s.DecodeASCII(all); got == "" {
		t.Error("DecodeASCII returned nothing")
	}

	if got := s.EncodeASCII("π ≈ 3.14159 🐋 ︙"); len(got) == 0 {
		t.Error("EncodeASCII returned nothing")
	}
}

func TestNewSubstituter_InvalidOptions(t *testing.T) {
	if _, err := NewSubstituter(Options{EscapePrefix: "", Continuation: "↲"}); err == nil {
		t.Error("expected error for empty prefix")
	}
}

package pretty

import (
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Options carries the two glyphs the embedding application may override:
// the escape prefix introducing a 2-hex-digit byte value, and the
// line-continuation marker that flags a transform-inserted line break.
type Options struct {
	EscapePrefix string `yaml:"escape_prefix"`
	Continuation string `yaml:"continuation"`
}

// DefaultOptions returns the glyphs serial-hunter ships with.
func DefaultOptions() Options {
	return Options{
		EscapePrefix: "˟",
		Continuation: "↲",
	}
}

// ParseOptions loads Options from YAML, filling omitted fields from
// DefaultOptions and validating the result.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, &OptionsError{Err: ErrInvalidOptions, Cause: err}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that both glyphs are usable: exactly one rune each,
// distinct from each other, and not colliding with any rune the mapping
// table or escape grammar already claims.
func (o Options) Validate() error {
	prefix, err := validateGlyph("escape_prefix", o.EscapePrefix)
	if err != nil {
		return err
	}
	continuation, err := validateGlyph("continuation", o.Continuation)
	if err != nil {
		return err
	}
	if prefix == continuation {
		return newOptionsError("continuation", o.Continuation, "must differ from escape_prefix")
	}
	return nil
}

func validateGlyph(field, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, newOptionsError(field, value, "must be exactly one rune")
	}
	r, _ := utf8.DecodeRuneInString(value)
	if reservedRune(r) {
		return 0, newOptionsError(field, value, "collides with a mapped glyph")
	}
	return r, nil
}

// reservedRune reports whether r already has a meaning in the mapping
// table: ASCII identity (which covers hex digits and raw newlines), a
// single-rune special glyph, or the tab companion.
func reservedRune(r rune) bool {
	if r < 0x80 {
		return true
	}
	if r == tabCompanion {
		return true
	}
	for _, g := range specialGlyphs {
		if utf8.RuneCountInString(g) == 1 {
			gr, _ := utf8.DecodeRuneInString(g)
			if gr == r {
				return true
			}
		}
	}
	return false
}

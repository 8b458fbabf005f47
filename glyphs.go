package pretty

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// escapeDigits is the number of hex digits in an escape form.
const escapeDigits = 2

// Glyphs emitted for the two newline bytes. Note: 0x0A renders as ␍ and
// 0x0D as ␊. The swap matches serial-hunter's historical table, and the
// encoder accepts either glyph as a newline.
const (
	lfGlyph = '␍' // emitted for 0x0A
	crGlyph = '␊' // emitted for 0x0D
)

// tabCompanion trails the literal tab in the tab glyph pair "\t→".
// It is cosmetic: the tab itself carries the byte on re-encoding.
const tabCompanion = '→'

// specialGlyphs overrides the ASCII identity mapping for bytes whose raw
// form is invisible or ambiguous on a terminal. Glyphs were chosen for
// compatibility with Cozette's character map.
var specialGlyphs = map[byte]string{
	0x00: "␀",
	0x08: "␈",
	0x09: "\t→",
	0x0A: string(lfGlyph),
	0x0B: "␋",
	0x0C: "␌",
	0x0D: string(crGlyph),
	0x0E: "␎",
	0x0F: "␏",
	0x1C: "␜",
	0x1D: "␝",
	0x1E: "␞",
	0x1F: "␟",
	0x20: "·",
	0x24: "␤",
	0x7F: "␡",
}

// Table holds the bidirectional byte↔glyph mapping for one Options pair.
// Tables are immutable after construction and safe for concurrent readers.
type Table struct {
	prefix       rune
	continuation rune
	toGlyph      [256]string
	fromGlyph    map[rune]byte
}

// newTable builds a Table for already-validated options.
//
// Layering order matters: the hex-escape form is the default for every
// byte value, ASCII identity overlays 0–127, and the special glyph set
// overlays both.
func newTable(opts Options) *Table {
	prefix, _ := utf8.DecodeRuneInString(opts.EscapePrefix)
	continuation, _ := utf8.DecodeRuneInString(opts.Continuation)

	t := &Table{
		prefix:       prefix,
		continuation: continuation,
		fromGlyph:    make(map[rune]byte, 128+len(specialGlyphs)),
	}

	for i := 0; i < 256; i++ {
		t.toGlyph[i] = fmt.Sprintf("%c%02x", prefix, i)
	}
	for i := 0; i < 128; i++ {
		t.toGlyph[i] = string(rune(i))
	}
	for b, g := range specialGlyphs {
		t.toGlyph[b] = g
	}

	// Inverse: single-rune special glyphs first, then ASCII identity so a
	// raw ASCII character always reconstructs its own byte. Multi-rune
	// forms (the tab pair, hex escapes) are parsed structurally by the
	// encoder instead.
	for b, g := range specialGlyphs {
		if utf8.RuneCountInString(g) == 1 {
			r, _ := utf8.DecodeRuneInString(g)
			t.fromGlyph[r] = b
		}
	}
	for i := 0; i < 128; i++ {
		t.fromGlyph[rune(i)] = byte(i)
	}

	return t
}

// Glyph returns the display form of one raw byte.
func (t *Table) Glyph(b byte) string {
	return t.toGlyph[b]
}

// Byte returns the raw byte for a single-rune glyph. The second return is
// false for runes that only appear inside escape sequences or have no
// mapping at all.
func (t *Table) Byte(r rune) (byte, bool) {
	b, ok := t.fromGlyph[r]
	return b, ok
}

// Built tables are cached per Options pair.
var (
	tables   = make(map[Options]*Table)
	tablesMu sync.RWMutex
)

// tableFor returns a cached Table for opts, building and caching one on
// first use. Options are validated before construction.
func tableFor(opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Fast path: read-lock cache check
	tablesMu.RLock()
	if cached, ok := tables[opts]; ok {
		tablesMu.RUnlock()
		return cached, nil
	}
	tablesMu.RUnlock()

	// Slow path: build and cache with write-lock
	tablesMu.Lock()
	defer tablesMu.Unlock()

	// Double-check pattern
	if cached, ok := tables[opts]; ok {
		return cached, nil
	}

	t := newTable(opts)
	tables[opts] = t
	return t, nil
}

// defaultTable backs the package-level one-shot API.
var defaultTable = newTable(DefaultOptions())

package testing

import (
	"bytes"
	"testing"
)

func TestByteChunks_Reassemble(t *testing.T) {
	data := SampleCapture()
	for _, n := range []int{1, 2, 5, len(data), len(data) * 2} {
		var joined []byte
		for _, c := range ByteChunks(data, n) {
			joined = append(joined, c...)
		}
		if !bytes.Equal(joined, data) {
			t.Errorf("n=%d: chunks do not reassemble", n)
		}
	}
}

func TestRuneChunks_NeverSplitsRunes(t *testing.T) {
	text := "a␀·˟c8↲\nb"
	for _, n := range []int{1, 2, 3} {
		var joined string
		for _, c := range RuneChunks(text, n) {
			joined += c
		}
		if joined != text {
			t.Errorf("n=%d: chunks do not reassemble: %q", n, joined)
		}
	}
}

func TestByteChunks_ZeroSize(t *testing.T) {
	chunks := ByteChunks([]byte("ab"), 0)
	if len(chunks) != 2 {
		t.Errorf("zero size should fall back to 1-byte chunks, got %d", len(chunks))
	}
}

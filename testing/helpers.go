// Package testing provides test utilities for the pretty codec.
package testing

// SampleCapture returns a realistic serial capture: printable ASCII mixed
// with control bytes, a CRLF pair, a bare LF run, and high bytes.
func SampleCapture() []byte {
	return []byte{
		'b', 'o', 'o', 't', ':', ' ', 'o', 'k', '\r', '\n',
		0x00, 0x1B, '[', '2', 'J',
		'v', '1', '.', '2', '\t', 'r', 'e', 'a', 'd', 'y',
		'\n', '\n',
		0x81, 0xC8, 0xFF,
		'e', 'n', 'd',
	}
}

// ByteChunks splits data into chunks of at most n bytes.
func ByteChunks(data []byte, n int) [][]byte {
	if n <= 0 {
		n = 1
	}
	var chunks [][]byte
	for len(data) > n {
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return append(chunks, data)
}

// RuneChunks splits text into chunks of at most n runes, never splitting
// inside a rune.
func RuneChunks(text string, n int) []string {
	if n <= 0 {
		n = 1
	}
	runes := []rune(text)
	var chunks []string
	for len(runes) > n {
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return append(chunks, string(runes))
}

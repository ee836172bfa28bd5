//go:build gofuzz

package ubjson

import "bytes"

// Fuzz is a go-fuzz entry point. This package has no encoder to
// round-trip through, so it only asserts the two properties that hold
// for any input: the decoder never panics, and a successful decode
// never reports having consumed more bytes than were given to it.
func Fuzz(data []byte) int {
	dec := NewDecoder(bytes.NewReader(data))
	var m Materializer
	err := dec.Decode(&m)
	if err != nil {
		return 0
	}
	if dec.Position() > int64(len(data)) {
		panic("ubjson: decode reported consuming more bytes than were given")
	}
	return 1
}

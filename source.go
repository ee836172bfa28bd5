package ubjson

import (
	"bufio"
	"io"
	"slices"
)

// source is a cursor over a bounded byte stream, wrapping a single
// *bufio.Reader with peek-without-consume: container framing must
// inspect the byte following `[`/`{` before deciding whether it is `$`,
// `#`, or the first element of an open-ended container.
type source struct {
	r   *bufio.Reader
	pos int64
	eof bool
}

func newSource(r io.Reader) *source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &source{r: br}
}

// peek returns the next byte without consuming it.
//
// ok is false at EOF.
func (s *source) peek() (b byte, ok bool) {
	buf, err := s.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			s.eof = true
		}
		return 0, false
	}
	return buf[0], true
}

// get consumes and returns one byte.
//
// ok is false at EOF.
func (s *source) get() (b byte, ok bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		s.eof = true
		return 0, false
	}
	s.pos++
	return b, true
}

// read appends exactly n bytes to out, growing it as needed.
//
// On a short read, the source is left in the EOF state and the returned
// slice holds whatever bytes were read.
func (s *source) read(n int, out []byte) ([]byte, bool) {
	if n == 0 {
		return out, true
	}
	// Grow out in bounded chunks as bytes arrive, so a large declared
	// length on a short stream never allocates more than it reads.
	const readChunk = 64 << 10
	start := len(out)
	for len(out)-start < n {
		l := len(out)
		chunk := min(n-(l-start), readChunk)
		out = slices.Grow(out, chunk)[:l+chunk]
		got, err := io.ReadFull(s.r, out[l:])
		s.pos += int64(got)
		if err != nil {
			s.eof = true
			return out[:l+got], false
		}
	}
	return out, true
}

// skip discards n bytes.
//
// On a short skip, the source is left in the EOF state.
func (s *source) skip(n int) bool {
	if n == 0 {
		return true
	}
	got, err := io.CopyN(io.Discard, s.r, int64(n))
	s.pos += got
	if err != nil {
		s.eof = true
		return false
	}
	return true
}

// isEOF reports the sticky end-of-input indicator.
func (s *source) isEOF() bool {
	return s.eof
}

// position returns the number of bytes consumed so far.
func (s *source) position() int64 {
	return s.pos
}

// Package ubjson is a streaming decoder for the Universal Binary JSON
// (UBJSON) format (https://ubjson.org).
//
// Use Decoder to drive an EventSink from a byte stream:
//
//	dec := ubjson.NewDecoder(r)
//	var m ubjson.Materializer
//	err := dec.Decode(&m)
//	v := m.Value() // v is any, representing the decoded UBJSON value
//
// The decoder never builds a value tree itself; it only emits events.
// Materializer is a built-in EventSink that does build a tree, for
// callers who just want a Go value back. Implement EventSink directly to
// validate, transcode, or otherwise consume the stream without paying
// for an intermediate tree.
//
// The following table summarizes how UBJSON types surface on
// Materializer's tree:
//
//	UBJSON             Go
//	------             --
//
//	Z (null)       ↔   nil
//	T / F          ↔   bool
//	i / I / l / L  ↔   int64
//	U              ↔   uint8
//	d / D          ↔   float64
//	C              ↔   string (length 1)
//	S              ↔   string
//	[ ]            ↔   []any
//	{ }            ↔   *ubjson.Object   (order-preserving string-keyed map)
//	H (integer)    ↔   *big.Int
//	H (decimal)    ↔   ubjson.BigDecimal
//
// # Container framing
//
// UBJSON arrays and objects come in three shapes: open-ended (terminated
// by `]`/`}`), count-only (`#N`, element types still per-element), and
// typed-and-counted (`$T #N`, no per-element marker, no terminator).
// Decoder handles all three transparently; EventSink.OnBeginArray and
// OnBeginObject receive the count when it is known, and the decoder
// enforces DecoderConfig.MaxDepth against unbounded nesting on untrusted
// input.
//
// # High-precision numbers
//
// UBJSON's H type carries an arbitrary-precision number as ASCII text
// without committing to integer-vs-decimal; Decoder classifies the
// payload with a one-pass scan (optional leading '-', then digits only,
// means integer) and reports the result via StringTag so a sink can
// decide how to represent it.
//
// # Errors
//
// Decode returns a *DecodeError carrying a Code from the taxonomy this
// package defines (unexpected EOF, an unrecognized type marker, a
// malformed length, a missing count after a typed-container header,
// excessive nesting, or a length above DecoderConfig.MaxLength) plus the
// byte position at which the problem was
// detected. A sink may also fail a Decode call by returning an error from
// any of its methods; that error is wrapped with Code == CodeSinkError
// and is available via errors.Unwrap.
package ubjson

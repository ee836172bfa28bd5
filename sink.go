package ubjson

// StringTag distinguishes the semantic flavor of a string-shaped event.
//
// A plain S string and a single C char both arrive untagged; an H
// high-precision number arrives tagged as either an arbitrary-precision
// integer or an arbitrary-precision decimal, depending on whether its
// payload parses as a plain digit string.
type StringTag int

const (
	// TagPlain marks a string produced by the C or S markers.
	TagPlain StringTag = iota
	// TagBigInt marks an H payload that parses as an optional '-'
	// followed only by digits.
	TagBigInt
	// TagBigDecimal marks an H payload that does not parse as TagBigInt.
	TagBigDecimal
)

// EventSink receives the semantic event stream produced by a Decoder.
//
// A Decoder never builds a value tree itself; it drives a sink instead,
// so the consumer, not the decoder, owns what happens with each event.
//
// Every method may return a non-nil error to halt decoding; the decoder
// propagates it from Decode wrapped in a *DecodeError with
// Code == CodeSinkError. A sink must not call back into the Decoder that
// is driving it. There is no OnFlush/end-of-stream method: a Decode call
// always decodes exactly one top-level value, so EventSink's last call
// for a successful decode is always an OnEnd*, OnNull, OnBool, OnInt,
// OnUint, OnDouble, or OnString.
type EventSink interface {
	OnNull() error
	OnBool(v bool) error
	OnInt(v int64) error
	OnUint(v uint8) error
	OnDouble(v float64) error
	OnString(s string, tag StringTag) error
	OnKey(key string) error

	// OnBeginArray/OnBeginObject receive the element count when the
	// container header declares one (a count-only or typed-and-counted
	// header), or (0, false) for an open-ended container.
	OnBeginArray(count int64, known bool) error
	OnEndArray() error
	OnBeginObject(count int64, known bool) error
	OnEndObject() error
}

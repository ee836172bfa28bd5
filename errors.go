package ubjson

import (
	"errors"
	"fmt"
)

// Code classifies the reason a Decode call failed.
//
// It mirrors the taxonomy a UBJSON reader can produce on its own; a sink
// may report any other code via the error it returns from an event
// method, in which case the decoder wraps it with CodeSinkError rather
// than inventing a new Code for it.
type Code int

const (
	// CodeUnknownError is the zero Code, a sentinel that matches none
	// of this package's own checks. The decoder does not return it: a
	// read error from the underlying reader, io.EOF or otherwise, is
	// reported as CodeUnexpectedEOF.
	CodeUnknownError Code = iota

	// CodeUnexpectedEOF means the stream ended before a declared length
	// or a fixed-width scalar could be fully read.
	CodeUnexpectedEOF

	// CodeUnknownType means a byte was read at a marker position that
	// does not match any UBJSON type marker.
	CodeUnknownType

	// CodeLengthMustBeInteger means a length marker was read that is
	// not one of i/U/I/l/L.
	CodeLengthMustBeInteger

	// CodeLengthCannotBeNegative means a signed length integer decoded
	// to a negative value.
	CodeLengthCannotBeNegative

	// CodeCountRequiredAfterType means a container's `$T` header was not
	// followed by `#`.
	CodeCountRequiredAfterType

	// CodeMaxDepthExceeded means nesting exceeded DecoderConfig.MaxDepth.
	CodeMaxDepthExceeded

	// CodeMaxLengthExceeded means a decoded length exceeded
	// DecoderConfig.MaxLength.
	CodeMaxLengthExceeded

	// CodeSinkError means the EventSink returned a non-nil error from
	// one of its event methods; Cause holds that error.
	CodeSinkError
)

func (c Code) String() string {
	switch c {
	case CodeUnexpectedEOF:
		return "unexpected_eof"
	case CodeUnknownType:
		return "unknown_type"
	case CodeLengthMustBeInteger:
		return "length_must_be_integer"
	case CodeLengthCannotBeNegative:
		return "length_cannot_be_negative"
	case CodeCountRequiredAfterType:
		return "count_required_after_type"
	case CodeMaxDepthExceeded:
		return "max_depth_exceeded"
	case CodeMaxLengthExceeded:
		return "max_length_exceeded"
	case CodeSinkError:
		return "sink_error"
	default:
		return "unknown_error"
	}
}

// sentinel errors, usable with errors.Is against a returned *DecodeError.
var (
	ErrUnexpectedEOF          = errors.New("ubjson: unexpected eof")
	ErrUnknownType            = errors.New("ubjson: unknown type marker")
	ErrLengthMustBeInteger    = errors.New("ubjson: length must be an integer marker")
	ErrLengthCannotBeNegative = errors.New("ubjson: length cannot be negative")
	ErrCountRequiredAfterType = errors.New("ubjson: count marker required after type marker")
	ErrMaxDepthExceeded       = errors.New("ubjson: maximum nesting depth exceeded")
	ErrMaxLengthExceeded      = errors.New("ubjson: decoded length exceeds configured maximum")
)

func sentinelFor(c Code) error {
	switch c {
	case CodeUnexpectedEOF:
		return ErrUnexpectedEOF
	case CodeUnknownType:
		return ErrUnknownType
	case CodeLengthMustBeInteger:
		return ErrLengthMustBeInteger
	case CodeLengthCannotBeNegative:
		return ErrLengthCannotBeNegative
	case CodeCountRequiredAfterType:
		return ErrCountRequiredAfterType
	case CodeMaxDepthExceeded:
		return ErrMaxDepthExceeded
	case CodeMaxLengthExceeded:
		return ErrMaxLengthExceeded
	default:
		return nil
	}
}

// DecodeError is the error value returned by Decoder.Decode on failure.
//
// It carries the byte position at which the failure was detected, so a
// caller can report where in the stream decoding went wrong.
type DecodeError struct {
	Code  Code
	Pos   int64
	Cause error // non-nil only for CodeSinkError
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ubjson: decode: %s at byte %d: %s", e.Code, e.Pos, e.Cause)
	}
	return fmt.Sprintf("ubjson: decode: %s at byte %d", e.Code, e.Pos)
}

func (e *DecodeError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return sentinelFor(e.Code)
}

// newDecodeError builds a *DecodeError for a decoder-detected failure.
func newDecodeError(code Code, pos int64) *DecodeError {
	return &DecodeError{Code: code, Pos: pos}
}

// newSinkError wraps an error returned by the EventSink.
func newSinkError(cause error, pos int64) *DecodeError {
	return &DecodeError{Code: CodeSinkError, Pos: pos, Cause: cause}
}

package ubjson

import (
	"encoding/binary"
	"io"
	"math"
)

// DefaultMaxDepth is the nesting-depth ceiling applied when
// DecoderConfig.MaxDepth is left at its zero value.
const DefaultMaxDepth = 512

// DecoderConfig tunes a Decoder.
type DecoderConfig struct {
	// MaxDepth bounds array/object nesting. Zero selects DefaultMaxDepth;
	// a negative value disables the guard entirely, which is not
	// recommended for untrusted input.
	MaxDepth int

	// MaxLength, if positive, caps any single decoded length (string,
	// blob, or container element count) against the purported value,
	// before any allocation proportional to it. Zero means no cap
	// beyond what the source can actually supply.
	MaxLength int64
}

func (c *DecoderConfig) maxDepth() int {
	if c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

// Decoder decodes a single UBJSON value from a byte stream, delivering a
// sequence of events to an EventSink.
//
// A Decoder is not safe for concurrent use: it is strictly single
// threaded, and owns its source cursor exclusively for the duration of
// a Decode call.
type Decoder struct {
	src    *source
	config *DecoderConfig
	sink   EventSink
	depth  int

	// scratch is a reusable buffer for string/blob payloads, to avoid
	// allocating a new one for every decoded string.
	scratch []byte
}

// NewDecoder constructs a Decoder reading from r with default configuration.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderWithConfig(r, &DecoderConfig{})
}

// NewDecoderWithConfig is like NewDecoder but allows tuning the decoder.
func NewDecoderWithConfig(r io.Reader, config *DecoderConfig) *Decoder {
	if config == nil {
		config = &DecoderConfig{}
	}
	return &Decoder{src: newSource(r), config: config}
}

// Position returns the byte offset at which the last byte was consumed.
func (d *Decoder) Position() int64 {
	return d.src.position()
}

// Column exists for callers migrating from line-oriented decoders;
// UBJSON is binary and carries no line structure, so Column always
// mirrors Position.
func (d *Decoder) Column() int64 {
	return d.src.position()
}

// Decode consumes one top-level UBJSON value from the stream, delivering
// events to sink. The stream is exactly one value; there is no top-level
// container requirement.
func (d *Decoder) Decode(sink EventSink) error {
	d.sink = sink
	d.depth = 0
	return d.decodeNext()
}

// decodeNext reads one marker byte and dispatches to decodeMarker. It is
// used at the top level and for every full (marker-prefixed) value
// inside a container.
func (d *Decoder) decodeNext() error {
	marker, ok := d.src.get()
	if !ok {
		return newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return d.decodeMarker(marker)
}

// decodeMarker dispatches on an already-read marker byte. It is also
// used for typed-homogeneous container elements, which carry no
// per-element marker of their own.
func (d *Decoder) decodeMarker(marker byte) error {
	switch marker {
	case markerNull:
		return d.sinkErr(d.sink.OnNull())

	case markerNoOp:
		return nil

	case markerTrue:
		return d.sinkErr(d.sink.OnBool(true))

	case markerFalse:
		return d.sinkErr(d.sink.OnBool(false))

	case markerInt8:
		v, err := d.readRawInt8()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnInt(int64(v)))

	case markerUint8:
		v, err := d.readRawUint8()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnUint(v))

	case markerInt16:
		v, err := d.readRawInt16()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnInt(int64(v)))

	case markerInt32:
		v, err := d.readRawInt32()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnInt(int64(v)))

	case markerInt64:
		v, err := d.readRawInt64()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnInt(v))

	case markerFloat32:
		v, err := d.readRawFloat32()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnDouble(float64(v)))

	case markerFloat64:
		v, err := d.readRawFloat64()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnDouble(v))

	case markerChar:
		// A char payload should be ASCII (0-127); bytes outside that
		// range are passed through rather than rejected, since no
		// error code in the taxonomy covers this case specifically.
		b, err := d.readRawUint8()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnString(string(rune(b)), TagPlain))

	case markerString:
		s, err := d.readPayloadString()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnString(s, TagPlain))

	case markerHighPrecision:
		s, err := d.readPayloadString()
		if err != nil {
			return err
		}
		return d.sinkErr(d.sink.OnString(s, classifyHighPrecision(s)))

	case markerBeginArray:
		return d.decodeArray()

	case markerBeginObject:
		return d.decodeObject()

	default:
		return newDecodeError(CodeUnknownType, d.src.position())
	}
}

// sinkErr wraps a non-nil error returned by the sink in a *DecodeError,
// and passes nil straight through.
func (d *Decoder) sinkErr(err error) error {
	if err == nil {
		return nil
	}
	return newSinkError(err, d.src.position())
}

// ---- scalar readers ----
//
// Each reads a fixed number of raw bytes and converts them with
// encoding/binary; UBJSON scalars are always big-endian (network byte
// order).

func (d *Decoder) readRawInt8() (int8, error) {
	b, err := d.readRawUint8()
	return int8(b), err
}

func (d *Decoder) readRawUint8() (uint8, error) {
	b, ok := d.src.get()
	if !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return b, nil
}

func (d *Decoder) readRawInt16() (int16, error) {
	var buf [2]byte
	if _, ok := d.src.read(2, buf[:0]); !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (d *Decoder) readRawInt32() (int32, error) {
	var buf [4]byte
	if _, ok := d.src.read(4, buf[:0]); !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *Decoder) readRawInt64() (int64, error) {
	var buf [8]byte
	if _, ok := d.src.read(8, buf[:0]); !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (d *Decoder) readRawFloat32() (float32, error) {
	var buf [4]byte
	if _, ok := d.src.read(4, buf[:0]); !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:])), nil
}

func (d *Decoder) readRawFloat64() (float64, error) {
	var buf [8]byte
	if _, ok := d.src.read(8, buf[:0]); !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

// readPayloadString decodes a length followed by exactly that many
// UTF-8 bytes, shared by S, H, and key decoding.
func (d *Decoder) readPayloadString() (string, error) {
	n, err := d.boundedLength()
	if err != nil {
		return "", err
	}
	d.scratch = d.scratch[:0]
	buf, ok := d.src.read(int(n), d.scratch)
	d.scratch = buf
	if !ok {
		return "", newDecodeError(CodeUnexpectedEOF, d.src.position())
	}
	return string(buf), nil
}

// classifyHighPrecision tags an H payload as a big integer or a big
// decimal via a one-pass ASCII scan: an optional leading '-' followed
// only by digits means integer; anything else means decimal.
func classifyHighPrecision(s string) StringTag {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i == len(s) {
		return TagBigDecimal
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return TagBigDecimal
		}
	}
	return TagBigInt
}

// ---- container framing ----

func (d *Decoder) enterContainer() error {
	d.depth++
	if max := d.config.maxDepth(); max > 0 && d.depth > max {
		return newDecodeError(CodeMaxDepthExceeded, d.src.position())
	}
	return nil
}

func (d *Decoder) leaveContainer() {
	d.depth--
}

// decodeArray decodes the three framing shapes an array can take after
// its opening `[`: typed-and-counted (`$T #N`), count-only (`#N`), and
// open-ended (terminated by `]`).
func (d *Decoder) decodeArray() error {
	if err := d.enterContainer(); err != nil {
		return err
	}
	defer d.leaveContainer()

	next, hasNext := d.src.peek()

	switch {
	case hasNext && next == markerContainerType:
		d.src.get()
		elemType, ok := d.src.get()
		if !ok {
			return newDecodeError(CodeUnexpectedEOF, d.src.position())
		}
		hashBang, ok := d.src.peek()
		if !ok || hashBang != markerContainerCount {
			return newDecodeError(CodeCountRequiredAfterType, d.src.position())
		}
		d.src.get()
		n, err := d.boundedLength()
		if err != nil {
			return err
		}
		if err := d.sinkErr(d.sink.OnBeginArray(n, true)); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			if err := d.decodeMarker(elemType); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndArray())

	case hasNext && next == markerContainerCount:
		d.src.get()
		n, err := d.boundedLength()
		if err != nil {
			return err
		}
		if err := d.sinkErr(d.sink.OnBeginArray(n, true)); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			if err := d.decodeNext(); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndArray())

	default:
		if err := d.sinkErr(d.sink.OnBeginArray(0, false)); err != nil {
			return err
		}
		for {
			b, ok := d.src.peek()
			if !ok {
				return newDecodeError(CodeUnexpectedEOF, d.src.position())
			}
			if b == markerEndArray {
				d.src.get()
				break
			}
			if b == markerNoOp {
				d.src.get()
				continue
			}
			if err := d.decodeNext(); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndArray())
	}
}

// decodeObject decodes the three framing shapes an object can take
// after its opening `{`: typed-and-counted (`$T #N`), count-only (`#N`),
// and open-ended (terminated by `}`).
func (d *Decoder) decodeObject() error {
	if err := d.enterContainer(); err != nil {
		return err
	}
	defer d.leaveContainer()

	next, hasNext := d.src.peek()

	switch {
	case hasNext && next == markerContainerType:
		d.src.get()
		elemType, ok := d.src.get()
		if !ok {
			return newDecodeError(CodeUnexpectedEOF, d.src.position())
		}
		hashBang, ok := d.src.peek()
		if !ok || hashBang != markerContainerCount {
			return newDecodeError(CodeCountRequiredAfterType, d.src.position())
		}
		d.src.get()
		n, err := d.boundedLength()
		if err != nil {
			return err
		}
		// A typed-and-counted object emits object events, not array
		// events, even though its header looks just like a typed
		// array's.
		if err := d.sinkErr(d.sink.OnBeginObject(n, true)); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			if err := d.decodeKey(); err != nil {
				return err
			}
			if err := d.decodeMarker(elemType); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndObject())

	case hasNext && next == markerContainerCount:
		// The `#` marker itself must be consumed before decoding the
		// length that follows it.
		d.src.get()
		n, err := d.boundedLength()
		if err != nil {
			return err
		}
		if err := d.sinkErr(d.sink.OnBeginObject(n, true)); err != nil {
			return err
		}
		for i := int64(0); i < n; i++ {
			if err := d.decodeKey(); err != nil {
				return err
			}
			if err := d.decodeNext(); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndObject())

	default:
		if err := d.sinkErr(d.sink.OnBeginObject(0, false)); err != nil {
			return err
		}
		for {
			b, ok := d.src.peek()
			if !ok {
				return newDecodeError(CodeUnexpectedEOF, d.src.position())
			}
			// An open-ended object terminates on `}`, not `]`.
			if b == markerEndObject {
				d.src.get()
				break
			}
			if b == markerNoOp {
				d.src.get()
				continue
			}
			if err := d.decodeKey(); err != nil {
				return err
			}
			if err := d.decodeNext(); err != nil {
				return err
			}
		}
		return d.sinkErr(d.sink.OnEndObject())
	}
}

// decodeKey reads an unlabelled length-prefixed UTF-8 string and
// delivers it to the sink as a key event.
func (d *Decoder) decodeKey() error {
	s, err := d.readPayloadString()
	if err != nil {
		return err
	}
	return d.sinkErr(d.sink.OnKey(s))
}

package ubjson

// readLength decodes a UBJSON-encoded non-negative integer length: one
// type marker from {i, U, I, l, L}, followed by a big-endian integer of
// the corresponding width.
func (d *Decoder) readLength() (int64, error) {
	marker, ok := d.src.get()
	if !ok {
		return 0, newDecodeError(CodeUnexpectedEOF, d.src.position())
	}

	switch marker {
	case markerInt8:
		v, err := d.readRawInt8()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, newDecodeError(CodeLengthCannotBeNegative, d.src.position())
		}
		return int64(v), nil

	case markerUint8:
		v, err := d.readRawUint8()
		if err != nil {
			return 0, err
		}
		return int64(v), nil

	case markerInt16:
		v, err := d.readRawInt16()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, newDecodeError(CodeLengthCannotBeNegative, d.src.position())
		}
		return int64(v), nil

	case markerInt32:
		v, err := d.readRawInt32()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, newDecodeError(CodeLengthCannotBeNegative, d.src.position())
		}
		return int64(v), nil

	case markerInt64:
		v, err := d.readRawInt64()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, newDecodeError(CodeLengthCannotBeNegative, d.src.position())
		}
		return v, nil

	default:
		return 0, newDecodeError(CodeLengthMustBeInteger, d.src.position())
	}
}

// boundedLength is readLength with the MaxLength cap applied.
func (d *Decoder) boundedLength() (int64, error) {
	n, err := d.readLength()
	if err != nil {
		return 0, err
	}
	if d.config.MaxLength > 0 && n > d.config.MaxLength {
		return 0, newDecodeError(CodeMaxLengthExceeded, d.src.position())
	}
	return n, nil
}

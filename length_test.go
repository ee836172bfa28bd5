package ubjson

import (
	"strings"
	"testing"
)

func newTestDecoder(data string) *Decoder {
	return NewDecoder(strings.NewReader(data))
}

func TestReadLengthWidths(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int64
	}{
		{"uint8", "U\xff", 255},
		{"int8 positive", "i\x7f", 127},
		{"int16", "I\x01\x00", 256},
		{"int32", "l\x00\x01\x00\x00", 65536},
		{"int64", "L\x00\x00\x00\x01\x00\x00\x00\x00", 1 << 32},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder(tt.data)
			d.config = &DecoderConfig{}
			got, err := d.readLength()
			if err != nil {
				t.Fatalf("readLength(): unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("readLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadLengthNegative(t *testing.T) {
	d := newTestDecoder("i\xff")
	d.config = &DecoderConfig{}
	_, err := d.readLength()
	assertCode(t, err, CodeLengthCannotBeNegative)
}

func TestReadLengthBadMarker(t *testing.T) {
	d := newTestDecoder("Z")
	d.config = &DecoderConfig{}
	_, err := d.readLength()
	assertCode(t, err, CodeLengthMustBeInteger)
}

func TestBoundedLengthWithinLimit(t *testing.T) {
	d := newTestDecoder("U\x04")
	d.config = &DecoderConfig{MaxLength: 10}
	got, err := d.boundedLength()
	if err != nil || got != 4 {
		t.Fatalf("boundedLength() = %d, %v, want 4, nil", got, err)
	}
}

func TestBoundedLengthExceedsLimit(t *testing.T) {
	d := newTestDecoder("U\x0a")
	d.config = &DecoderConfig{MaxLength: 4}
	_, err := d.boundedLength()
	assertCode(t, err, CodeMaxLengthExceeded)
}

func TestBoundedLengthZeroMeansUnbounded(t *testing.T) {
	d := newTestDecoder("L\x00\x00\x00\x00\x7f\xff\xff\xff")
	d.config = &DecoderConfig{}
	got, err := d.boundedLength()
	if err != nil || got != 0x7fffffff {
		t.Fatalf("boundedLength() = %d, %v, want 0x7fffffff, nil", got, err)
	}
}

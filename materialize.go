package ubjson

import (
	"fmt"
	"math/big"
)

// BigDecimal is the Go representation of a UBJSON H high-precision
// number whose payload did not parse as a plain integer.
//
// The payload is kept as the textual decimal it arrived as, rather than
// parsed further, since UBJSON's H type is host-language and precision
// agnostic and this package does not take on a decimal arithmetic
// dependency just to interpret it.
type BigDecimal string

// Materializer is the built-in tree-building EventSink. It drives an
// explicit value stack, with each End* call collapsing the stack down to
// the matching Begin*; every pushed value has type any.
//
// The zero value is ready to use.
type Materializer struct {
	frames []*buildFrame
	result any
	have   bool
}

type buildFrame struct {
	isObject bool
	arr      []any
	obj      *Object
	pendKey  string
	haveKey  bool
}

// Value returns the materialized value after a successful Decode.
func (m *Materializer) Value() any {
	return m.result
}

// Reset clears the materializer so it can be reused for another Decode.
func (m *Materializer) Reset() {
	m.frames = m.frames[:0]
	m.result = nil
	m.have = false
}

func (m *Materializer) push(v any) error {
	if len(m.frames) == 0 {
		if m.have {
			return fmt.Errorf("ubjson: materialize: unexpected extra top-level value")
		}
		m.result = v
		m.have = true
		return nil
	}
	top := m.frames[len(m.frames)-1]
	if top.isObject {
		if !top.haveKey {
			return fmt.Errorf("ubjson: materialize: object value without preceding key")
		}
		top.obj.Set(top.pendKey, v)
		top.haveKey = false
		return nil
	}
	top.arr = append(top.arr, v)
	return nil
}

func (m *Materializer) OnNull() error { return m.push(nil) }

func (m *Materializer) OnBool(v bool) error { return m.push(v) }

func (m *Materializer) OnInt(v int64) error { return m.push(v) }

func (m *Materializer) OnUint(v uint8) error { return m.push(v) }

func (m *Materializer) OnDouble(v float64) error { return m.push(v) }

func (m *Materializer) OnString(s string, tag StringTag) error {
	switch tag {
	case TagBigInt:
		n := new(big.Int)
		if _, ok := n.SetString(s, 10); !ok {
			return fmt.Errorf("ubjson: materialize: invalid high-precision integer %q", s)
		}
		return m.push(n)
	case TagBigDecimal:
		return m.push(BigDecimal(s))
	default:
		return m.push(s)
	}
}

func (m *Materializer) OnKey(key string) error {
	if len(m.frames) == 0 {
		return fmt.Errorf("ubjson: materialize: key outside of object")
	}
	top := m.frames[len(m.frames)-1]
	if !top.isObject {
		return fmt.Errorf("ubjson: materialize: key inside array")
	}
	top.pendKey = key
	top.haveKey = true
	return nil
}

// maxPreallocHint bounds the capacity preallocated from a declared
// container count, which comes straight from the input stream.
const maxPreallocHint = 1024

func (m *Materializer) OnBeginArray(count int64, known bool) error {
	prealloc := 0
	if known && count > 0 {
		prealloc = int(min(count, maxPreallocHint))
	}
	m.frames = append(m.frames, &buildFrame{arr: make([]any, 0, prealloc)})
	return nil
}

func (m *Materializer) OnEndArray() error {
	n := len(m.frames)
	if n == 0 || m.frames[n-1].isObject {
		return fmt.Errorf("ubjson: materialize: end-array without matching begin-array")
	}
	top := m.frames[n-1]
	m.frames = m.frames[:n-1]
	return m.push(top.arr)
}

func (m *Materializer) OnBeginObject(count int64, known bool) error {
	size := 0
	if known && count > 0 {
		size = int(min(count, maxPreallocHint))
	}
	m.frames = append(m.frames, &buildFrame{isObject: true, obj: NewObjectWithSizeHint(size)})
	return nil
}

func (m *Materializer) OnEndObject() error {
	n := len(m.frames)
	if n == 0 || !m.frames[n-1].isObject {
		return fmt.Errorf("ubjson: materialize: end-object without matching begin-object")
	}
	top := m.frames[n-1]
	m.frames = m.frames[:n-1]
	return m.push(top.obj)
}

var _ EventSink = (*Materializer)(nil)

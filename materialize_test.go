package ubjson

import (
	"math/big"
	"testing"
)

func TestMaterializerScalarValue(t *testing.T) {
	var m Materializer
	if err := m.OnInt(42); err != nil {
		t.Fatal(err)
	}
	if m.Value() != int64(42) {
		t.Errorf("Value() = %#v, want int64(42)", m.Value())
	}
}

func TestMaterializerRejectsSecondTopLevelValue(t *testing.T) {
	var m Materializer
	if err := m.OnNull(); err != nil {
		t.Fatal(err)
	}
	if err := m.OnBool(true); err == nil {
		t.Errorf("second top-level push: err = nil, want error")
	}
}

func TestMaterializerArrayNesting(t *testing.T) {
	var m Materializer
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(m.OnBeginArray(2, true))
	must(m.OnInt(1))
	must(m.OnBeginArray(0, false))
	must(m.OnInt(2))
	must(m.OnInt(3))
	must(m.OnEndArray())
	must(m.OnEndArray())

	want := []any{int64(1), []any{int64(2), int64(3)}}
	if !DeepEqual(m.Value(), want) {
		t.Errorf("Value() = %#v, want %#v", m.Value(), want)
	}
}

func TestMaterializerObjectRequiresKeyBeforeValue(t *testing.T) {
	var m Materializer
	if err := m.OnBeginObject(0, false); err != nil {
		t.Fatal(err)
	}
	if err := m.OnInt(1); err == nil {
		t.Errorf("value without key: err = nil, want error")
	}
}

func TestMaterializerObjectBuilds(t *testing.T) {
	var m Materializer
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(m.OnBeginObject(1, true))
	must(m.OnKey("a"))
	must(m.OnInt(7))
	must(m.OnEndObject())

	obj, ok := m.Value().(*Object)
	if !ok {
		t.Fatalf("Value() type = %T, want *Object", m.Value())
	}
	v, ok := obj.Get("a")
	if !ok || v != int64(7) {
		t.Errorf("Get(a) = %v, %v, want 7, true", v, ok)
	}
}

func TestMaterializerKeyOutsideObjectRejected(t *testing.T) {
	var m Materializer
	if err := m.OnKey("a"); err == nil {
		t.Errorf("OnKey at top level: err = nil, want error")
	}
}

func TestMaterializerEndWithoutBeginRejected(t *testing.T) {
	var m Materializer
	if err := m.OnEndArray(); err == nil {
		t.Errorf("OnEndArray without OnBeginArray: err = nil, want error")
	}
	if err := m.OnEndObject(); err == nil {
		t.Errorf("OnEndObject without OnBeginObject: err = nil, want error")
	}
}

func TestMaterializerHighPrecisionTagging(t *testing.T) {
	var m Materializer
	if err := m.OnString("-42", TagBigInt); err != nil {
		t.Fatal(err)
	}
	bi, ok := m.Value().(*big.Int)
	if !ok || bi.Cmp(big.NewInt(-42)) != 0 {
		t.Errorf("Value() = %#v, want *big.Int(-42)", m.Value())
	}

	m.Reset()
	if err := m.OnString("3.14", TagBigDecimal); err != nil {
		t.Fatal(err)
	}
	if m.Value() != BigDecimal("3.14") {
		t.Errorf("Value() = %#v, want BigDecimal(3.14)", m.Value())
	}
}

func TestMaterializerInvalidBigIntPayload(t *testing.T) {
	var m Materializer
	if err := m.OnString("not-a-number", TagBigInt); err == nil {
		t.Errorf("invalid TagBigInt payload: err = nil, want error")
	}
}

func TestMaterializerReset(t *testing.T) {
	var m Materializer
	if err := m.OnInt(1); err != nil {
		t.Fatal(err)
	}
	m.Reset()
	if m.Value() != nil {
		t.Errorf("Value() after Reset = %#v, want nil", m.Value())
	}
	if err := m.OnInt(2); err != nil {
		t.Fatal(err)
	}
	if m.Value() != int64(2) {
		t.Errorf("Value() after reuse = %#v, want 2", m.Value())
	}
}

package ubjson

import (
	"strings"
	"testing"
)

func TestCounterTalliesEventsByKind(t *testing.T) {
	dec := NewDecoder(strings.NewReader("[Zi\x01U\x01TFd\x00\x00\x00\x00SU\x01x]"))
	var c Counter
	if err := dec.Decode(&c); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if c.Arrays != 1 {
		t.Errorf("Arrays = %d, want 1", c.Arrays)
	}
	if c.Nulls != 1 {
		t.Errorf("Nulls = %d, want 1", c.Nulls)
	}
	if c.Ints != 1 {
		t.Errorf("Ints = %d, want 1", c.Ints)
	}
	if c.Uints != 1 {
		t.Errorf("Uints = %d, want 1", c.Uints)
	}
	if c.Bools != 2 {
		t.Errorf("Bools = %d, want 2", c.Bools)
	}
	if c.Doubles != 1 {
		t.Errorf("Doubles = %d, want 1", c.Doubles)
	}
	if c.Strings != 1 {
		t.Errorf("Strings = %d, want 1", c.Strings)
	}
}

func TestCounterTracksMaxDepth(t *testing.T) {
	dec := NewDecoder(strings.NewReader("[[[Z]]]"))
	var c Counter
	if err := dec.Decode(&c); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if c.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", c.MaxDepth)
	}
	if c.Arrays != 3 {
		t.Errorf("Arrays = %d, want 3", c.Arrays)
	}
}

func TestCounterObjects(t *testing.T) {
	dec := NewDecoder(strings.NewReader("{U\x01ai\x01}"))
	var c Counter
	if err := dec.Decode(&c); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if c.Objects != 1 {
		t.Errorf("Objects = %d, want 1", c.Objects)
	}
	if c.Keys != 1 {
		t.Errorf("Keys = %d, want 1", c.Keys)
	}
}

package ubjson

import (
	"math/big"
	"reflect"
)

// DeepEqual is like reflect.DeepEqual but also supports values
// materialized by Materializer, namely *Object and *big.Int.
//
// It is needed because reflect.DeepEqual considers two Objects not-equal
// even when they hold the same members in the same order, since each
// Object's underlying gomap.Map is built with its own random seed. It
// recurses into []any and *Object values so a *Object nested inside a
// decoded array or another object still compares correctly, not just a
// top-level one.
func DeepEqual(a, b any) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok {
			return false
		}
		return objectEqual(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *big.Int:
		bv, ok := b.(*big.Int)
		if !ok {
			return false
		}
		return av.Cmp(bv) == 0
	default:
		return reflect.DeepEqual(a, b)
	}
}

func objectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	if !reflect.DeepEqual(a.Keys(), b.Keys()) {
		return false
	}
	eq := true
	a.Iter()(func(k string, va any) bool {
		vb, ok := b.Get(k)
		if !ok || !DeepEqual(va, vb) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

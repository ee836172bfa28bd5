package ubjson

import (
	"fmt"
	"hash/maphash"
	"sort"

	"github.com/aristanetworks/gomap"
)

// Object is an order-preserving string-keyed map representing a decoded
// UBJSON object.
//
// A UBJSON object key is always a plain UTF-8 string, so Object needs no
// cross-type equality or hashing machinery, only a plain string compare
// and hash passed to the underlying github.com/aristanetworks/gomap
// store. Object additionally tracks insertion order explicitly, since
// UBJSON object members have a meaningful wire order a materialized
// value should preserve.
type Object struct {
	m    *gomap.Map[string, any]
	keys []string
}

// NewObject returns a new empty Object.
func NewObject() *Object {
	return NewObjectWithSizeHint(0)
}

// NewObjectWithSizeHint returns a new empty Object with preallocated
// space for size members, mirroring the decoded element count of a
// counted object header.
func NewObjectWithSizeHint(size int) *Object {
	if size < 0 {
		size = 0
	}
	return &Object{
		m:    gomap.NewHint[string, any](size, stringEqual, stringHash),
		keys: make([]string, 0, size),
	}
}

// Get returns the value associated with key, and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Set associates key with value, appending key to the iteration order
// the first time it is seen. A later UBJSON duplicate key overwrites the
// value but keeps the original position, matching how a Go map would
// behave under repeated assignment.
func (o *Object) Set(key string, value any) {
	if _, exists := o.m.Get(key); !exists {
		o.keys = append(o.keys, key)
	}
	o.m.Set(key, value)
}

// Len returns the number of members in the object.
func (o *Object) Len() int {
	return o.m.Len()
}

// Keys returns the member names in wire order.
func (o *Object) Keys() []string {
	return o.keys
}

// Iter returns an iterator over all members in wire order.
func (o *Object) Iter() func(yield func(key string, value any) bool) {
	return func(yield func(key string, value any) bool) {
		for _, k := range o.keys {
			v, _ := o.m.Get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// String returns a human-readable representation in wire order.
func (o *Object) String() string {
	s := "{"
	for i, k := range o.keys {
		if i > 0 {
			s += ", "
		}
		v, _ := o.m.Get(k)
		s += fmt.Sprintf("%q: %v", k, v)
	}
	s += "}"
	return s
}

// sortedKeys returns the member names in lexical order, independent of
// wire order. Nothing in the package calls it at present.
func (o *Object) sortedKeys() []string {
	ks := append([]string(nil), o.keys...)
	sort.Strings(ks)
	return ks
}

func stringEqual(a, b string) bool { return a == b }

func stringHash(seed maphash.Seed, s string) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(s)
	return h.Sum64()
}

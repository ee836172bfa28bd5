//go:build gofuzz

package ubjson

import (
	"crypto/sha1"
	"fmt"
	"os"
	"testing"
)

// fuzzSeeds holds a handful of valid UBJSON byte strings covering each
// container framing shape and scalar marker, used to seed fuzz/corpus.
var fuzzSeeds = []string{
	"Z", "T", "F", "i\x01", "U\xff", "I\x01\x00",
	"l\x00\x00\x01\x00", "L\x00\x00\x00\x00\x00\x00\x01\x00",
	"d\x3f\x80\x00\x00", "D\x3f\xf0\x00\x00\x00\x00\x00\x00",
	"CA", "SU\x05hello", "HU\x02-7", "HU\x031.5",
	"[]", "[i\x01i\x02]", "[#U\x02i\x01i\x02", "[$i#U\x03\x01\x02\x03",
	"{}", "{U\x01ai\x01}", "{#U\x01U\x01ai\x01", "{$i#U\x01U\x01a\x01",
}

// TestFuzzGenerate writes fuzzSeeds into fuzz/corpus as a go-fuzz seed
// corpus. It is not itself a correctness test; like Fuzz it is built
// only under the gofuzz build tag (go test -tags gofuzz).
func TestFuzzGenerate(t *testing.T) {
	if err := os.MkdirAll("fuzz/corpus", 0777); err != nil {
		t.Fatal(err)
	}
	for _, seed := range fuzzSeeds {
		name := fmt.Sprintf("fuzz/corpus/seed-%x.ubjson", sha1.Sum([]byte(seed)))
		if err := os.WriteFile(name, []byte(seed), 0666); err != nil {
			t.Fatal(err)
		}
	}
}

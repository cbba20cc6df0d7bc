// Package seedgen expands a short caller-supplied key into the long
// pseudorandom bit vectors the extractor packages' tests (and Trevisan
// callers who only have a short key) need, the way a collective CRS
// generator expands a shared seed with a keyed XOF.
package seedgen

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// ExpandSeed deterministically expands key into n bits using blake2b
// as a keyed XOF, one counter-indexed block at a time, mirroring
// dbfv's collective-CRS generator.
func ExpandSeed(key []byte, n int) []int {
	return expand(key, n, func(counter uint64) []byte {
		h, err := blake2b.New256(key)
		if err != nil {
			panic("seedgen: blake2b keyed hash rejected key: " + err.Error())
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], counter)
		h.Write(buf[:])
		return h.Sum(nil)
	})
}

// ExpandSource expands key into n bits using blake3, kept on a
// separate hash family from ExpandSeed so that a test deriving both a
// source and a seed from related keys never correlates them through a
// shared PRNG state.
func ExpandSource(key []byte, n int) []int {
	return expand(key, n, func(counter uint64) []byte {
		h := blake3.New()
		h.Write(key)
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], counter)
		h.Write(buf[:])
		return h.Sum(nil)
	})
}

func expand(key []byte, n int, block func(counter uint64) []byte) []int {
	out := make([]int, n)
	var counter uint64
	pos := 0
	for pos < n {
		digest := block(counter)
		counter++
		for _, b := range digest {
			for bit := 0; bit < 8 && pos < n; bit++ {
				out[pos] = int((b >> uint(bit)) & 1)
				pos++
			}
		}
	}
	return out
}

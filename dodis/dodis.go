// Package dodis implements the Dodis et al. two-source extractor, built
// on the cyclic-shift-matrix construction of Forecast (2020/2024): two
// n-bit inputs, n prime with primitive root 2, combined via one cyclic
// convolution of the NTT kernel and reduced mod 2.
package dodis

import (
	"fmt"
	"math"

	"github.com/CQCL/cryptomite/internal/xmath"
	"github.com/CQCL/cryptomite/ntt"
	"github.com/CQCL/cryptomite/numtheory"
)

// AdjustedParams reports the input lengths and min-entropies FromParams
// actually used after snapping n to a valid na_set prime, alongside the
// derived output length.
type AdjustedParams struct {
	N      int
	M      int
	K1, K2 float64
}

// Extractor is a configured Dodis two-source extractor for a fixed input
// length n (prime, with 2 a primitive root mod n) and output length m.
type Extractor struct {
	N, M int
}

// New builds a Dodis extractor for input length n and output length m.
// n should be prime with primitive root 2 (na_set) for the extractor
// to have its proven guarantees, but, mirroring the reference
// construction, New does not itself verify this; it only panics if
// n < m.
func New(n, m int) *Extractor {
	if n < m {
		panic(fmt.Sprintf("dodis: n=%d must be >= m=%d", n, m))
	}
	return &Extractor{N: n, M: m}
}

// bitLength returns the number of bits needed to represent n, i.e. the
// smallest l such that 2^l > n.
func bitLength(n int) int {
	l := 0
	size := 1
	for size <= n {
		size <<= 1
		l++
	}
	return l
}

// Extract runs the Dodis extractor on two length-n bit sequences,
// returning m output bits.
func (e *Extractor) Extract(input1, input2 []int) []int {
	n, m := e.N, e.M
	if len(input1) != n || len(input2) != n {
		panic("dodis: both inputs must have length n")
	}

	l := bitLength(2*n - 2)
	L := 1 << uint(l)

	a := make([]uint64, L)
	a[0] = uint64(input1[0])
	for i := 1; i < n; i++ {
		a[i] = uint64(input1[n-i])
	}
	b := make([]uint64, L)
	for i, x := range input2 {
		b[i] = uint64(x)
	}

	c := ntt.NewContext(l)
	conv := c.Conv(a, b)

	out := make([]int, m)
	for i := 0; i < m; i++ {
		out[i] = int((conv[i] + conv[i+n]) & 1)
	}
	return out
}

// FromParams derives a Dodis extractor from entropy/error targets,
// snapping n to the nearest na_set prime not exceeding min(n1, n2) and
// adjusting the min-entropies for the amount each source is truncated.
func FromParams(n1 int, k1 float64, n2 int, k2 float64, log2Error float64, qProof bool) (*Extractor, AdjustedParams) {
	if log2Error > 0 {
		panic("dodis: log2_error must be <= 0")
	}

	n := numtheory.ClosestNASetNotExceeding(int64(xmath.Min(n1, n2)))
	nAdjusted := int(n)

	k1Adjusted := k1 - math.Max(0, float64(n1-nAdjusted))
	k2Adjusted := k2 - math.Max(0, float64(n2-nAdjusted))

	var m int
	if qProof {
		m = int(math.Floor(0.2*(k1Adjusted+k2Adjusted-float64(nAdjusted)) +
			8*log2Error + 9 - 4*math.Log2(3)))
	} else {
		m = int(math.Floor(k1Adjusted + k2Adjusted - float64(nAdjusted) + 1 + 2*log2Error))
	}

	if m <= 0 {
		panic("dodis: cannot extract with these parameters; increase k1, k2, or log2_error")
	}

	return New(nAdjusted, m), AdjustedParams{N: nAdjusted, M: m, K1: k1Adjusted, K2: k2Adjusted}
}

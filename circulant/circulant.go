// Package circulant implements the Circulant two-source extractor: the
// Dodis cyclic-shift-matrix construction specialised to inputs of
// length n1 and n1+1, padding the shorter input with a single zero.
package circulant

import (
	"fmt"
	"math"

	"github.com/CQCL/cryptomite/ntt"
	"github.com/CQCL/cryptomite/numtheory"
)

// Extractor is a configured Circulant extractor for a fixed first-input
// length n1 (with n = n1+1 prime) and output length m.
type Extractor struct {
	N1, M int
	n     int
}

// New builds a Circulant extractor for a first input of length n1 and
// output length m. n1+1 should be prime for the extractor to have its
// proven guarantees, but, mirroring the reference construction, New
// does not itself verify this; it only panics if n1 < m.
func New(n1, m int) *Extractor {
	if n1 < m {
		panic(fmt.Sprintf("circulant: n1=%d must be >= m=%d", n1, m))
	}
	return &Extractor{N1: n1, M: m, n: n1 + 1}
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

// Extract runs the Circulant extractor on an n1-bit first input and an
// (n1+1)-bit second input, returning m output bits.
func (e *Extractor) Extract(input1, input2 []int) []int {
	n1, n, m := e.N1, e.n, e.M
	if len(input1) != n1 {
		panic("circulant: input1 must have length n1")
	}
	if len(input2) != n {
		panic("circulant: input2 must have length n1+1")
	}

	padded1 := make([]int, n)
	copy(padded1, input1)
	padded1[n1] = 0

	l := bitLength(2*n - 2)
	L := 1 << uint(l)

	a := make([]uint64, L)
	a[0] = uint64(padded1[0])
	for i := 1; i < n; i++ {
		a[i] = uint64(padded1[n-i])
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

// AdjustedParams reports the input lengths and min-entropies FromParams
// actually used after snapping n1+1 to a prime, alongside the derived
// output length.
type AdjustedParams struct {
	N1     int
	M      int
	K1, K2 float64
}

// FromParams derives a Circulant extractor from entropy/error targets,
// snapping n = n1+1 to the prime closest to the average of n1 and n2
// and adjusting the min-entropies for the amount each source is
// truncated. The output length is the same whether or not
// quantum-proof security is required, so q_proof has no effect on m;
// it is accepted for interface symmetry with the other extractors.
func FromParams(n1 int, k1 float64, n2 int, k2 float64, log2Error float64, qProof bool) (*Extractor, AdjustedParams) {
	if log2Error > 0 {
		panic("circulant: log2_error must be <= 0")
	}

	n := numtheory.ClosestPrime(int64((n1 + n2) / 2))
	nAdjusted := int(n)
	n1Adjusted := nAdjusted - 1

	k1Adjusted := k1 - math.Max(0, float64(n1-n1Adjusted))
	k2Adjusted := k2 - math.Max(0, float64(n2-nAdjusted))

	m := int(math.Floor(k1Adjusted + (k2Adjusted - float64(nAdjusted)) + 2*log2Error))
	if m <= 0 {
		panic("circulant: cannot extract with these parameters; increase k1, k2, or log2_error")
	}

	return New(n1Adjusted, m), AdjustedParams{N1: n1Adjusted, M: m, K1: k1Adjusted, K2: k2Adjusted}
}

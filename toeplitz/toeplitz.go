// Package toeplitz implements the Toeplitz seeded extractor: an
// n-bit input and an (n+m-1)-bit seed, combined via Toeplitz-matrix
// multiplication realised as a linear convolution embedded in a cyclic
// one of the NTT kernel.
package toeplitz

import (
	"fmt"
	"math"

	"github.com/CQCL/cryptomite/ntt"
)

// Extractor is a configured Toeplitz extractor for a fixed input length
// n and output length m.
type Extractor struct {
	N, M int
}

// New builds a Toeplitz extractor. It panics if n < m.
func New(n, m int) *Extractor {
	if n < m {
		panic(fmt.Sprintf("toeplitz: n=%d must be >= m=%d", n, m))
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

// Extract runs the Toeplitz extractor on an n-bit input and an
// (n+m-1)-bit seed, returning m output bits.
func (e *Extractor) Extract(input1, input2 []int) []int {
	n, m := e.N, e.M
	if len(input1) != n {
		panic("toeplitz: input1 must have length n")
	}
	if len(input2) != n+m-1 {
		panic("toeplitz: input2 must have length n+m-1")
	}

	l := bitLength(2 * n)
	L := 1 << uint(l)

	a := make([]uint64, L)
	for i, x := range input1 {
		a[i] = uint64(x)
	}

	b := make([]uint64, L)
	for i := 0; i < m; i++ {
		b[i] = uint64(input2[i])
	}
	tailStart := L - (n - 1)
	for i := m; i < len(input2); i++ {
		b[tailStart+(i-m)] = uint64(input2[i])
	}

	c := ntt.NewContext(l)
	conv := c.Conv(a, b)

	out := make([]int, m)
	for i := 0; i < m; i++ {
		out[i] = int(conv[i] & 1)
	}
	return out
}

// AdjustedParams reports the input lengths FromParams actually used,
// alongside the derived output length.
type AdjustedParams struct {
	N1, N2 int
	M      int
}

// FromParams derives a Toeplitz extractor from entropy/error targets,
// requiring n2 > n1 and fixing n2 = n1 + m - 1 for the largest m the
// error bound allows. q_proof does not affect Toeplitz's output-length
// formula; it is accepted for interface symmetry with the other
// extractors' FromParams.
func FromParams(n1 int, k1 float64, n2 int, k2 float64, log2Error float64, qProof bool) (*Extractor, AdjustedParams) {
	if log2Error > 0 {
		panic("toeplitz: log2_error must be <= 0")
	}
	if n2 <= n1 {
		panic("toeplitz: n2 must be > n1; increase the seed length")
	}

	mMax := int(math.Floor(k1 + k2 - float64(n2) + 2*log2Error))
	if mMax <= 0 {
		panic("toeplitz: cannot extract with these parameters; increase k1, k2, or log2_error")
	}

	n2Adjusted := n1 + mMax - 1
	return New(n1, mMax), AdjustedParams{N1: n1, N2: n2Adjusted, M: mMax}
}

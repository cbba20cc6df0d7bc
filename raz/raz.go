// Package raz implements the Raz two-source extractor over GF(2^n),
// built on the shared NTT kernel's fused raz_iteration operation.
package raz

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/CQCL/cryptomite/internal/xmath"
	"github.com/CQCL/cryptomite/ntt"
)

// Trinomials lists the known irreducible trinomials x^n + x^s + 1 over
// GF(2), keyed by n. It is a fixed read-only table.
var Trinomials = map[int]int{
	3:        1,
	7:        1,
	15:       1,
	31:       3,
	63:       1,
	127:      7,
	255:      52,
	521:      32,
	1279:     216,
	2281:     715,
	3217:     67,
	4423:     271,
	23209:    1530,
	44497:    8575,
	110503:   25230,
	132049:   7000,
	756839:   279695,
	859433:   170340,
	3021377:  361604,
	6972593:  3037958,
	24036583: 8412642,
	25964951: 880890,
	30402457: 2162059,
	32582657: 5110722,
	42643801: 55981,
	43112609: 3569337,
	74207281: 9156813,
}

// Extractor is a configured Raz extractor for first-input length n1
// (split into two GF(2^n) elements, n = n1/2) and output length m.
type Extractor struct {
	N1, M int
	n     int
	s     int
	logp  int
	ctx   *ntt.Context
}

// New builds a Raz extractor. n1 need not be even; n = n1/2 truncates.
// trinomial, if non-zero, overrides the shipped table entry for
// x^n + x^s + 1; the library never verifies irreducibility. It panics
// if m exceeds n1/2 and returns an UnsupportedConfiguration-style error
// if n has no known trinomial.
func New(n1, m int, trinomial int) (*Extractor, error) {
	n := n1 / 2
	if m > n {
		panic("raz: m must be <= n1/2")
	}

	s := trinomial
	if s == 0 {
		var ok bool
		s, ok = Trinomials[n]
		if !ok {
			return nil, fmt.Errorf("raz: GF(2^%d) has no known irreducible trinomial; supply one explicitly", n)
		}
	}

	logp := bitLength(n) + 1

	return &Extractor{
		N1:   n1,
		M:    m,
		n:    n,
		s:    s,
		logp: logp,
		ctx:  ntt.NewContext(logp),
	}, nil
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

func (e *Extractor) padTo(v []int, total int) []uint64 {
	out := make([]uint64, total)
	for i, x := range v {
		out[i] = uint64(x)
	}
	return out
}

func (e *Extractor) gfMul(x, y []uint64) []uint64 {
	return e.ctx.ConvAndReduce(x, y, e.n, e.s)
}

// Extract runs the Raz extractor. input1 must have length >= 2*n and
// input2 length in (0, n], where n = n1/2.
func (e *Extractor) Extract(input1, input2 []int) []int {
	n := e.n
	if len(input1) < 2*n {
		panic("raz: input1 too short")
	}
	if len(input2) <= 0 || len(input2) > n {
		panic("raz: input2 length must be in (0, n]")
	}

	L := e.ctx.L

	x1 := e.padTo(input1[0:n], L)
	x2 := e.padTo(input1[n:2*n], L)
	y := e.padTo(input2, L)

	delta := e.gfMul(y, x1)
	product := make([]uint64, L)
	copy(product, delta)
	product[0] ^= 1

	for i := 1; i < e.logp; i++ {
		product, delta = e.ctx.RazIteration(product, delta, n, e.s)
	}

	out := e.gfMul(product, x2)
	result := make([]int, e.M)
	for i := range result {
		result[i] = int(out[i])
	}
	return result
}

// bigLog2 computes log2(x) to big.Float precision, used where p can
// range up to 2^62 and float64's mantissa is not enough to keep the
// search from spuriously flattening out near that magnitude.
func bigLog2(x float64) float64 {
	bx := new(big.Float).SetPrec(128).SetFloat64(x)
	ln2 := bigfloat.Log(new(big.Float).SetPrec(128).SetInt64(2))
	result := new(big.Float).Quo(bigfloat.Log(bx), ln2)
	f, _ := result.Float64()
	return f
}

// log2ErrorRaz computes the error bound of [Fore2025] for given n1, k1,
// k2, m, l (= log2 p') and p.
func log2ErrorRaz(n1 int, k1, k2 float64, m, l, p int) float64 {
	fn1 := float64(n1)
	fp := float64(p)
	logGamma := (fn1-k1)/fp + math.Max((float64(l)-fn1/2+1)/fp, bigLog2(fp)-k2/2) + 1
	return logGamma + float64(m)/2
}

// optErrorRaz searches (l, p) for the minimum achievable log2 error for
// a given output length m, using a coarse grid by default and a finer
// one when detailed is true,
func optErrorRaz(n1 int, k1 float64, n2 int, k2 float64, m int, detailed bool) float64 {
	lMax := n2 + int(math.Floor(math.Log2(float64(n1)/2)))
	minLog2Error := 0.0

	maxTests := 1
	if detailed {
		maxTests = 1000
	}

	lUse := int(math.Max(math.Floor(math.Log2(float64(m)*(float64(n1)-k1))), 1))
	maxPlus := xmath.Min(lMax-lUse, (maxTests-1)/2)
	maxMinus := xmath.Min(lUse-int(math.Ceil(math.Log2(float64(m))))-1, (maxTests-1)/2)

	for l := lUse - maxMinus; l <= lUse+maxPlus; l++ {
		pHalfMax := int(math.Pow(2, float64(l)-math.Log2(float64(m))) / 2)
		for pHalf := 0; pHalf < pHalfMax; pHalf++ {
			p := 2*pHalf + 2
			eps := log2ErrorRaz(n1, k1, k2, m, l, p)
			if eps < minLog2Error {
				minLog2Error = eps
			}
		}
	}
	return minLog2Error
}

// FromParams derives a Raz extractor from entropy/error targets by
// searching the largest output length m whose optimal (l, p) achieves
// the target error, detailed selects the finer search mode; if
// onProgress is non-nil it is called with the percentage of the
// m-range searched so far, leaving the choice of whether (and how) to
// surface that progress to the caller.
func FromParams(n1 int, k1 float64, n2 int, k2 float64, log2Error float64, detailed bool, onProgress func(percent int)) (*Extractor, int, error) {
	if log2Error > 0 {
		panic("raz: log2_error must be <= 0")
	}
	if n2 <= 0 || float64(n2) > float64(n1)/2 {
		panic("raz: n2 must be in (0, n1/2]")
	}

	maxM := 0
	mCeil := int(k2)
	for m := 1; m <= mCeil; m++ {
		if optErrorRaz(n1, k1, n2, k2, m, detailed) <= log2Error {
			maxM = m
		}
		if onProgress != nil && mCeil > 0 {
			onProgress(m * 100 / mCeil)
		}
	}

	if maxM <= 0 {
		return nil, 0, fmt.Errorf("raz: cannot achieve target error; increase k1, k2, or log2_error")
	}

	ex, err := New(n1, maxM, 0)
	if err != nil {
		return nil, 0, err
	}
	return ex, maxM, nil
}

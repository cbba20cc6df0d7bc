// Package ntt implements the number-theoretic transform kernel shared by
// the cyclic-convolution extractors (Dodis, Circulant, Toeplitz) and the
// Raz extractor's GF(2^n) arithmetic. It provides forward/inverse NTTs
// over a prime field chosen so that cyclic convolution of length L = 2^l
// is an exact integer operation, plus the fused conv_and_reduce and
// raz_iteration operations used by Raz's inner loop.
package ntt

import (
	"math/big"
	"math/bits"
)

// barrettParams computes mu = floor(2^128 / q) split into high/low 64-bit
// words, the precomputed constant used by bred to reduce a 128-bit
// product modulo q without division in the hot loop.
func barrettParams(q uint64) (u [2]uint64) {
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Quo(r, new(big.Int).SetUint64(q))
	u[0] = new(big.Int).Rsh(r, 64).Uint64()
	u[1] = r.Uint64()
	return
}

// bred computes x*y mod q using Barrett reduction, with precomputed
// constants u from barrettParams(q). The result is in [0, q).
func bred(x, y, q uint64, u [2]uint64) (r uint64) {
	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	lhi, _ = bits.Mul64(alo, u[1])

	mhi, mlo = bits.Mul64(alo, u[0])
	s0, carry = bits.Add64(mlo, lhi, 0)
	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])
	_, carry = bits.Add64(mlo, s0, 0)
	lhi = mhi + carry

	s0 = ahi*u[0] + s1 + lhi

	r = alo - s0*q
	if r >= q {
		r -= q
	}
	return
}

// bredAdd reduces a single value x (possibly up to 2q^2 in magnitude as a
// product residue) modulo q.
func bredAdd(x, q uint64, u [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, u[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// cRed reduces a value known to lie in [0, 2q) to [0, q).
func cRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

func addMod(a, b, q uint64) uint64 {
	return cRed(a+b, q)
}

func subMod(a, b, q uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + q - b
}

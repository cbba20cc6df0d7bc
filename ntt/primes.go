package ntt

import "math/big"

// isProbablePrime uses a Miller-Rabin test; exact for all uint64 values.
// This is an internal performance detail of prime search during context
// construction, distinct from the trial-division numtheory.IsPrime
// exposed as the library's public primality utility.
func isProbablePrime(p uint64) bool {
	return new(big.Int).SetUint64(p).ProbablyPrime(20)
}

// smallPrime finds a prime of the form p = k*2^32 + 1, the smallest such
// k >= 1. Any L = 2^l with l <= 32 divides p-1, so p supports an NTT of
// size L for l up to 30.
func smallPrime(l int) uint64 {
	if l > 32 {
		panic("ntt: smallPrime requires l <= 32")
	}
	const base = uint64(1) << 32
	for k := uint64(1); ; k++ {
		p := k*base + 1
		if isProbablePrime(p) {
			return p
		}
	}
}

// bigPrime finds the largest prime of the form p = c*2^l + 1 below 2^62,
// searching c downward from its largest admissible value. This gives a
// 62-bit prime supporting an NTT of size L = 2^l, with p-1 divisible by
// 2^l and p small enough for Barrett reduction of 128-bit products.
func bigPrime(l int) uint64 {
	shift := uint64(1) << uint(l)
	for c := (uint64(1)<<62 - 1) / shift; c >= 1; c-- {
		p := c*shift + 1
		if isProbablePrime(p) {
			return p
		}
	}
	panic("ntt: no big prime found below 2^62 for this l")
}

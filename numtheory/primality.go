// Package numtheory provides the primality, factorisation and
// primitive-root utilities shared by the extractor and NTT packages:
// trial-division primality and factoring, nearest-prime search, and
// the na_set search for primes that admit 2 as a primitive root.
package numtheory

import "math"

// IsPrime reports whether n is prime using trial division up to sqrt(n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	limit := int64(math.Sqrt(float64(n))) + 1
	for i := int64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Factor returns the distinct prime factors of n and their multiplicities,
// via trial division.
func Factor(n int64) (primes []int64, exponents []int64) {
	if n < 2 {
		return nil, nil
	}
	for _, p := range []int64{2} {
		if n%p == 0 {
			e := int64(0)
			for n%p == 0 {
				n /= p
				e++
			}
			primes = append(primes, p)
			exponents = append(exponents, e)
		}
	}
	for p := int64(3); p*p <= n; p += 2 {
		if n%p == 0 {
			e := int64(0)
			for n%p == 0 {
				n /= p
				e++
			}
			primes = append(primes, p)
			exponents = append(exponents, e)
		}
	}
	if n > 1 {
		primes = append(primes, n)
		exponents = append(exponents, 1)
	}
	return
}

// NextPrime returns the smallest prime strictly greater than k.
func NextPrime(k int64) int64 {
	n := k + 1
	if n < 2 {
		n = 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}

// PreviousPrime returns the largest prime strictly less than k.
// It panics if no prime exists below k (k <= 2).
func PreviousPrime(k int64) int64 {
	n := k - 1
	for n >= 2 {
		if IsPrime(n) {
			return n
		}
		n--
	}
	panic("numtheory: no prime below k")
}

// ClosestPrime returns the prime nearest to k, ties broken toward the
// smaller prime.
func ClosestPrime(k int64) int64 {
	if IsPrime(k) {
		return k
	}
	next := NextPrime(k)
	var prev int64 = -1
	if k > 2 {
		prev = PreviousPrime(k)
	}
	if prev < 0 {
		return next
	}
	dNext := next - k
	dPrev := k - prev
	if dPrev <= dNext {
		return prev
	}
	return next
}

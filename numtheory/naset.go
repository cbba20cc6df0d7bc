package numtheory

import "math/big"

// IsNASet reports whether q is a prime for which 2 is a primitive root,
// i.e. 2 generates the multiplicative group (Z/qZ)*. Equivalently, for
// every prime factor r of q-1, 2^((q-1)/r) is not 1 mod q.
func IsNASet(q int64) bool {
	if !IsPrime(q) {
		return false
	}
	if q == 2 {
		return false
	}
	factors, _ := Factor(q - 1)
	qBig := big.NewInt(q)
	two := big.NewInt(2)
	for _, r := range factors {
		e := big.NewInt((q - 1) / r)
		if new(big.Int).Exp(two, e, qBig).Cmp(big.NewInt(1)) == 0 {
			return false
		}
	}
	return true
}

// NextNASet returns the smallest na_set prime strictly greater than k.
func NextNASet(k int64) int64 {
	n := k + 1
	for !IsNASet(n) {
		n++
	}
	return n
}

// PreviousNASet returns the largest na_set prime strictly less than k.
// It panics if no such prime exists below k.
func PreviousNASet(k int64) int64 {
	n := k - 1
	for n >= 2 {
		if IsNASet(n) {
			return n
		}
		n--
	}
	panic("numtheory: no na_set prime below k")
}

// ClosestNASet returns the na_set prime nearest to k, ties broken toward
// the smaller prime.
func ClosestNASet(k int64) int64 {
	if IsNASet(k) {
		return k
	}
	next := NextNASet(k)
	var prev int64 = -1
	if k > 3 {
		prev = PreviousNASet(k)
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

// ClosestNASetNotExceeding returns the largest na_set prime q with q <= k.
func ClosestNASetNotExceeding(k int64) int64 {
	if IsNASet(k) {
		return k
	}
	return PreviousNASet(k)
}

// ClosestPrimeNotExceeding returns the largest prime q with q <= k.
func ClosestPrimeNotExceeding(k int64) int64 {
	if IsPrime(k) {
		return k
	}
	return PreviousPrime(k)
}

package numtheory

import "math/big"

// ModExp computes base^exp mod m for non-negative exp.
func ModExp(base, exp, m int64) int64 {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), big.NewInt(m)).Int64()
}

// PrimitiveRoot returns the smallest generator of the multiplicative
// group (Z/qZ)* for a prime q, found by testing candidates against the
// distinct prime factors of q-1.
func PrimitiveRoot(q int64) int64 {
	factors, _ := Factor(q - 1)
	qBig := big.NewInt(q)
	for g := int64(2); ; g++ {
		isGenerator := true
		gBig := big.NewInt(g)
		for _, r := range factors {
			e := big.NewInt((q - 1) / r)
			if new(big.Int).Exp(gBig, e, qBig).Cmp(big.NewInt(1)) == 0 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g
		}
	}
}

package trevisan

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// fieldPow computes base^exp in f via square-and-multiply, using only
// f.mul and f.one, the way onebit.go's pattern builder composes powers.
func fieldPow(f *gf2Field, base *big.Int, exp int) *big.Int {
	result := f.one()
	b := new(big.Int).Set(base)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = f.mul(result, b)
		}
		b = f.mul(b, b)
	}
	return result
}

// TestFieldMultiplicativeInverseRoundTrips checks that newGF2Field
// really builds a field: every nonzero element's Fermat inverse
// (a^(2^deg-2), since a^(2^deg-1) == 1 for a != 0) multiplies back to 1.
// A reducible modulus would have zero divisors and fail this for some a.
func TestFieldMultiplicativeInverseRoundTrips(t *testing.T) {
	for _, deg := range []int{3, 5, 8, 11} {
		f := newGF2Field(deg)
		order := (1 << uint(deg)) - 1
		invExp := order - 1

		limit := int64(20)
		if int64(order) < limit {
			limit = int64(order)
		}
		for a := int64(1); a <= limit; a++ {
			elem := big.NewInt(a)
			inv := fieldPow(f, elem, invExp)
			got := f.mul(elem, inv)
			require.Equal(t, int64(1), got.Int64(), "deg=%d a=%d", deg, a)
		}
	}
}

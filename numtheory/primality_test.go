package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/numtheory"
)

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 101, 7919}
	for _, p := range primes {
		require.True(t, numtheory.IsPrime(p), "%d should be prime", p)
	}
	composites := []int64{0, 1, 4, 6, 9, 100, 7921}
	for _, n := range composites {
		require.False(t, numtheory.IsPrime(n), "%d should not be prime", n)
	}
}

func TestFactor(t *testing.T) {
	primes, exps := numtheory.Factor(360)
	require.Equal(t, []int64{2, 3, 5}, primes)
	require.Equal(t, []int64{3, 2, 1}, exps)
}

func TestFactorPrime(t *testing.T) {
	primes, exps := numtheory.Factor(97)
	require.Equal(t, []int64{97}, primes)
	require.Equal(t, []int64{1}, exps)
}

func TestNextPreviousClosestPrime(t *testing.T) {
	require.Equal(t, int64(11), numtheory.NextPrime(10))
	require.Equal(t, int64(7), numtheory.PreviousPrime(10))
	require.Equal(t, int64(11), numtheory.ClosestPrime(10)) // 10-7=3, 11-10=1
	require.True(t, numtheory.IsPrime(numtheory.ClosestPrime(100)))
}

func TestClosestPrimeTieBreak(t *testing.T) {
	// 12 is a genuine tie: previous 11 (dist 1), next 13 (dist 1); the
	// smaller prime wins.
	require.Equal(t, int64(11), numtheory.ClosestPrime(12))
}

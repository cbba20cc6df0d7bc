package ntt_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/ntt"
)

func randomVector(l int, bound uint64) []uint64 {
	L := 1 << uint(l)
	v := make([]uint64, L)
	for i := range v {
		v[i] = uint64(rand.Int63n(int64(bound)))
	}
	return v
}

func TestNTTRoundTrip(t *testing.T) {
	for l := 1; l <= 8; l++ {
		c := ntt.NewContext(l)
		for trial := 0; trial < 5; trial++ {
			v := randomVector(l, 1<<20)
			got := c.NTT(c.NTT(v, false), true)
			require.Equal(t, v, got, "l=%d", l)
		}
	}
}

func TestBigContextRoundTrip(t *testing.T) {
	for l := 1; l <= 8; l++ {
		c := ntt.NewBigContext(l)
		v := randomVector(l, 1<<20)
		got := c.NTT(c.NTT(v, false), true)
		require.Equal(t, v, got, "l=%d", l)
	}
}

func TestSmallAndBigContextAgreeOnOverlap(t *testing.T) {
	for l := 2; l <= 10; l++ {
		small := ntt.NewSmallContext(l)
		big := ntt.NewBigContext(l)

		a := make([]uint64, 1<<uint(l))
		b := make([]uint64, 1<<uint(l))
		for i := range a {
			a[i] = uint64(rand.Intn(2))
			b[i] = uint64(rand.Intn(2))
		}

		gotSmall := small.Conv(a, b)
		gotBig := big.Conv(a, b)
		require.Equal(t, gotSmall, gotBig, "l=%d", l)
	}
}

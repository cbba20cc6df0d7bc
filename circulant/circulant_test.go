package circulant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/circulant"
)

func TestExtractVectors(t *testing.T) {
	cases := []struct {
		n1, m          int
		input1, input2 []int
		want           []int
	}{
		{2, 1, []int{0, 1}, []int{1, 1, 1}, []int{1}},
		{2, 2, []int{1, 0}, []int{1, 1, 0}, []int{1, 1}},
		{5, 5, []int{1, 0, 1, 0, 0}, []int{1, 1, 1, 0, 1, 0}, []int{0, 1, 0, 0, 0}},
		{8, 8, []int{0, 0, 1, 1, 0, 0, 0, 1}, []int{1, 1, 1, 0, 1, 1, 1, 1, 0}, []int{0, 1, 1, 1, 1, 1, 0, 1}},
	}
	for _, tc := range cases {
		e := circulant.New(tc.n1, tc.m)
		got := e.Extract(tc.input1, tc.input2)
		require.Equal(t, tc.want, got, "n1=%d m=%d", tc.n1, tc.m)
	}
}

func TestNewPanicsWhenMExceedsN1(t *testing.T) {
	require.Panics(t, func() { circulant.New(2, 3) })
}

func TestFromParamsSnapsToNearestPrime(t *testing.T) {
	e, adjusted := circulant.FromParams(100, 95, 100, 95, -3, false)
	require.NotNil(t, e)
	require.Greater(t, adjusted.M, 0)
	require.LessOrEqual(t, adjusted.N1, 100)
}

func TestFromParamsQProofDoesNotChangeOutputLength(t *testing.T) {
	_, withoutQProof := circulant.FromParams(200, 150, 200, 150, -40, false)
	_, withQProof := circulant.FromParams(200, 150, 200, 150, -40, true)
	require.Equal(t, withoutQProof.M, withQProof.M)
}

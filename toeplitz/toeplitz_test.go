package toeplitz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/internal/seedgen"
	"github.com/CQCL/cryptomite/toeplitz"
)

func TestNewPanicsWhenMExceedsN(t *testing.T) {
	require.Panics(t, func() { toeplitz.New(3, 4) })
}

func TestExtractOutputLength(t *testing.T) {
	e := toeplitz.New(6, 4)
	input1 := seedgen.ExpandSource([]byte("toeplitz-input"), 6)
	input2 := seedgen.ExpandSeed([]byte("toeplitz-seed"), 6+4-1)
	out := e.Extract(input1, input2)
	require.Len(t, out, 4)
}

func TestExtractPanicsOnWrongLengths(t *testing.T) {
	e := toeplitz.New(6, 4)
	require.Panics(t, func() { e.Extract(make([]int, 5), make([]int, 9)) })
	require.Panics(t, func() { e.Extract(make([]int, 6), make([]int, 8)) })
}

func TestFromParamsRequiresLargerSeedThanInput(t *testing.T) {
	require.Panics(t, func() { toeplitz.FromParams(50, 40, 40, 40, -5, false) })
}

func TestFromParamsDerivesConsistentLengths(t *testing.T) {
	e, adjusted := toeplitz.FromParams(50, 45, 100, 90, -5, false)
	require.Equal(t, adjusted.N2, adjusted.N1+adjusted.M-1)
	source := seedgen.ExpandSource([]byte("toeplitz-from-params-src"), adjusted.N1)
	seed := seedgen.ExpandSeed([]byte("toeplitz-from-params-seed"), adjusted.N2)
	out := e.Extract(source, seed)
	require.Len(t, out, adjusted.M)
}

func TestFromParamsQProofDoesNotChangeOutputLength(t *testing.T) {
	_, withoutQProof := toeplitz.FromParams(50, 45, 100, 90, -5, false)
	_, withQProof := toeplitz.FromParams(50, 45, 100, 90, -5, true)
	require.Equal(t, withoutQProof.M, withQProof.M)
}

// TestExtractIsLinearInInput1 checks the GF(2)-linearity property: for
// a fixed seed, x -> extract(x, seed) is XOR-additive.
func TestExtractIsLinearInInput1(t *testing.T) {
	e := toeplitz.New(6, 4)
	seed := seedgen.ExpandSeed([]byte("toeplitz-linearity-seed"), 6+4-1)

	for trial := 0; trial < 5; trial++ {
		key := []byte{byte(trial)}
		x1 := seedgen.ExpandSource(append([]byte("toeplitz-lin-x1-"), key...), 6)
		x2 := seedgen.ExpandSource(append([]byte("toeplitz-lin-x2-"), key...), 6)
		x3 := xor(x1, x2)

		o1 := e.Extract(x1, seed)
		o2 := e.Extract(x2, seed)
		o3 := e.Extract(x3, seed)

		require.Equal(t, xor(o1, o2), o3)
	}
}

func xor(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

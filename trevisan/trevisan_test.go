package trevisan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/internal/seedgen"
	"github.com/CQCL/cryptomite/trevisan"
)

func TestInitDerivesPositiveLengths(t *testing.T) {
	e := trevisan.Init(1000, 900, 0.01, false)
	require.Greater(t, e.M(), 0)
	require.Greater(t, e.SeedLength(), 0)
}

func TestLoadSourcePanicsOnWrongLengths(t *testing.T) {
	e := trevisan.Init(1000, 900, 0.01, false)
	require.Panics(t, func() {
		e.LoadSource(make([]int, 5), make([]int, e.SeedLength()))
	})
	require.Panics(t, func() {
		e.LoadSource(make([]int, 1000), make([]int, 5))
	})
}

func TestExtractBitPanicsWithoutLoadSource(t *testing.T) {
	e := trevisan.Init(1000, 900, 0.01, false)
	require.Panics(t, func() { e.ExtractBit(0) })
}

func TestExtractIsDeterministic(t *testing.T) {
	e := trevisan.Init(500, 450, 0.01, false)
	source := seedgen.ExpandSource([]byte("trevisan-source"), 500)
	seed := seedgen.ExpandSeed([]byte("trevisan-seed"), e.SeedLength())

	out1 := e.Extract(source, seed)
	out2 := e.Extract(source, seed)
	require.Equal(t, out1, out2)
	require.Len(t, out1, e.M())
}

func TestExtractBitMatchesFullExtract(t *testing.T) {
	e := trevisan.Init(500, 450, 0.01, false)
	source := seedgen.ExpandSource([]byte("trevisan-source-2"), 500)
	seed := seedgen.ExpandSeed([]byte("trevisan-seed-2"), e.SeedLength())

	full := e.Extract(source, seed)
	e.LoadSource(source, seed)
	for i := 0; i < e.M(); i++ {
		bit := e.ExtractBit(i)
		require.True(t, bit == 0 || bit == 1)
		require.Equal(t, full[i], bit, "bit %d", i)
	}
}

func TestQProofVariantDerivesValidParams(t *testing.T) {
	e := trevisan.Init(2000, 1800, 0.001, true)
	require.Greater(t, e.M(), 0)
	require.Greater(t, e.SeedLength(), 0)
}

package trevisan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWeakDesignSetsHaveSizeTAndStayInRange(t *testing.T) {
	cases := []params{
		deriveParams(500, 450, 0.01, false),
		deriveParams(2000, 1800, 0.001, true),
	}
	for _, p := range cases {
		wd := buildWeakDesign(p)
		require.Len(t, wd.sets, p.m)
		for i, s := range wd.sets {
			require.Len(t, s, p.t, "set %d", i)
			for _, idx := range s {
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, p.d)
			}
		}
	}
}

package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CQCL/cryptomite/suggest"
)

func TestExtractor(t *testing.T) {
	cases := []struct {
		name                    string
		n                       int
		exchangeable, efficient bool
		want                    string
	}{
		{"exchangeable always wins", 10_000_000, true, false, "Von Neumann"},
		{"exchangeable overrides efficient", 10_000_000, true, true, "Von Neumann"},
		{"small non-exchangeable", 1000, false, false, "Circulant"},
		{"at the boundary", 1_000_000, false, false, "Circulant"},
		{"just past the boundary", 1_000_001, false, false, "Trevisan"},
		{"large but efficiency-constrained", 10_000_000, false, true, "Circulant"},
		{"large, no efficiency constraint", 10_000_000, false, false, "Trevisan"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := suggest.Extractor(tc.n, tc.exchangeable, tc.efficient)
			require.Equal(t, tc.want, got)
		})
	}
}

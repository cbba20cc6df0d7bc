// Package suggest recommends which extractor to reach for given a
// source's size and the caller's independence/efficiency constraints.
package suggest

// Extractor recommends an extractor name for an input of size n:
// exchangeable sources (IID, order-invariant) get the cheap Von Neumann
// debiaser; otherwise inputs up to 10^6 bits, or callers that need an
// efficient (low-overhead) extractor, get Circulant; everything else
// falls back to Trevisan.
func Extractor(n int, exchangeable, efficient bool) string {
	if exchangeable {
		return "Von Neumann"
	}
	if n <= 1_000_000 || efficient {
		return "Circulant"
	}
	return "Trevisan"
}

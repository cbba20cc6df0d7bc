package trevisan

import "math"

// params holds the derived parameters of a Trevisan instance: m
// one-bit extractions, each consuming a t-bit index drawn from a
// d-bit seed via a weak design built from a blocks.
type params struct {
	n, m, t, a, d int
}

// eulerR is 2e, the base of the exponential bound the weak design
// construction must satisfy.
const eulerR = 2 * math.E

// deriveParams computes the Trevisan parameters for a source of length
// n with min-entropy k and target error max_eps. The classical
// and quantum-proof (Markov model) variants use different constants in
// the output-length bound.
func deriveParams(n int, k, maxEps float64, qProof bool) params {
	if maxEps <= 0 {
		panic("trevisan: max_eps must be > 0")
	}

	log2Eps := math.Log2(maxEps)

	mRaw := func() float64 {
		if qProof {
			return (k + 6 - 6*math.Log2(3) + 12*log2Eps) / 7
		}
		return k + 4*log2Eps - 6
	}()

	m := mRaw
	// Two passes stabilise the self-referential -c*log2(m) term: the
	// first evaluates it at mRaw, the second at the refined value.
	for i := 0; i < 2; i++ {
		if m <= 1 {
			panic("trevisan: cannot derive a positive output length; increase k or relax max_eps")
		}
		if qProof {
			m = mRaw - 12*math.Log2(m)
		} else {
			m = mRaw - 4*math.Log2(m)
		}
	}
	mInt := int(math.Floor(m))
	if mInt <= 0 {
		panic("trevisan: cannot derive a positive output length; increase k or relax max_eps")
	}

	t := 2 * int(math.Ceil(math.Log2(float64(n))+1-2*log2Eps+2*math.Log2(float64(2*mInt))))
	if t <= 0 {
		panic("trevisan: derived block size t is non-positive")
	}

	r := eulerR
	if float64(mInt) <= r || float64(t) <= r {
		panic("trevisan: derived m or t too small relative to 2e; increase k or relax max_eps")
	}
	aRaw := (math.Log(float64(mInt)-r) - math.Log(float64(t)-r)) / (math.Log(r) - math.Log(r-1))
	a := int(math.Ceil(aRaw))
	if a < 1 {
		a = 1
	}

	d := 4 * a * t * t

	return params{n: n, m: mInt, t: t, a: a, d: d}
}

// Package trevisan implements the Trevisan seeded extractor: a weak
// combinatorial design selects, for each output bit, a window of the
// seed fed to a polynomial-hashing one-bit extractor against the
// source, per the block-design construction of Mauerer et al.
package trevisan

// Extractor is a Trevisan instance configured for a source of length n
// with min-entropy k and target error max_eps. Call LoadSource to bind
// a concrete (source, seed) pair before ExtractBit/Extract.
type Extractor struct {
	p      params
	design *weakDesign
	oneBit *oneBitExtractor

	source []int
	seed   []int
}

// Init computes and caches the parameters and weak design for a
// Trevisan instance targeting a length-n source with min-entropy k and
// error at most max_eps. qProof selects the quantum-proof (Markov
// model) parameter variant.
func Init(n int, k, maxEps float64, qProof bool) *Extractor {
	p := deriveParams(n, k, maxEps, qProof)
	return &Extractor{
		p:      p,
		design: buildWeakDesign(p),
		oneBit: newOneBitExtractor(p.t, n),
	}
}

// M returns the configured output length.
func (e *Extractor) M() int { return e.p.m }

// SeedLength returns the configured seed length d.
func (e *Extractor) SeedLength() int { return e.p.d }

// LoadSource binds the current source and seed. It panics if either
// has the wrong length.
func (e *Extractor) LoadSource(source, seed []int) {
	if len(source) != e.p.n {
		panic("trevisan: source length must equal n")
	}
	if len(seed) != e.p.d {
		panic("trevisan: seed length must equal d")
	}
	e.source = source
	e.seed = seed
}

// ExtractBit returns the i-th output bit. LoadSource must have been
// called first.
func (e *Extractor) ExtractBit(i int) int {
	if e.source == nil {
		panic("trevisan: LoadSource must be called before ExtractBit")
	}
	indices := e.design.sets[i]
	window := make([]int, len(indices))
	for j, idx := range indices {
		window[j] = e.seed[idx]
	}
	return e.oneBit.extract(e.source, window)
}

// Extract binds source and seed and returns all m output bits. It is
// equivalent to LoadSource followed by iterating ExtractBit(0..m).
func (e *Extractor) Extract(source, seed []int) []int {
	e.LoadSource(source, seed)
	out := make([]int, e.p.m)
	for i := range out {
		out[i] = e.ExtractBit(i)
	}
	return out
}

package ntt

import "github.com/CQCL/cryptomite/numtheory"

// Context holds the precomputed state for a number-theoretic transform of
// size L = 2^l over a prime field: the prime P and the twiddle tables
// (powers of a primitive L-th root of unity g and of its inverse) used by
// the radix-2 butterflies. A
// Context is immutable once built and safe for concurrent read-only use.
type Context struct {
	L    int
	LogL int
	P    uint64

	bred [2]uint64

	rootPow    []uint64 // g^i mod P, i = 0..L-1
	rootPowInv []uint64 // g^-i mod P, i = 0..L-1
	nInv       uint64   // L^-1 mod P
}

// NewContext builds a Context for size L = 2^l, selecting the small-prime
// construction for l <= 30 and the big-prime construction above that.
func NewContext(l int) *Context {
	if l > 30 {
		return NewBigContext(l)
	}
	return NewSmallContext(l)
}

// NewSmallContext builds a Context using the small-prime variant
// (p = k*2^32 + 1), valid for l <= 30.
func NewSmallContext(l int) *Context {
	if l > 30 {
		panic("ntt: small-prime context requires l <= 30")
	}
	return newContext(l, smallPrime(l))
}

// NewBigContext builds a Context using the big-prime variant
// (p = c*2^l + 1), used when l > 30 but valid for any l.
func NewBigContext(l int) *Context {
	return newContext(l, bigPrime(l))
}

func newContext(l int, p uint64) *Context {
	L := 1 << uint(l)
	if (p-1)%uint64(L) != 0 {
		panic("ntt: prime does not admit an L-th root of unity")
	}

	c := &Context{
		L:    L,
		LogL: l,
		P:    p,
		bred: barrettParams(p),
	}

	gen := numtheory.PrimitiveRoot(int64(p))
	g := numtheory.ModExp(gen, int64((p-1)/uint64(L)), int64(p))
	ginv := numtheory.ModExp(g, int64(p-2), int64(p))

	c.rootPow = make([]uint64, L)
	c.rootPowInv = make([]uint64, L)
	c.rootPow[0] = 1
	c.rootPowInv[0] = 1
	for i := 1; i < L; i++ {
		c.rootPow[i] = bred(c.rootPow[i-1], uint64(g), p, c.bred)
		c.rootPowInv[i] = bred(c.rootPowInv[i-1], uint64(ginv), p, c.bred)
	}

	c.nInv = uint64(numtheory.ModExp(int64(L), int64(p-2), int64(p)))

	return c
}

func bitReversePermute(a []uint64) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

func (c *Context) transform(v []uint64, invert bool) []uint64 {
	L := c.L
	if len(v) != L {
		panic("ntt: input length must equal L")
	}
	a := make([]uint64, L)
	copy(a, v)
	bitReversePermute(a)

	roots := c.rootPow
	if invert {
		roots = c.rootPowInv
	}

	for length := 2; length <= L; length <<= 1 {
		half := length / 2
		step := L / length
		for i := 0; i < L; i += length {
			for j := 0; j < half; j++ {
				w := roots[j*step]
				u := a[i+j]
				t := bred(a[i+j+half], w, c.P, c.bred)
				a[i+j] = addMod(u, t, c.P)
				a[i+j+half] = subMod(u, t, c.P)
			}
		}
	}

	if invert {
		for i := range a {
			a[i] = bred(a[i], c.nInv, c.P, c.bred)
		}
	}
	return a
}

// NTT computes the forward (inverse=false) or inverse (inverse=true)
// number-theoretic transform of v, a length-L vector of field elements
// reduced modulo P. It returns a freshly allocated result; v is left
// untouched. Calling NTT(NTT(v, false), true) returns v unchanged.
func (c *Context) NTT(v []uint64, inverse bool) []uint64 {
	return c.transform(v, inverse)
}

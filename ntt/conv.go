package ntt

// Conv computes the cyclic convolution of length L of a and b:
// c[i] = sum_j a[j]*b[(i-j) mod L] mod P. It composes a forward NTT of
// each input, a pointwise multiply, and an inverse NTT.
func (c *Context) Conv(a, b []uint64) []uint64 {
	fa := c.transform(a, false)
	fb := c.transform(b, false)
	prod := pointwiseMul(fa, fb, c.P, c.bred)
	return c.transform(prod, true)
}

func pointwiseMul(a, b []uint64, p uint64, u [2]uint64) []uint64 {
	out := make([]uint64, len(a))
	for i := range a {
		out[i] = bred(a[i], b[i], p, u)
	}
	return out
}

// reduceTrinomial folds the length-L raw convolution x of two GF(2^n)
// polynomials modulo the irreducible trinomial x^n + x^s + 1: for
// each degree-(n+i) coefficient, from high to low, its parity is XORed
// into degrees i and s+i and the degree-(n+i) slot is cleared. The
// returned slice has the same length as x, with the low n entries forming
// the reduced field element and the rest zero.
func reduceTrinomial(x []uint64, n, s int) []uint64 {
	out := make([]uint64, len(x))
	copy(out, x)
	for i := n - 1; i >= 0; i-- {
		red := out[n+i] & 1
		out[n+i] = 0
		out[s+i] = (out[s+i] & 1) ^ red
		out[i] = (out[i] & 1) ^ red
	}
	for i := range out {
		out[i] &= 1
	}
	return out
}

// ConvAndReduce returns the length-L cyclic convolution of a and b,
// already folded by the trinomial x^n + x^s + 1, as required by Raz's
// GF(2^n) multiplication. Every entry of the result is a bit.
func (c *Context) ConvAndReduce(a, b []uint64, n, s int) []uint64 {
	return reduceTrinomial(c.Conv(a, b), n, s)
}

// RazIteration computes (product*(delta+1), delta^2) in GF(2^n), sharing
// the forward transforms of product and delta across both pointwise
// products instead of recomputing a third forward transform for
// delta+1: the NTT of the unit vector e_0 is the all-ones vector, so
// NTT(delta + e_0) = NTT(delta) + 1 componentwise. This is the fused
// operation Raz's inner loop requires.
func (c *Context) RazIteration(product, delta []uint64, n, s int) (newProduct, newDelta []uint64) {
	fp := c.transform(product, false)
	fd := c.transform(delta, false)

	fdPlusOne := make([]uint64, c.L)
	for i := range fdPlusOne {
		fdPlusOne[i] = addMod(fd[i], 1, c.P)
	}

	prodFreq := pointwiseMul(fp, fdPlusOne, c.P, c.bred)
	deltaFreq := pointwiseMul(fd, fd, c.P, c.bred)

	rawProduct := c.transform(prodFreq, true)
	rawDelta := c.transform(deltaFreq, true)

	newProduct = reduceTrinomial(rawProduct, n, s)
	newDelta = reduceTrinomial(rawDelta, n, s)
	return
}

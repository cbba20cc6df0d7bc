package trevisan

import "math/big"

// gf2Field is GF(2^deg), represented as polynomials over GF(2) stored
// as bit vectors in a big.Int, reduced modulo a fixed irreducible
// polynomial of degree deg.
type gf2Field struct {
	deg     int
	modulus *big.Int // degree-deg polynomial, bit `deg` set
}

// newGF2Field builds the field GF(2^deg), using the irreducible
// polynomial of that degree returned by findIrreducible.
func newGF2Field(deg int) *gf2Field {
	return &gf2Field{deg: deg, modulus: findIrreducible(deg)}
}

func polyMulNoMod(a, b *big.Int) *big.Int {
	result := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < b.BitLen(); i++ {
		if b.Bit(i) == 1 {
			tmp.Lsh(a, uint(i))
			result.Xor(result, tmp)
		}
	}
	return result
}

// polyMod reduces a modulo m (both bit vectors, m's degree is its
// BitLen()-1), via schoolbook shift-and-xor from the top bit down.
func polyMod(a, m *big.Int) *big.Int {
	r := new(big.Int).Set(a)
	degM := m.BitLen() - 1
	for r.BitLen()-1 >= degM {
		shift := r.BitLen() - 1 - degM
		shifted := new(big.Int).Lsh(m, uint(shift))
		r.Xor(r, shifted)
	}
	return r
}

func (f *gf2Field) mul(a, b *big.Int) *big.Int {
	return polyMod(polyMulNoMod(a, b), f.modulus)
}

func (f *gf2Field) one() *big.Int {
	return big.NewInt(1)
}

// polyDivMod performs polynomial long division over GF(2): a = q*b + r.
func polyDivMod(a, b *big.Int) (q, r *big.Int) {
	r = new(big.Int).Set(a)
	q = new(big.Int)
	degB := b.BitLen() - 1
	for r.Sign() != 0 && r.BitLen()-1 >= degB {
		shift := r.BitLen() - 1 - degB
		shifted := new(big.Int).Lsh(b, uint(shift))
		r.Xor(r, shifted)
		q.SetBit(q, shift, 1)
	}
	return q, r
}

func gcdGF2(a, b *big.Int) *big.Int {
	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)
	for b.Sign() != 0 {
		_, r := polyDivMod(a, b)
		a, b = b, r
	}
	return a
}

// xPow2Pow computes x^(2^i) mod m, starting from x itself and
// repeatedly squaring (squaring is a linear operation over GF(2)).
func xPow2Pow(i int, m *big.Int) *big.Int {
	cur := big.NewInt(2) // the polynomial "x"
	for j := 0; j < i; j++ {
		cur = polyMod(polyMulNoMod(cur, cur), m)
	}
	return cur
}

// isIrreducible applies Ben-Or's test: a degree-d polynomial f over
// GF(2) is irreducible iff x^(2^d) == x mod f and, for every prime
// factor r of d, gcd(f, x^(2^(d/r)) - x) == 1.
func isIrreducible(f *big.Int, deg int) bool {
	xPolyDegD := xPow2Pow(deg, f)
	xPolyDegD.Xor(xPolyDegD, big.NewInt(2))
	if xPolyDegD.Sign() != 0 {
		return false
	}

	primeFactors := distinctPrimeFactors(deg)
	for _, r := range primeFactors {
		h := xPow2Pow(deg/r, f)
		h.Xor(h, big.NewInt(2))
		if h.Sign() == 0 {
			return false
		}
		g := gcdGF2(f, h)
		if g.BitLen()-1 != 0 {
			return false
		}
	}
	return true
}

func distinctPrimeFactors(n int) []int {
	var out []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			out = append(out, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

// findIrreducible searches for an irreducible degree-deg polynomial
// over GF(2): first the trinomials x^deg + x^s + 1 in increasing s,
// then, in increasing numeric order, every polynomial with constant
// term 1 whose other middle terms lie among x^1..x^min(deg,20). The
// result is therefore not always the numerically smallest irreducible
// polynomial of that degree; it panics if neither pass finds one.
func findIrreducible(deg int) *big.Int {
	if deg == 1 {
		return big.NewInt(3) // x + 1
	}

	top := new(big.Int).Lsh(big.NewInt(1), uint(deg))

	for s := 1; s < deg; s++ {
		cand := new(big.Int).Set(top)
		cand.SetBit(cand, s, 1)
		cand.SetBit(cand, 0, 1)
		if isIrreducible(cand, deg) {
			return cand
		}
	}

	for mask := int64(3); mask < (int64(1) << uint(min(deg, 20))); mask++ {
		cand := new(big.Int).Set(top)
		cand.SetBit(cand, 0, 1)
		for b := 0; b < min(deg, 20); b++ {
			if mask&(1<<uint(b)) != 0 {
				cand.SetBit(cand, b+1, 1)
			}
		}
		if isIrreducible(cand, deg) {
			return cand
		}
	}

	panic("trevisan: no irreducible polynomial found for field degree")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

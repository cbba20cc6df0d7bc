package trevisan

import "github.com/CQCL/cryptomite/numtheory"

// weakDesign holds the m seed-index sets S_1..S_m, each of size t, used
// to pick which t-bit window of the seed feeds the one-bit extractor
// for a given output index.
type weakDesign struct {
	sets [][]int
}

// buildWeakDesign constructs a block weak design: a blocks, each a
// shifted translate of a basic polynomial design over Z_p (p the
// prime closest to, but not exceeding, 2t), together contributing t
// elements per index spread across a independent, disjoint pools of
// size 4t^2, for a total seed length d = 4at^2.
func buildWeakDesign(p params) *weakDesign {
	t, a, m := p.t, p.a, p.m

	localPrime := numtheory.ClosestPrimeNotExceeding(int64(2 * t))
	plocal := int(localPrime)
	segmentSize := p.d / a

	degree := 1
	for pow(plocal, degree) < m {
		degree++
	}

	perBlock := distribute(t, a)

	sets := make([][]int, m)
	for i := 0; i < m; i++ {
		digits := baseDigits(i, plocal, degree)
		s := make([]int, 0, t)
		for b := 0; b < a; b++ {
			count := perBlock[b]
			for x := 0; x < count; x++ {
				y := evalPoly(digits, x, plocal)
				y = (y + b) % plocal
				point := x*plocal + y
				s = append(s, b*segmentSize+point)
			}
		}
		sets[i] = s
	}

	return &weakDesign{sets: sets}
}

// distribute splits total into n nearly-equal non-negative integer
// shares summing to total.
func distribute(total, n int) []int {
	out := make([]int, n)
	base := total / n
	rem := total % n
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// baseDigits returns the digits of i in base p, least-significant
// first, padded to length degree.
func baseDigits(i, p, degree int) []int {
	digits := make([]int, degree)
	for j := 0; j < degree; j++ {
		digits[j] = i % p
		i /= p
	}
	return digits
}

// evalPoly evaluates the polynomial with the given coefficients
// (least-significant first) at x, modulo p.
func evalPoly(coeffs []int, x, p int) int {
	result := 0
	for j := len(coeffs) - 1; j >= 0; j-- {
		result = (result*x + coeffs[j]) % p
	}
	return result
}

package hankel

/*
reference quadrature for the J0 Hankel transform
adaptive Simpson between Bessel zeros, iterated averaging of the alternating lobe series
ref: Lucas, S.K., Stone, H.A., 1995. Evaluating infinite integrals involving Bessel functions of arbitrary order. Journal of Computational and Applied Mathematics 64(3). pp.217-231.
*/

import (
	"fmt"
	"math"
	"sync"
)

// Quad integrates the transform directly. Two orders of magnitude slower
// than Filter and meant for cross-checks, not production sweeps. The zero
// value uses 28 lobes at 1e-10 tolerance.
type Quad struct {
	Lobes int     // oscillation lobes summed before extrapolation
	Tol   float64 // absolute per-lobe quadrature tolerance
}

// Potential evaluates int_0^inf K(lam) J0(lam*r) dlam by splitting the axis
// at the zeros of J0(lam*r), integrating each lobe adaptively, then
// extrapolating the alternating series of partial sums by repeated
// averaging.
func (q Quad) Potential(r float64, kern func(float64) float64) (float64, error) {
	if !(r > 0.) || math.IsInf(r, 0) {
		return 0., fmt.Errorf("%w: r=%g", ErrBadOffset, r)
	}
	nl, tol := q.Lobes, q.Tol
	if nl < 8 {
		nl = 28
	}
	if tol <= 0. {
		tol = 1e-10
	}
	g := func(lam float64) (float64, error) {
		k := kern(lam)
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return 0., fmt.Errorf("%w: K(%g)=%g", ErrNumericalInstability, lam, k)
		}
		return k * math.J0(lam*r), nil
	}

	zs := j0zeros(nl + 1)
	atol := tol * (math.Abs(kern(zs[0]/r/2.))/r + 1.) // scale to the head lobe

	s := make([]float64, nl) // partial sums through lobe k
	acc, err := qsimp(g, 0., zs[0]/r, atol)
	if err != nil {
		return 0., err
	}
	for k := 0; k < nl; k++ {
		u, err := qsimp(g, zs[k]/r, zs[k+1]/r, atol)
		if err != nil {
			return 0., err
		}
		acc += u
		s[k] = acc
	}
	for len(s) > 1 { // Euler transform of the alternating tail
		for i := 0; i < len(s)-1; i++ {
			s[i] = .5 * (s[i] + s[i+1])
		}
		s = s[:len(s)-1]
	}
	return s[0], nil
}

func qsimp(g func(float64) (float64, error), a, b, atol float64) (float64, error) {
	fa, err := g(a)
	if err != nil {
		return 0., err
	}
	fm, err := g(.5 * (a + b))
	if err != nil {
		return 0., err
	}
	fb, err := g(b)
	if err != nil {
		return 0., err
	}
	whole := (b - a) / 6. * (fa + 4.*fm + fb)
	return qstep(g, a, b, fa, fm, fb, whole, atol, 24)
}

func qstep(g func(float64) (float64, error), a, b, fa, fm, fb, whole, atol float64, depth int) (float64, error) {
	m := .5 * (a + b)
	flm, err := g(.5 * (a + m))
	if err != nil {
		return 0., err
	}
	frm, err := g(.5 * (m + b))
	if err != nil {
		return 0., err
	}
	left := (m - a) / 6. * (fa + 4.*flm + fm)
	right := (b - m) / 6. * (fm + 4.*frm + fb)
	if depth <= 0 || math.Abs(left+right-whole) <= 15.*atol {
		return left + right + (left+right-whole)/15., nil
	}
	l, err := qstep(g, a, m, fa, flm, fm, left, .5*atol, depth-1)
	if err != nil {
		return 0., err
	}
	rr, err := qstep(g, m, b, fm, frm, fb, right, .5*atol, depth-1)
	if err != nil {
		return 0., err
	}
	return l + rr, nil
}

var (
	j0zMu sync.Mutex
	j0z   []float64
)

// j0zeros returns the first n positive zeros of J0, bisected to machine
// precision and cached.
func j0zeros(n int) []float64 {
	j0zMu.Lock()
	defer j0zMu.Unlock()
	for len(j0z) < n {
		lo := 2. // brackets the first zero at 2.4048
		if len(j0z) > 0 {
			lo = j0z[len(j0z)-1] + 2.8 // consecutive zeros sit just over pi apart
		}
		hi := lo + .7
		for math.Signbit(math.J0(lo)) == math.Signbit(math.J0(hi)) {
			hi += .3
		}
		for {
			mid := .5 * (lo + hi)
			if mid == lo || mid == hi {
				break
			}
			if math.Signbit(math.J0(mid)) == math.Signbit(math.J0(lo)) {
				lo = mid
			} else {
				hi = mid
			}
		}
		j0z = append(j0z, .5*(lo+hi))
	}
	out := make([]float64, n)
	copy(out, j0z[:n])
	return out
}

// Package hankel evaluates zeroth-order Hankel transforms of layered-earth
// kernels: the surface potential of a point current source at horizontal
// offset r is the integral of K(lam)*J0(lam*r) over lam in (0,inf), which has
// no closed form for general kernels. The working engine is a fixed digital
// linear filter (log-spaced abscissae and weights applied as a discrete
// convolution); a direct quadrature engine is kept alongside as a slow
// reference.
package hankel

import (
	"errors"
	"fmt"
	"math"
)

// ErrNumericalInstability flags a kernel returning non-finite values at a
// filter abscissa, usually a degenerate model upstream.
var ErrNumericalInstability = errors.New("hankel: kernel returned non-finite value")

// ErrBadOffset flags a non-positive source-receiver offset.
var ErrBadOffset = errors.New("hankel: offset must be positive")

// Transformer computes the J0 Hankel transform of a kernel at offset r [m]:
//
//	F(r) = int_0^inf K(lam) J0(lam*r) dlam
//
// Implementations must be safe for concurrent use with distinct kernels.
type Transformer interface {
	Potential(r float64, kern func(float64) float64) (float64, error)
}

// Filter is the digital-filter transform engine. The zero value is not
// usable; obtain one from NewFilter (process-wide table, designed once) or
// DesignFilter.
type Filter struct {
	base, w []float64 // abscissa multipliers b_i and weights, immutable
}

// Potential applies the filter: F(r) ~= (1/r) * sum_i w_i * K(b_i/r).
func (f *Filter) Potential(r float64, kern func(float64) float64) (float64, error) {
	if !(r > 0.) || math.IsInf(r, 0) {
		return 0., fmt.Errorf("%w: r=%g", ErrBadOffset, r)
	}
	s := 0.
	for i, b := range f.base {
		k := kern(b / r)
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return 0., fmt.Errorf("%w: K(%g)=%g", ErrNumericalInstability, b/r, k)
		}
		s += f.w[i] * k
	}
	return s / r, nil
}

// Len returns the filter length (the accuracy/cost knob).
func (f *Filter) Len() int { return len(f.base) }

// Abscissae returns a copy of the wavenumbers the filter samples for a given
// offset, smallest first.
func (f *Filter) Abscissae(r float64) []float64 {
	lams := make([]float64, len(f.base))
	for i, b := range f.base {
		lams[i] = b / r
	}
	return lams
}

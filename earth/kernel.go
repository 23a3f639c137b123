package earth

import "math"

// Resistivity transform of the layered earth
// ref: Koefoed, O., 1979. Geosounding Principles 1: Resistivity Sounding Measurements. Elsevier, Amsterdam. 276pp.
// see also: Pekeris, C.L., 1940. Direct method of interpretation in resistivity prospecting. Geophysics 5(1): 31-42.
//
// The transform T(lam) is accumulated bottom-up through the stack with the
// hyperbolic interface recursion
//
//	T_j = (T_{j+1} + rho_j*tanh(lam*h_j)) / (1 + T_{j+1}*tanh(lam*h_j)/rho_j)
//
// written as a plain loop over the layer arrays. tanh saturates instead of
// overflowing, so lam*h spanning machine range is safe. Limits: T -> rhoN as
// lam -> 0 (DC), T -> rho1 as lam -> inf; a zero-thickness or equal-resistivity
// interface drops out of the recursion exactly.

// Kernel evaluates the resistivity transform T(lam) [ohm.m] at radial
// wavenumber lam [1/m]. Pure function of the stack; safe for concurrent use.
func (ls *LayerStack) Kernel(lam float64) float64 {
	n := len(ls.rho)
	t := ls.rho[n-1] // basal half-space
	for j := n - 2; j >= 0; j-- {
		th := math.Tanh(lam * ls.h[j])
		t = (t + ls.rho[j]*th) / (1. + t*th/ls.rho[j])
	}
	return t
}

// KernelMany evaluates the transform across a set of wavenumbers, filling
// dst (allocated when nil). Filters hand whole abscissa sets here.
func (ls *LayerStack) KernelMany(lams, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(lams))
	}
	for i, lam := range lams {
		dst[i] = ls.Kernel(lam)
	}
	return dst
}

// KernelFunc adapts the stack to the callable form consumed by the Hankel
// transform engines.
func (ls *LayerStack) KernelFunc() func(float64) float64 {
	return func(lam float64) float64 { return ls.Kernel(lam) }
}

package earth

import (
	"math"
	"math/rand"
	"testing"
)

func mustStack(t *testing.T, rho, h []float64) *LayerStack {
	t.Helper()
	ls, err := New(rho, h)
	if err != nil {
		t.Fatalf("stack: %v", err)
	}
	return ls
}

func TestKernelHomogeneousIsConstant(t *testing.T) {
	ls := mustStack(t, []float64{123.4}, nil)
	for _, lam := range []float64{1e-8, 1e-4, 1., 1e4, 1e8} {
		if got := ls.Kernel(lam); math.Abs(got-123.4) > 1e-12 {
			t.Fatalf("half-space kernel at lam=%g: got %g", lam, got)
		}
	}
}

func TestKernelLimits(t *testing.T) {
	ls := mustStack(t, []float64{400., 50., 2000.}, []float64{8., 12.})
	if got := ls.Kernel(1e-9); math.Abs(got-2000.)/2000. > 1e-6 {
		t.Fatalf("DC limit: got %g, want ~rhoN=2000", got)
	}
	if got := ls.Kernel(1e6); math.Abs(got-400.)/400. > 1e-6 {
		t.Fatalf("high-wavenumber limit: got %g, want ~rho1=400", got)
	}
}

func TestKernelVanishingLayerCollapses(t *testing.T) {
	full := mustStack(t, []float64{400., 50., 2000.}, []float64{1e-10, 12.})
	reduced := mustStack(t, []float64{50., 2000.}, []float64{12.})
	for _, lam := range []float64{1e-3, 1e-2, .1, 1., 10.} {
		a, b := full.Kernel(lam), reduced.Kernel(lam)
		if math.Abs(a-b)/b > 1e-7 {
			t.Fatalf("lam=%g: full %g vs reduced %g", lam, a, b)
		}
	}
}

func TestKernelEqualResistivityLayersMerge(t *testing.T) {
	split := mustStack(t, []float64{100., 100., 10.}, []float64{3., 7.})
	merged := mustStack(t, []float64{100., 10.}, []float64{10.})
	for _, lam := range []float64{1e-3, .05, .3, 2., 50.} {
		a, b := split.Kernel(lam), merged.Kernel(lam)
		if math.Abs(a-b)/b > 1e-12 {
			t.Fatalf("lam=%g: split %g vs merged %g", lam, a, b)
		}
	}
}

func TestKernelBoundedByLayerResistivities(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		rho := make([]float64, n)
		h := make([]float64, n-1)
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := range rho {
			rho[i] = math.Pow(10., -1.+5.*rng.Float64()) // 0.1 to 10000 ohm.m
			lo = math.Min(lo, rho[i])
			hi = math.Max(hi, rho[i])
		}
		for i := range h {
			h[i] = math.Pow(10., -1.+3.*rng.Float64()) // 0.1 to 100 m
		}
		ls := mustStack(t, rho, h)
		for _, lam := range []float64{1e-6, 1e-3, .1, 10., 1e4} {
			k := ls.Kernel(lam)
			if k < lo*(1.-1e-12) || k > hi*(1.+1e-12) {
				t.Fatalf("trial %d lam=%g: kernel %g outside [%g,%g]", trial, lam, k, lo, hi)
			}
			if math.IsNaN(k) || math.IsInf(k, 0) {
				t.Fatalf("trial %d lam=%g: non-finite kernel", trial, lam)
			}
		}
	}
}

func TestKernelManyMatchesScalar(t *testing.T) {
	ls := mustStack(t, []float64{400., 50., 400., 200.}, []float64{8., 8., 4.})
	lams := []float64{1e-4, 1e-2, 1., 100.}
	got := ls.KernelMany(lams, nil)
	for i, lam := range lams {
		if got[i] != ls.Kernel(lam) {
			t.Fatalf("KernelMany[%d] = %g != Kernel(%g) = %g", i, got[i], lam, ls.Kernel(lam))
		}
	}
}

func TestKernelScaleInvariance(t *testing.T) {
	// T_s(lam) with thicknesses scaled by s equals T(s*lam) of the original.
	ls := mustStack(t, []float64{400., 50., 2000.}, []float64{8., 12.})
	s := 3.5
	scaled := mustStack(t, []float64{400., 50., 2000.}, []float64{8. * s, 12. * s})
	for _, lam := range []float64{1e-3, .01, .1, 1.} {
		a, b := scaled.Kernel(lam), ls.Kernel(lam*s)
		if math.Abs(a-b)/b > 1e-12 {
			t.Fatalf("lam=%g: scaled %g vs shifted %g", lam, a, b)
		}
	}
}

package hankel

/*
digital linear filter for the J0 Hankel transform
designed by damped least squares over analytic transform pairs
ref: Ghosh, D.P., 1971. The application of linear filter theory to the direct interpretation of geoelectrical resistivity sounding measurements. Geophysical Prospecting 19(2). pp.192-217.
     Kong, F.N., 2007. Hankel transform filters for dipole antenna radiation in a conductive medium. Geophysical Prospecting 55(1). pp.83-89.
*/

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// default filter: 61 points spanning 1e-4 to 1e2, ten per decade
const (
	fltLogLo     = -4.
	fltLogHi     = 2.
	fltPerDecade = 10
)

var (
	fltOnce sync.Once
	fltDef  *Filter
)

// NewFilter returns the process-wide default filter, designing it on first
// call. The table is immutable afterwards and shared freely across
// goroutines.
func NewFilter() *Filter {
	fltOnce.Do(func() {
		f, err := DesignFilter(fltLogLo, fltLogHi, fltPerDecade)
		if err != nil {
			panic(fmt.Sprintf("hankel.NewFilter: %v", err))
		}
		fltDef = f
	})
	return fltDef
}

// analytic J0 transform pairs used to train the filter; every kern is a
// smooth decaying pseudo-kernel with a known potential
//
//	int_0^inf kern(lam) J0(lam*r) dlam = pot(r)
var fltPairs = []struct {
	kern func(float64) float64
	pot  func(float64) float64
}{
	{ // Lipschitz integral, a=1
		func(lam float64) float64 { return math.Exp(-lam) },
		func(r float64) float64 { return 1. / math.Sqrt(1.+r*r) },
	},
	{ // first a-derivative
		func(lam float64) float64 { return lam * math.Exp(-lam) },
		func(r float64) float64 { return math.Pow(1.+r*r, -1.5) },
	},
	{ // second a-derivative
		func(lam float64) float64 { return lam * lam * math.Exp(-lam) },
		func(r float64) float64 { return (2. - r*r) * math.Pow(1.+r*r, -2.5) },
	},
	{ // Gaussian (Weber integral)
		func(lam float64) float64 { return lam * math.Exp(-lam*lam) },
		func(r float64) float64 { return math.Exp(-r*r/4.) / 2. },
	},
}

// DesignFilter builds a J0 filter with abscissae 10^logLo..10^logHi at
// perDecade points per decade. The weights solve a Tikhonov-damped
// least-squares fit of the filter to the analytic pairs over a log sweep of
// offsets, then get normalized so a constant kernel transforms exactly
// (sum of weights = 1, matching int_0^inf J0(lam*r) dlam = 1/r).
func DesignFilter(logLo, logHi float64, perDecade int) (*Filter, error) {
	if logHi <= logLo || perDecade < 1 {
		return nil, fmt.Errorf("hankel.DesignFilter: bad span [%g,%g] x %d", logLo, logHi, perDecade)
	}
	n := int(math.Round((logHi-logLo)*float64(perDecade))) + 1
	base := make([]float64, n)
	for i := range base {
		base[i] = math.Pow(10., logLo+float64(i)/float64(perDecade))
	}

	// log sweep of design offsets; every abscissa/offset ratio crosses the
	// filter band many times
	const nr, rLo, rHi = 120, .05, 20.
	rs := make([]float64, nr)
	for j := range rs {
		rs[j] = rLo * math.Pow(rHi/rLo, float64(j)/float64(nr-1))
	}

	// rows scaled by r so every equation is O(1):
	//   sum_i w_i kern(b_i/r) = r*pot(r)
	const damp, unity = 1e-7, 100.
	m := len(fltPairs)*nr + 1 + n
	a := mat.NewDense(m, n, nil)
	rhs := mat.NewVecDense(m, nil)
	row := 0
	for _, p := range fltPairs {
		for _, r := range rs {
			for i, b := range base {
				a.Set(row, i, p.kern(b/r))
			}
			rhs.SetVec(row, r*p.pot(r))
			row++
		}
	}
	for i := 0; i < n; i++ { // heavily weighted unit-sum row: int J0(lam*r) dlam = 1/r
		a.Set(row, i, unity)
	}
	rhs.SetVec(row, unity)
	row++
	for i := 0; i < n; i++ { // Tikhonov rows keep the weights tame
		a.Set(row, i, damp)
		row++
	}

	var qr mat.QR
	qr.Factorize(a)
	var wv mat.VecDense
	if err := qr.SolveVecTo(&wv, false, rhs); err != nil {
		return nil, fmt.Errorf("hankel.DesignFilter: least squares failed: %v", err)
	}

	w, sum := make([]float64, n), 0.
	for i := range w {
		w[i] = wv.AtVec(i)
		sum += w[i]
	}
	if math.Abs(sum) < 1e-3 || math.IsNaN(sum) {
		return nil, fmt.Errorf("hankel.DesignFilter: degenerate weight sum %g", sum)
	}
	for i := range w {
		w[i] /= sum
	}

	f := &Filter{base: base, w: w}
	if err := fltVerify(f); err != nil {
		return nil, err
	}
	return f, nil
}

// fltVerify spot-checks the designed table against the training identities at
// offsets it was not fit to.
func fltVerify(f *Filter) error {
	for _, r := range []float64{.11, 1.3, 7.7} {
		for k, p := range fltPairs {
			got, err := f.Potential(r, p.kern)
			if err != nil {
				return fmt.Errorf("hankel.fltVerify: %v", err)
			}
			want := p.pot(r)
			if d := math.Abs(got - want); d > 1e-4*(math.Abs(want)+1.) {
				return fmt.Errorf("hankel.fltVerify: pair %d at r=%g off by %g", k, r, d)
			}
		}
	}
	return nil
}

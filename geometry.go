package dcres

import (
	"fmt"
	"math"

	"github.com/maseology/mmaths"
)

const minSep = 1e-6 // [m] electrodes closer than this are treated as coincident

func dist(p, q Electrode) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// GeometricFactor returns G [m] satisfying rhoa = G*V/I over a homogeneous
// half-space:
//
//	G = 2 pi / (1/AM - 1/BM - 1/AN + 1/BN)
//
// remote electrodes drop their reciprocal terms exactly.
func (c *Config) GeometricFactor() (float64, error) {
	var rs [4]float64
	for i, p := range [4][2]Electrode{{c.A, c.M}, {c.B, c.M}, {c.A, c.N}, {c.B, c.N}} {
		if p[0].Inf || p[1].Inf {
			continue
		}
		d := dist(p[0], p[1])
		if d < minSep {
			return 0., fmt.Errorf("%w: zero-offset pairing", ErrDegenerateElectrode)
		}
		rs[i] = 1. / d
	}
	den := rs[0] - rs[1] - rs[2] + rs[3]
	mx := math.Max(math.Max(rs[0], rs[1]), math.Max(rs[2], rs[3]))
	if mx == 0. {
		return 0., fmt.Errorf("%w: no finite current-potential pairing", ErrDegenerateGeometry)
	}
	if math.Abs(den) < 1e-12*mx {
		return 0., fmt.Errorf("%w: reciprocal distances cancel", ErrDegenerateGeometry)
	}
	return 2. * math.Pi / den, nil
}

// Spread returns the half-separations AB/2 and MN/2 [m], NaN where the pair
// includes a remote electrode.
func (c *Config) Spread() (ab2, mn2 float64) {
	ab2, mn2 = math.NaN(), math.NaN()
	if !c.A.Inf && !c.B.Inf {
		ab2 = dist(c.A, c.B) / 2.
	}
	if !c.M.Inf && !c.N.Inf {
		mn2 = dist(c.M, c.N) / 2.
	}
	return
}

// LogSpacing sweeps n half-spacings log-uniformly from lo to hi [m], the
// usual expansion schedule for a sounding.
func LogSpacing(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	s := make([]float64, n)
	for i := range s {
		s[i] = mmaths.LogLinearTransform(lo, hi, float64(i)/float64(n-1))
	}
	return s
}

package dcres

import (
	"fmt"
	"math"
)

// stake places an electrode at signed distance d [m] from (cx,cy) along
// azimuth az [rad].
func stake(cx, cy, az, d float64) Electrode {
	return Electrode{X: cx + d*math.Cos(az), Y: cy + d*math.Sin(az)}
}

// NewSchlumberger lays out a symmetric expansion about (cx,cy) along azimuth
// az [rad]: current stakes at every +-ab2, potential stakes fixed at +-mn2.
func NewSchlumberger(ab2s []float64, mn2, cx, cy, az float64) *Survey {
	s := Survey{Nam: "sounding", Arr: Schlumberger, Cfgs: make([]Config, len(ab2s))}
	for i, ab2 := range ab2s {
		s.Cfgs[i] = Config{
			A: stake(cx, cy, az, -ab2),
			B: stake(cx, cy, az, ab2),
			M: stake(cx, cy, az, -mn2),
			N: stake(cx, cy, az, mn2),
		}
	}
	return &s
}

// NewSchlumbergerSchedule is NewSchlumberger with a potential-dipole
// expansion schedule paired to the current spacings, the usual field
// practice once the voltage drops below instrument resolution.
func NewSchlumbergerSchedule(ab2s, mn2s []float64, cx, cy, az float64) (*Survey, error) {
	if len(ab2s) != len(mn2s) {
		return nil, fmt.Errorf("dcres: spacing schedule mismatch: %d AB/2 vs %d MN/2", len(ab2s), len(mn2s))
	}
	s := Survey{Nam: "sounding", Arr: Schlumberger, Cfgs: make([]Config, len(ab2s))}
	for i, ab2 := range ab2s {
		s.Cfgs[i] = Config{
			A: stake(cx, cy, az, -ab2),
			B: stake(cx, cy, az, ab2),
			M: stake(cx, cy, az, -mn2s[i]),
			N: stake(cx, cy, az, mn2s[i]),
		}
	}
	return &s, nil
}

// NewWenner lays out equal-spaced A M N B configurations, one per spacing a.
func NewWenner(as []float64, cx, cy, az float64) *Survey {
	s := Survey{Nam: "sounding", Arr: Wenner, Cfgs: make([]Config, len(as))}
	for i, a := range as {
		s.Cfgs[i] = Config{
			A: stake(cx, cy, az, -1.5*a),
			M: stake(cx, cy, az, -.5*a),
			N: stake(cx, cy, az, .5*a),
			B: stake(cx, cy, az, 1.5*a),
		}
	}
	return &s
}

// NewDipoleDipole steps a receiver dipole of length a away from the
// transmitter dipole by n*a for each separation index in ns.
func NewDipoleDipole(a float64, ns []int, cx, cy, az float64) *Survey {
	s := Survey{Nam: "profile", Arr: DipoleDipole, Cfgs: make([]Config, len(ns))}
	for i, n := range ns {
		fn := float64(n)
		s.Cfgs[i] = Config{
			B: stake(cx, cy, az, -a),
			A: stake(cx, cy, az, 0.),
			M: stake(cx, cy, az, fn*a),
			N: stake(cx, cy, az, (fn+1.)*a),
		}
	}
	return &s
}

// NewPoleDipole is NewDipoleDipole with the return current electrode remote.
func NewPoleDipole(a float64, ns []int, cx, cy, az float64) *Survey {
	s := Survey{Nam: "profile", Arr: PoleDipole, Cfgs: make([]Config, len(ns))}
	for i, n := range ns {
		fn := float64(n)
		s.Cfgs[i] = Config{
			B: Electrode{Inf: true},
			A: stake(cx, cy, az, 0.),
			M: stake(cx, cy, az, fn*a),
			N: stake(cx, cy, az, (fn+1.)*a),
		}
	}
	return &s
}

// NewPolePole keeps one current and one potential electrode, the remaining
// pair remote, one configuration per offset a.
func NewPolePole(as []float64, cx, cy, az float64) *Survey {
	s := Survey{Nam: "profile", Arr: PolePole, Cfgs: make([]Config, len(as))}
	for i, a := range as {
		s.Cfgs[i] = Config{
			A: stake(cx, cy, az, 0.),
			B: Electrode{Inf: true},
			M: stake(cx, cy, az, a),
			N: Electrode{Inf: true},
		}
	}
	return &s
}

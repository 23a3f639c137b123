package dcres

import (
	"fmt"
	"math"

	"github.com/maseology/dcres/earth"
	"github.com/maseology/dcres/hankel"
)

// Evaluator marries a layered model to a survey and a Hankel transform
// engine. Engines carry immutable tables, so a single Evaluator serves
// concurrent forward runs.
type Evaluator struct {
	Stack *earth.LayerStack  // the layered model
	Srv   *Survey            // electrode layout
	Eng   hankel.Transformer // transform engine, shared
	I     float64            // injected current [A]
}

// NewEvaluator validates both halves and wires the default filter engine
// with a unit injection current. Swap Eng for hankel.Quad to cross-check a
// run against direct quadrature.
func NewEvaluator(ls *earth.LayerStack, s *Survey) (*Evaluator, error) {
	if ls == nil {
		return nil, fmt.Errorf("%w: nil layer stack", earth.ErrInvalidModel)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil survey", ErrDegenerateGeometry)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &Evaluator{Stack: ls, Srv: s, Eng: hankel.NewFilter(), I: 1.}, nil
}

// ConfigResponse forward-models one configuration, returning the voltage
// across the potential pair for the injected current and the apparent
// resistivity. Superposition over the four source-receiver pairings:
//
//	dV = (I/2pi) * (U(AM) - U(BM) - U(AN) + U(BN))
//
// with U the transform of the resistivity kernel; remote electrodes drop
// their terms. rhoa = G*dV/I reduces to the true resistivity over a
// homogeneous half-space.
func (ev *Evaluator) ConfigResponse(c *Config) (dv, rhoa float64, err error) {
	g, err := c.GeometricFactor()
	if err != nil {
		return 0., 0., err
	}
	kern := ev.Stack.KernelFunc()
	du := 0.
	for _, p := range [4]struct {
		a, b Electrode
		sgn  float64
	}{
		{c.A, c.M, 1.}, {c.B, c.M, -1.}, {c.A, c.N, -1.}, {c.B, c.N, 1.},
	} {
		if p.a.Inf || p.b.Inf {
			continue
		}
		u, err := ev.Eng.Potential(dist(p.a, p.b), kern)
		if err != nil {
			return 0., 0., err
		}
		du += p.sgn * u
	}
	dv = ev.I * du / (2. * math.Pi)
	rhoa = g * du / (2. * math.Pi)
	return dv, rhoa, nil
}

package earth

import (
	"fmt"
	"math"
)

// Mapping converts an abstract parameter vector to physical layer
// resistivities. Kept as a small strategy interface so an inversion scheme
// can later swap in constrained or spatially-coupled mappings without
// touching the kernel.
type Mapping interface {
	Apply(u []float64) ([]float64, error)
	Name() string
}

// IdentityMapping passes parameters through as resistivities [ohm.m].
type IdentityMapping struct{}

func (IdentityMapping) Name() string { return "identity" }

func (IdentityMapping) Apply(u []float64) ([]float64, error) {
	out := make([]float64, len(u))
	for i, v := range u {
		if v <= 0. || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: identity mapping given non-positive resistivity %g at %d", ErrInvalidModel, v, i)
		}
		out[i] = v
	}
	return out, nil
}

// LogMapping interprets parameters as natural logs of resistivity, keeping
// any real-valued parameter vector physically admissible.
type LogMapping struct{}

func (LogMapping) Name() string { return "log" }

func (LogMapping) Apply(u []float64) ([]float64, error) {
	out := make([]float64, len(u))
	for i, v := range u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: log mapping given non-finite parameter at %d", ErrInvalidModel, i)
		}
		out[i] = math.Exp(v)
	}
	return out, nil
}

// MappingByName resolves the mappings understood by scenario files.
func MappingByName(name string) (Mapping, error) {
	switch name {
	case "", "identity":
		return IdentityMapping{}, nil
	case "log":
		return LogMapping{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown mapping %q", ErrInvalidModel, name)
	}
}

// WithResistivities rebuilds a stack keeping thicknesses, replacing layer
// resistivities with mapping(u). Parameter count must equal the layer count.
func (ls *LayerStack) WithResistivities(m Mapping, u []float64) (*LayerStack, error) {
	if len(u) != ls.N() {
		return nil, fmt.Errorf("%w: %d parameters for %d layers", ErrInvalidModel, len(u), ls.N())
	}
	rhos, err := m.Apply(u)
	if err != nil {
		return nil, err
	}
	return New(rhos, ls.h)
}

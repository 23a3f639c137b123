// Package earth holds the 1D layered-earth resistivity model: an ordered
// stack of uniform horizontal layers over a semi-infinite basal half-space,
// the parameter mappings used to build it, and the resistivity-transform
// kernel evaluated against it.
package earth

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrInvalidModel flags a malformed layer stack or mapping input. Rejected
// before any computation.
var ErrInvalidModel = errors.New("earth: invalid model")

// LayerStack is an immutable stack of N resistive layers; the last layer is
// the semi-infinite half-space (its thickness is implied, not stored).
type LayerStack struct {
	rho []float64 // layer resistivities [ohm.m], surface down
	h   []float64 // layer thicknesses [m], length N-1
}

// New builds and validates a layer stack from resistivities (length N) and
// thicknesses (length N-1, omitted entirely for a homogeneous half-space).
func New(rhos, hs []float64) (*LayerStack, error) {
	n := len(rhos)
	if n < 1 {
		return nil, fmt.Errorf("%w: no layers given", ErrInvalidModel)
	}
	if len(hs) != n-1 {
		return nil, fmt.Errorf("%w: %d thicknesses given for %d layers (need %d)", ErrInvalidModel, len(hs), n, n-1)
	}
	for i, r := range rhos {
		if r <= 0. || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: layer %d resistivity %g", ErrInvalidModel, i, r)
		}
	}
	for i, t := range hs {
		if t <= 0. || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: layer %d thickness %g", ErrInvalidModel, i, t)
		}
	}
	ls := LayerStack{rho: append([]float64{}, rhos...), h: append([]float64{}, hs...)}
	return &ls, nil
}

// N returns the number of layers, basal half-space included.
func (ls *LayerStack) N() int { return len(ls.rho) }

// Rho returns the resistivity of layer i (0 = surface layer).
func (ls *LayerStack) Rho(i int) float64 { return ls.rho[i] }

// H returns the thickness of layer i; panics for the basal half-space.
func (ls *LayerStack) H(i int) float64 { return ls.h[i] }

// Rho1 returns the surface-layer resistivity.
func (ls *LayerStack) Rho1() float64 { return ls.rho[0] }

// RhoN returns the basal half-space resistivity (the DC limit of the kernel).
func (ls *LayerStack) RhoN() float64 { return ls.rho[len(ls.rho)-1] }

// DepthTop returns the depth to the top of layer i.
func (ls *LayerStack) DepthTop(i int) float64 {
	d := 0.
	for j := 0; j < i; j++ {
		d += ls.h[j]
	}
	return d
}

// IsLast reports whether layer i is the semi-infinite half-space.
func (ls *LayerStack) IsLast(i int) bool { return i == len(ls.rho)-1 }

// Resistivities returns a copy of the layer resistivities.
func (ls *LayerStack) Resistivities() []float64 { return append([]float64{}, ls.rho...) }

// Thicknesses returns a copy of the stored layer thicknesses.
func (ls *LayerStack) Thicknesses() []float64 { return append([]float64{}, ls.h...) }

type gobStack struct{ Rho, H []float64 }

// SaveGob snapshots the stack.
func (ls *LayerStack) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" LayerStack.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(gobStack{ls.rho, ls.h}); err != nil {
		return fmt.Errorf(" LayerStack.SaveGob %v", err)
	}
	return nil
}

// LoadGob recovers a stack saved with SaveGob, re-validating on load.
func LoadGob(fp string) (*LayerStack, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var g gobStack
	if err := gob.NewDecoder(f).Decode(&g); err != nil {
		return nil, fmt.Errorf(" earth.LoadGob %v", err)
	}
	return New(g.Rho, g.H)
}

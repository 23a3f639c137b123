package dcres

import (
	"fmt"

	"github.com/maseology/dcres/earth"
	"github.com/maseology/mmaths"
)

// SampleSpace maps unit-hypercube draws to layered models for ensemble runs.
// Resistivities sample log-uniformly between bounds, spanning the decades a
// unit can plausibly cover; thicknesses stay fixed unless given bounds of
// their own.
type SampleSpace struct {
	RhoLo, RhoHi []float64 // per-layer resistivity bounds [ohm.m]
	H            []float64 // thicknesses [m], one fewer than layers
	HLo, HHi     []float64 // optional thickness bounds; nil keeps H fixed
}

// NewSampleSpace builds a sampler over explicit resistivity bounds.
func NewSampleSpace(rholo, rhohi, h []float64) (*SampleSpace, error) {
	if len(rholo) != len(rhohi) || len(rholo) == 0 {
		return nil, fmt.Errorf("dcres.NewSampleSpace: %d lower vs %d upper resistivity bounds", len(rholo), len(rhohi))
	}
	if len(h) != len(rholo)-1 {
		return nil, fmt.Errorf("dcres.NewSampleSpace: %d layers need %d thicknesses, have %d", len(rholo), len(rholo)-1, len(h))
	}
	for j := range rholo {
		if !(rholo[j] > 0.) || !(rhohi[j] > rholo[j]) {
			return nil, fmt.Errorf("dcres.NewSampleSpace: bad resistivity bounds [%g,%g] at layer %d", rholo[j], rhohi[j], j)
		}
	}
	for j, hj := range h {
		if !(hj > 0.) {
			return nil, fmt.Errorf("dcres.NewSampleSpace: bad thickness %g at layer %d", hj, j)
		}
	}
	return &SampleSpace{RhoLo: rholo, RhoHi: rhohi, H: h}, nil
}

// NewSampleSpaceMaterials bounds each layer by its unit's published
// resistivity spread.
func NewSampleSpaceMaterials(ms []Material, h []float64) (*SampleSpace, error) {
	lo, hi := make([]float64, len(ms)), make([]float64, len(ms))
	for j, m := range ms {
		lo[j], hi[j] = m.RhoRange()
	}
	return NewSampleSpace(lo, hi, h)
}

// WithThicknessBounds frees the layer thicknesses to sample linearly between
// bounds.
func (sp *SampleSpace) WithThicknessBounds(hlo, hhi []float64) (*SampleSpace, error) {
	if len(hlo) != len(sp.H) || len(hhi) != len(sp.H) {
		return nil, fmt.Errorf("dcres.SampleSpace: thickness bounds need %d entries, have %d and %d", len(sp.H), len(hlo), len(hhi))
	}
	for j := range hlo {
		if !(hlo[j] > 0.) || !(hhi[j] > hlo[j]) {
			return nil, fmt.Errorf("dcres.SampleSpace: bad thickness bounds [%g,%g] at layer %d", hlo[j], hhi[j], j)
		}
	}
	sp.HLo, sp.HHi = hlo, hhi
	return sp, nil
}

// Dim returns the unit-hypercube dimension Realize expects.
func (sp *SampleSpace) Dim() int {
	if len(sp.HLo) > 0 {
		return len(sp.RhoLo) + len(sp.H)
	}
	return len(sp.RhoLo)
}

// Realize maps one draw to a validated layered model: resistivities first,
// then thicknesses when freed.
func (sp *SampleSpace) Realize(u []float64) (*earth.LayerStack, error) {
	if len(u) != sp.Dim() {
		return nil, fmt.Errorf("dcres.SampleSpace.Realize: draw dimension %d, need %d", len(u), sp.Dim())
	}
	n := len(sp.RhoLo)
	rho := make([]float64, n)
	for j := 0; j < n; j++ {
		rho[j] = mmaths.LogLinearTransform(sp.RhoLo[j], sp.RhoHi[j], u[j])
	}
	h := make([]float64, len(sp.H))
	copy(h, sp.H)
	if len(sp.HLo) > 0 {
		for j := range h {
			h[j] = mmaths.LinearTransform(sp.HLo[j], sp.HHi[j], u[n+j])
		}
	}
	return earth.New(rho, h)
}

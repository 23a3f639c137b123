package dcres

/*
representative electrical resistivities of common hydrostratigraphic units
ref: Palacky, G.J., 1988. Resistivity characteristics of geologic targets. in: Nabighian, M.N. (ed.) Electromagnetic Methods in Applied Geophysics. SEG. pp.53-129.
*/

import (
	"fmt"
	"strings"
)

// Material enumerates common subsurface units, used to rough in layered
// models and to bound Monte Carlo resistivity sampling.
type Material int

const (
	Clay Material = iota
	Silt
	Till
	Sand
	Gravel
	Shale
	Sandstone
	Limestone
	Granite
	Freshwater
	Seawater
)

func (m Material) String() string {
	switch m {
	case Clay:
		return "clay"
	case Silt:
		return "silt"
	case Till:
		return "till"
	case Sand:
		return "sand"
	case Gravel:
		return "gravel"
	case Shale:
		return "shale"
	case Sandstone:
		return "sandstone"
	case Limestone:
		return "limestone"
	case Granite:
		return "granite"
	case Freshwater:
		return "freshwater"
	case Seawater:
		return "seawater"
	default:
		return "unknown"
	}
}

// Rho returns a representative resistivity [ohm.m].
func (m Material) Rho() float64 {
	switch m {
	case Clay:
		return 20.
	case Silt:
		return 50.
	case Till:
		return 200.
	case Sand:
		return 400.
	case Gravel:
		return 2000.
	case Shale:
		return 70.
	case Sandstone:
		return 800.
	case Limestone:
		return 600.
	case Granite:
		return 5000.
	case Freshwater:
		return 60.
	case Seawater:
		return .25
	default:
		panic("Material.Rho: unknown material")
	}
}

// RhoRange returns a plausible resistivity spread [ohm.m] for sampling.
func (m Material) RhoRange() (lo, hi float64) {
	switch m {
	case Clay:
		return 1., 100.
	case Silt:
		return 10., 200.
	case Till:
		return 20., 1000.
	case Sand:
		return 100., 1500.
	case Gravel:
		return 500., 10000.
	case Shale:
		return 10., 1000.
	case Sandstone:
		return 50., 5000.
	case Limestone:
		return 100., 10000.
	case Granite:
		return 300., 30000.
	case Freshwater:
		return 10., 100.
	case Seawater:
		return .1, 1.
	default:
		panic("Material.RhoRange: unknown material")
	}
}

// MaterialByName resolves a scenario-file unit name.
func MaterialByName(s string) (Material, error) {
	for m := Clay; m <= Seawater; m++ {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("dcres: unknown material %q", s)
}

package dcres

import (
	"fmt"
	"strings"
)

// ArrayType enumerates the standard colinear electrode layouts supported by
// the survey builders.
type ArrayType int

const (
	Schlumberger ArrayType = iota
	Wenner
	DipoleDipole
	PoleDipole
	PolePole
	General // imported layouts that follow no template
)

func (a ArrayType) String() string {
	switch a {
	case Schlumberger:
		return "Schlumberger"
	case Wenner:
		return "Wenner"
	case DipoleDipole:
		return "dipole-dipole"
	case PoleDipole:
		return "pole-dipole"
	case PolePole:
		return "pole-pole"
	case General:
		return "general"
	default:
		return "unknown"
	}
}

// ArrayTypeByName resolves a scenario-file array name. An empty name
// defaults to Schlumberger.
func ArrayTypeByName(s string) (ArrayType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "schlumberger":
		return Schlumberger, nil
	case "wenner":
		return Wenner, nil
	case "dipole-dipole", "dipoledipole":
		return DipoleDipole, nil
	case "pole-dipole", "poledipole":
		return PoleDipole, nil
	case "pole-pole", "polepole":
		return PolePole, nil
	default:
		return 0, fmt.Errorf("dcres: unknown array type %q", s)
	}
}

package dcres

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateElectrode reports coincident electrodes: a collapsed
	// current or potential pair, or a current stake placed on a potential
	// stake where the half-space potential is singular.
	ErrDegenerateElectrode = errors.New("dcres: coincident current and potential electrodes")
	// ErrDegenerateGeometry reports an electrode layout whose geometric
	// factor is undefined, either from cancelling reciprocal distances or
	// from a fully remote electrode pair.
	ErrDegenerateGeometry = errors.New("dcres: degenerate array geometry")
)

// ConfigError ties a failure to the survey configuration that produced it.
type ConfigError struct {
	Idx int
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dcres: config %d: %v", e.Idx, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

package dcres

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Electrode is a stake position on the ground surface. Remote electrodes
// (pole arrays) are flagged rather than given a large coordinate so their
// potential terms drop out exactly.
type Electrode struct {
	X, Y float64 // plan position [m]
	Inf  bool    // placed at effective infinity
}

// Config is one four-electrode reading: current injected across A,B and
// potential read across M,N.
type Config struct {
	A, B Electrode // current (transmitter) pair
	M, N Electrode // potential (receiver) pair
}

// Survey is an ordered set of electrode configurations measured over a
// common sounding centre.
type Survey struct {
	Cfgs []Config
	Nam  string
	Arr  ArrayType
}

// NConfig returns the number of readings in the survey.
func (s *Survey) NConfig() int { return len(s.Cfgs) }

// Check validates every configuration, returning the first failure tagged
// with its position in the survey.
func (s *Survey) Check() error {
	if len(s.Cfgs) == 0 {
		return fmt.Errorf("%w: empty survey", ErrDegenerateGeometry)
	}
	for i := range s.Cfgs {
		if err := s.Cfgs[i].Check(); err != nil {
			return &ConfigError{Idx: i, Err: err}
		}
	}
	return nil
}

// Check validates a single configuration: a usable current pair, a usable
// potential pair, no transmitter stake on a receiver stake, and a finite
// geometric factor.
func (c *Config) Check() error {
	if c.A.Inf && c.B.Inf {
		return fmt.Errorf("%w: both current electrodes remote", ErrDegenerateGeometry)
	}
	if c.M.Inf && c.N.Inf {
		return fmt.Errorf("%w: both potential electrodes remote", ErrDegenerateGeometry)
	}
	if !c.A.Inf && !c.B.Inf && dist(c.A, c.B) < minSep {
		return fmt.Errorf("%w: current electrodes coincide", ErrDegenerateElectrode)
	}
	if !c.M.Inf && !c.N.Inf && dist(c.M, c.N) < minSep {
		return fmt.Errorf("%w: potential electrodes coincide", ErrDegenerateElectrode)
	}
	for _, p := range []struct {
		c, p Electrode
		lbl  string
	}{
		{c.A, c.M, "A-M"}, {c.A, c.N, "A-N"},
		{c.B, c.M, "B-M"}, {c.B, c.N, "B-N"},
	} {
		if p.c.Inf || p.p.Inf {
			continue
		}
		if dist(p.c, p.p) < minSep {
			return fmt.Errorf("%w: %s separation below %g m", ErrDegenerateElectrode, p.lbl, minSep)
		}
	}
	if _, err := c.GeometricFactor(); err != nil {
		return err
	}
	return nil
}

// Checkandprint validates the survey and prints a one-line summary per the
// usual pre-run sanity pass.
func (s *Survey) Checkandprint() error {
	if err := s.Check(); err != nil {
		return err
	}
	a2l, _ := s.Cfgs[0].Spread()
	a2r, _ := s.Cfgs[len(s.Cfgs)-1].Spread()
	fmt.Printf(" %s: %s array, %d configurations, AB/2 %.4g to %.4g m\n", s.Nam, s.Arr, len(s.Cfgs), a2l, a2r)
	return nil
}

// SaveGob writes the survey to path.
func (s *Survey) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" Survey.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf(" Survey.SaveGob %v", err)
	}
	return nil
}

// LoadGobSurvey reads a survey written by SaveGob and re-validates it.
func LoadGobSurvey(fp string) (*Survey, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" LoadGobSurvey %v", err)
	}
	defer f.Close()
	var s Survey
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf(" LoadGobSurvey %v", err)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &s, nil
}

package dcres

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSchlumbergerLayout(t *testing.T) {
	s := NewSchlumberger([]float64{10., 20.}, 2., 100., 50., 0.)
	if s.NConfig() != 2 || s.Arr != Schlumberger {
		t.Fatalf("survey shape: %d configs, %v array", s.NConfig(), s.Arr)
	}
	c := s.Cfgs[1]
	if c.A.X != 80. || c.B.X != 120. || c.M.X != 98. || c.N.X != 102. {
		t.Fatalf("stake x: A=%g B=%g M=%g N=%g", c.A.X, c.B.X, c.M.X, c.N.X)
	}
	if c.A.Y != 50. || c.B.Y != 50. {
		t.Fatalf("stake y off line: A=%g B=%g", c.A.Y, c.B.Y)
	}

	// quarter-turn azimuth runs the line up the y axis
	sy := NewSchlumberger([]float64{10.}, 2., 0., 0., math.Pi/2.)
	c = sy.Cfgs[0]
	if math.Abs(c.A.Y+10.) > 1e-12 || math.Abs(c.B.Y-10.) > 1e-12 || math.Abs(c.A.X) > 1e-9 {
		t.Fatalf("rotated stakes: A=(%g,%g) B=(%g,%g)", c.A.X, c.A.Y, c.B.X, c.B.Y)
	}

	ab2, mn2 := s.Cfgs[0].Spread()
	if math.Abs(ab2-10.) > 1e-12 || math.Abs(mn2-2.) > 1e-12 {
		t.Fatalf("spread: ab2=%g mn2=%g", ab2, mn2)
	}
}

func TestGeometricFactors(t *testing.T) {
	chk := func(c Config, want float64, lbl string) {
		t.Helper()
		g, err := c.GeometricFactor()
		if err != nil {
			t.Fatalf("%s: %v", lbl, err)
		}
		if math.Abs(g-want) > 1e-9*math.Abs(want) {
			t.Fatalf("%s: G=%g want %g", lbl, g, want)
		}
	}

	// Wenner: G = 2 pi a
	a := 15.
	chk(NewWenner([]float64{a}, 0., 0., 0.).Cfgs[0], 2.*math.Pi*a, "wenner")

	// Schlumberger: G = pi (L^2 - m^2) / (2m)
	L, m := 40., 5.
	chk(NewSchlumberger([]float64{L}, m, 0., 0., 0.).Cfgs[0], math.Pi*(L*L-m*m)/(2.*m), "schlumberger")

	// dipole-dipole: G = pi n (n+1) (n+2) a
	n := 3
	chk(NewDipoleDipole(a, []int{n}, 0., 0., 0.).Cfgs[0], math.Pi*float64(n*(n+1)*(n+2))*a, "dipole-dipole")

	// pole-pole: G = 2 pi a
	chk(NewPolePole([]float64{a}, 0., 0., 0.).Cfgs[0], 2.*math.Pi*a, "pole-pole")

	// pole-dipole: G = 2 pi n (n+1) a
	chk(NewPoleDipole(a, []int{n}, 0., 0., 0.).Cfgs[0], 2.*math.Pi*float64(n*(n+1))*a, "pole-dipole")
}

func TestCheckRejectsDegenerateConfigs(t *testing.T) {
	// potential stake on a current stake
	s := NewSchlumberger([]float64{10.}, 10., 0., 0., 0.)
	if err := s.Check(); !errors.Is(err, ErrDegenerateElectrode) {
		t.Fatalf("coincident stakes: %v", err)
	}
	var ce *ConfigError
	if err := s.Check(); !errors.As(err, &ce) || ce.Idx != 0 {
		t.Fatalf("config tagging: %v", s.Check())
	}

	// collapsed current pair
	coinc := Survey{Cfgs: []Config{{
		A: Electrode{X: 5.}, B: Electrode{X: 5.},
		M: Electrode{X: 1.}, N: Electrode{X: 2.},
	}}}
	if err := coinc.Check(); !errors.Is(err, ErrDegenerateElectrode) {
		t.Fatalf("A on B: %v", err)
	}
	coinc.Cfgs[0] = Config{
		A: Electrode{X: 0.}, B: Electrode{X: 10.},
		M: Electrode{X: 4.}, N: Electrode{X: 4.},
	}
	if err := coinc.Check(); !errors.Is(err, ErrDegenerateElectrode) {
		t.Fatalf("M on N: %v", err)
	}

	// both current electrodes remote
	bad := Survey{Cfgs: []Config{{
		A: Electrode{Inf: true}, B: Electrode{Inf: true},
		M: Electrode{X: 1.}, N: Electrode{X: 2.},
	}}}
	if err := bad.Check(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("remote current pair: %v", err)
	}

	// receivers on the transmitter bisector: reciprocal distances cancel
	bisect := Survey{Cfgs: []Config{{
		A: Electrode{X: 0.}, B: Electrode{X: 10.},
		M: Electrode{X: 5., Y: 3.}, N: Electrode{X: 5., Y: -7.},
	}}}
	if err := bisect.Check(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("bisector layout: %v", err)
	}

	var empty Survey
	if err := empty.Check(); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("empty survey: %v", err)
	}
}

func TestSurveyGobRoundTrip(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "srv.gob")
	s := NewPoleDipole(7., []int{1, 2, 3}, 12., -4., .3)
	s.Nam = "line9"
	if err := s.SaveGob(fp); err != nil {
		t.Fatal(err)
	}
	s2, err := LoadGobSurvey(fp)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Nam != "line9" || s2.Arr != PoleDipole || s2.NConfig() != 3 {
		t.Fatalf("round trip: %+v", s2)
	}
	if !s2.Cfgs[2].B.Inf || s2.Cfgs[2].M.Inf {
		t.Fatal("remote flags lost")
	}
}

func TestLogSpacing(t *testing.T) {
	s := LogSpacing(5., 400., 29)
	if len(s) != 29 {
		t.Fatalf("count %d", len(s))
	}
	if math.Abs(s[0]-5.) > 1e-9 || math.Abs(s[28]-400.) > 1e-7 {
		t.Fatalf("endpoints %g %g", s[0], s[28])
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("not increasing at %d", i)
		}
	}
	// constant log step
	r0 := s[1] / s[0]
	for i := 2; i < len(s); i++ {
		if math.Abs(s[i]/s[i-1]-r0) > 1e-9 {
			t.Fatalf("uneven log step at %d", i)
		}
	}
}

func TestLoadSurveyGeo(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "line3.csv")
	csv := "cfg,role,lat,long\n" +
		"1,A,43.640000,-79.390000\n" +
		"1,B,43.640000,-79.380000\n" +
		"1,M,43.640000,-79.387000\n" +
		"1,N,43.640000,-79.383000\n" +
		"2,A,43.640000,-79.389000\n" +
		"2,M,43.640000,-79.385000\n"
	if err := os.WriteFile(fp, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSurveyGeo(fp)
	if err != nil {
		t.Fatal(err)
	}
	if s.Nam != "line3" || s.Arr != General || s.NConfig() != 2 {
		t.Fatalf("survey: %s %v %d", s.Nam, s.Arr, s.NConfig())
	}
	ab2, _ := s.Cfgs[0].Spread()
	if ab2 < 395. || ab2 > 410. { // 0.01 deg longitude at 43.64N
		t.Fatalf("projected AB/2 = %g", ab2)
	}
	if !s.Cfgs[1].B.Inf || !s.Cfgs[1].N.Inf {
		t.Fatal("missing roles should be remote")
	}

	// stakes spanning UTM zones
	fp2 := filepath.Join(dir, "split.csv")
	csv2 := "cfg,role,lat,long\n" +
		"1,A,43.64,-79.39\n" +
		"1,B,43.64,-85.00\n" +
		"1,M,43.64,-79.387\n" +
		"1,N,43.64,-79.383\n"
	if err := os.WriteFile(fp2, []byte(csv2), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSurveyGeo(fp2); err == nil {
		t.Fatal("zone-split survey accepted")
	}

	// duplicate role
	fp3 := filepath.Join(dir, "dup.csv")
	csv3 := "cfg,role,lat,long\n" +
		"1,A,43.64,-79.39\n" +
		"1,A,43.64,-79.38\n"
	if err := os.WriteFile(fp3, []byte(csv3), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSurveyGeo(fp3); err == nil {
		t.Fatal("duplicate role accepted")
	}
}

func TestNameLookups(t *testing.T) {
	if a, err := ArrayTypeByName("Dipole-Dipole"); err != nil || a != DipoleDipole {
		t.Fatalf("array lookup: %v %v", a, err)
	}
	if a, err := ArrayTypeByName(""); err != nil || a != Schlumberger {
		t.Fatalf("default array: %v %v", a, err)
	}
	if _, err := ArrayTypeByName("square"); err == nil {
		t.Fatal("unknown array accepted")
	}
	if m, err := MaterialByName("Gravel"); err != nil || m != Gravel {
		t.Fatalf("material lookup: %v %v", m, err)
	}
	if _, err := MaterialByName("peanut butter"); err == nil {
		t.Fatal("unknown material accepted")
	}
	if Gravel.Rho() <= Clay.Rho() {
		t.Fatal("material table ordering")
	}
	lo, hi := Till.RhoRange()
	if !(lo > 0.) || !(hi > lo) {
		t.Fatalf("till range [%g,%g]", lo, hi)
	}
}

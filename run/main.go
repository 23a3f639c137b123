package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/maseology/dcres"
	"github.com/maseology/dcres/archive"
	"github.com/maseology/dcres/earth"
	"github.com/maseology/dcres/hankel"
	"github.com/maseology/mmio"
	"gopkg.in/yaml.v3"
)

// forward-models a sounding scenario to a synthetic data csv
// usage: dcres [scenario.yml]

const defaultScenario = "scenario.yml"

type scenario struct {
	Name        string    `yaml:"name"`
	Mapping     string    `yaml:"mapping"` // identity (default) | log
	Params      []float64 `yaml:"params"`  // per-layer, read through the mapping
	Thicknesses []float64 `yaml:"thicknesses"`
	Array       string    `yaml:"array"` // schlumberger | wenner | dipoledipole | poledipole | polepole | geo
	Ab2         []float64 `yaml:"ab2"`   // schlumberger current half-spacings [m]
	Mn2         []float64 `yaml:"mn2"`   // schlumberger potential half-spacings; single value or one per ab2
	A           []float64 `yaml:"a"`     // wenner/polepole spacings, or [dipole length] for (pole)dipoledipole
	Nsep        []int     `yaml:"nsep"`  // dipole separation indices
	GeoCsv      string    `yaml:"geocsv"`
	X0, Y0, Az  float64   // sounding centre and line azimuth [rad]
	Current     float64   `yaml:"current"` // injected [A], default 1
	Engine      string    `yaml:"engine"`  // filter (default) | quad
	Noise       struct {
		Sdev  float64 `yaml:"sdev"`  // relative standard deviation
		Floor float64 `yaml:"floor"` // absolute 1-sigma floor [ohm.m]
		Seed  int64   `yaml:"seed"`  // 0 seeds from the wall clock
	} `yaml:"noise"`
	OutCsv   string `yaml:"outcsv"`
	Observed string `yaml:"observed"` // optional measured csv to score against
	Archive  string `yaml:"archive"`  // optional sqlite archive path
}

func (sc *scenario) survey() (*dcres.Survey, error) {
	switch sc.Array {
	case "", "schlumberger":
		if len(sc.Mn2) == 1 {
			return dcres.NewSchlumberger(sc.Ab2, sc.Mn2[0], sc.X0, sc.Y0, sc.Az), nil
		}
		return dcres.NewSchlumbergerSchedule(sc.Ab2, sc.Mn2, sc.X0, sc.Y0, sc.Az)
	case "wenner":
		return dcres.NewWenner(sc.A, sc.X0, sc.Y0, sc.Az), nil
	case "dipoledipole":
		return dcres.NewDipoleDipole(sc.A[0], sc.Nsep, sc.X0, sc.Y0, sc.Az), nil
	case "poledipole":
		return dcres.NewPoleDipole(sc.A[0], sc.Nsep, sc.X0, sc.Y0, sc.Az), nil
	case "polepole":
		return dcres.NewPolePole(sc.A, sc.X0, sc.Y0, sc.Az), nil
	case "geo":
		return dcres.LoadSurveyGeo(sc.GeoCsv)
	default:
		return nil, fmt.Errorf("unknown array type %q", sc.Array)
	}
}

func main() {

	fp := defaultScenario
	if len(os.Args) > 1 {
		fp = os.Args[1]
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// scenario
	b, err := os.ReadFile(fp)
	if err != nil {
		log.Fatalf(" scenario read: %v", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		log.Fatalf(" scenario parse: %v", err)
	}

	// layered model
	mpg, err := earth.MappingByName(sc.Mapping)
	if err != nil {
		log.Fatalln("", err)
	}
	rhos, err := mpg.Apply(sc.Params)
	if err != nil {
		log.Fatalln("", err)
	}
	ls, err := earth.New(rhos, sc.Thicknesses)
	if err != nil {
		log.Fatalln("", err)
	}
	for i := 0; i < ls.N(); i++ {
		if ls.IsLast(i) {
			fmt.Printf("  layer %d: %.4g ohm.m (basement)\n", i+1, ls.Rho(i))
		} else {
			fmt.Printf("  layer %d: %.4g ohm.m, %.4g-%.4g m\n", i+1, ls.Rho(i), ls.DepthTop(i), ls.DepthTop(i+1))
		}
	}

	// survey
	srv, err := sc.survey()
	if err != nil {
		log.Fatalln("", err)
	}
	if sc.Name != "" {
		srv.Nam = sc.Name
	}
	if err := srv.Checkandprint(); err != nil {
		log.Fatalln("", err)
	}

	// forward model
	ev, err := dcres.NewEvaluator(ls, srv)
	if err != nil {
		log.Fatalln("", err)
	}
	if sc.Current > 0. {
		ev.I = sc.Current
	}
	if sc.Engine == "quad" {
		ev.Eng = hankel.Quad{} // slow reference quadrature
	}
	ds, err := ev.EvaluateConcurrent()
	if err != nil {
		log.Fatalln("", err)
	}
	tt.Print("forward model complete")

	// noise
	if sc.Noise.Sdev > 0. || sc.Noise.Floor > 0. {
		if ds, err = dcres.Contaminate(ds, sc.Noise.Sdev, sc.Noise.Floor, sc.Noise.Seed); err != nil {
			log.Fatalln("", err)
		}
		fmt.Printf("  contaminated: %.3g relative, %.3g ohm.m floor, seed %d\n", sc.Noise.Sdev, sc.Noise.Floor, sc.Noise.Seed)
	}

	// write
	if sc.OutCsv != "" {
		if err := ds.WriteCSV(sc.OutCsv); err != nil {
			log.Fatalln("", err)
		}
		fmt.Printf("  %d readings written to %s\n", len(ds.D), sc.OutCsv)
	}

	// score against observations
	if sc.Observed != "" {
		obs, err := dcres.ReadObservedCSV(sc.Observed)
		if err != nil {
			log.Fatalln("", err)
		}
		f, err := dcres.Score(obs, ds)
		if err != nil {
			log.Fatalln("", err)
		}
		fmt.Printf(" fit to %s:\n", sc.Observed)
		f.Print()
	}

	// archive
	if sc.Archive != "" {
		ctx := context.Background()
		st := archive.NewStore(sc.Archive)
		if err := st.Init(ctx); err != nil {
			log.Fatalln("", err)
		}
		defer st.Close()
		id, err := st.SaveRun(ctx, srv.Nam, ls, srv, ds, sc.Noise.Sdev, sc.Noise.Seed)
		if err != nil {
			log.Fatalln("", err)
		}
		fmt.Printf("  archived as %s\n", id)
	}
}

package dcres

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/dcres/earth"
	"github.com/maseology/dcres/hankel"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"gonum.org/v1/gonum/stat"
)

// Realization pairs one sampled model with its forward response.
type Realization struct {
	Stack *earth.LayerStack
	Sim   *DataSet
	ID    int
}

// GenerateEnsemble draws n models from the sample space by Latin hypercube,
// forward-models each over the survey across nwrkrs workers, and returns the
// realizations in draw order. A zero seed draws the plan from the wall
// clock; any other seed reproduces the plan. A failed realization voids the
// ensemble.
func GenerateEnsemble(sp *SampleSpace, srv *Survey, n, nwrkrs int, seed int64) ([]Realization, error) {
	if n < 1 {
		return nil, fmt.Errorf("dcres.GenerateEnsemble: sample count %d", n)
	}
	if nwrkrs < 1 {
		nwrkrs = 4
	}
	if err := srv.Check(); err != nil {
		return nil, err
	}

	// build sampling plan
	rng := rand.New(mrg63k3a.New())
	if seed == 0 {
		rng.Seed(time.Now().UnixNano())
	} else {
		rng.Seed(seed)
	}
	p := sp.Dim()
	spl := smpln.NewLHC(rng, n, p, false)

	uiprogress.Start()
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()

	eng := hankel.NewFilter()
	rlz, errs := make([]Realization, n), make([]error, n)
	jobs := make(chan int, n)
	var wg sync.WaitGroup
	wg.Add(nwrkrs)
	for w := 0; w < nwrkrs; w++ {
		go func() {
			for k := range jobs {
				ut := make([]float64, p)
				for j := 0; j < p; j++ {
					ut[j] = spl.U[j][k]
				}
				ls, err := sp.Realize(ut)
				if err != nil {
					errs[k] = err
					bar.Incr()
					continue
				}
				ev := Evaluator{Stack: ls, Srv: srv, Eng: eng, I: 1.}
				sim, err := ev.Evaluate()
				if err != nil {
					errs[k] = err
					bar.Incr()
					continue
				}
				sim.Nam = fmt.Sprintf("%s.%d", srv.Nam, k)
				rlz[k] = Realization{Stack: ls, Sim: sim, ID: k}
				bar.Incr()
			}
			wg.Done()
		}()
	}
	for k := 0; k < n; k++ {
		jobs <- k
	}
	close(jobs)
	wg.Wait()
	uiprogress.Stop()

	for k, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("dcres.GenerateEnsemble: realization %d: %v", k, err)
		}
	}
	return rlz, nil
}

// EnsembleStats summarizes apparent resistivity across an ensemble, one
// entry per configuration.
type EnsembleStats struct {
	Ab2, Mean, Sd, P10, P50, P90 []float64
}

// SummarizeEnsemble reduces the per-configuration spread of an ensemble.
func SummarizeEnsemble(rlz []Realization) (*EnsembleStats, error) {
	if len(rlz) == 0 {
		return nil, fmt.Errorf("dcres.SummarizeEnsemble: empty ensemble")
	}
	nc := len(rlz[0].Sim.D)
	for _, r := range rlz {
		if len(r.Sim.D) != nc {
			return nil, fmt.Errorf("dcres.SummarizeEnsemble: realization %d has %d readings, expecting %d", r.ID, len(r.Sim.D), nc)
		}
	}
	st := EnsembleStats{
		Ab2:  make([]float64, nc),
		Mean: make([]float64, nc),
		Sd:   make([]float64, nc),
		P10:  make([]float64, nc),
		P50:  make([]float64, nc),
		P90:  make([]float64, nc),
	}
	xs := make([]float64, len(rlz))
	for i := 0; i < nc; i++ {
		for k, r := range rlz {
			xs[k] = r.Sim.D[i].Rhoa
		}
		st.Ab2[i] = rlz[0].Sim.D[i].Ab2
		st.Mean[i] = stat.Mean(xs, nil)
		st.Sd[i] = stat.StdDev(xs, nil)
		sort.Float64s(xs)
		st.P10[i] = stat.Quantile(.1, stat.Empirical, xs, nil)
		st.P50[i] = stat.Quantile(.5, stat.Empirical, xs, nil)
		st.P90[i] = stat.Quantile(.9, stat.Empirical, xs, nil)
	}
	return &st, nil
}

// WriteEnsembleCSV writes the summary panel and the realized models, the
// usual post-run record pair:
//
//	<prfx>.ensemble.csv    cfg,ab2,mean,sd,p10,p50,p90
//	<prfx>.samplespace.csv rlz,rho0..rhoN,h0..hN-1
func WriteEnsembleCSV(prfx string, rlz []Realization, st *EnsembleStats) error {
	lns := make([]string, len(st.Ab2)+1)
	lns[0] = "cfg,ab2,mean,sd,p10,p50,p90"
	for i := range st.Ab2 {
		lns[i+1] = fmt.Sprintf("%d,%g,%g,%g,%g,%g,%g", i, st.Ab2[i], st.Mean[i], st.Sd[i], st.P10[i], st.P50[i], st.P90[i])
	}
	if err := mmio.WriteStrings(prfx+".ensemble.csv", lns); err != nil {
		return fmt.Errorf(" WriteEnsembleCSV %v", err)
	}

	lns = make([]string, len(rlz)+1)
	hdr := "rlz"
	for j := 0; j < rlz[0].Stack.N(); j++ {
		hdr += fmt.Sprintf(",rho%d", j)
	}
	for j := 0; j < rlz[0].Stack.N()-1; j++ {
		hdr += fmt.Sprintf(",h%d", j)
	}
	lns[0] = hdr
	for k, r := range rlz {
		ln := fmt.Sprint(r.ID)
		for _, v := range r.Stack.Resistivities() {
			ln += fmt.Sprintf(",%f", v)
		}
		for _, v := range r.Stack.Thicknesses() {
			ln += fmt.Sprintf(",%f", v)
		}
		lns[k+1] = ln
	}
	if err := mmio.WriteStrings(prfx+".samplespace.csv", lns); err != nil {
		return fmt.Errorf(" WriteEnsembleCSV %v", err)
	}
	return nil
}

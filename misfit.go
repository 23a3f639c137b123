package dcres

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

// ReadObservedCSV loads a measured or previously simulated sounding, one
// cfg,ab2,mn2,rhoa[,unc] record per reading past a header line (the layout
// DataSet.WriteCSV emits).
func ReadObservedCSV(fp string) (*DataSet, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" ReadObservedCSV %v", err)
	}
	defer f.Close()
	ds, ln := DataSet{Nam: mmio.FileName(fp, false)}, 1
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		ln++
		if len(rec) < 4 {
			return nil, fmt.Errorf(" ReadObservedCSV %s line %d: expecting cfg,ab2,mn2,rhoa[,unc]", fp, ln)
		}
		var d Datum
		if d.Cfg, err = strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
			return nil, fmt.Errorf(" ReadObservedCSV %s line %d: %v", fp, ln, err)
		}
		fs := []*float64{&d.Ab2, &d.Mn2, &d.Rhoa, &d.Unc}
		for j := 1; j < len(rec) && j < 5; j++ {
			if *fs[j-1], err = strconv.ParseFloat(strings.TrimSpace(rec[j]), 64); err != nil {
				return nil, fmt.Errorf(" ReadObservedCSV %s line %d: %v", fp, ln, err)
			}
		}
		ds.D = append(ds.D, d)
	}
	if len(ds.D) == 0 {
		return nil, fmt.Errorf(" ReadObservedCSV %s: no readings", fp)
	}
	return &ds, nil
}

// Fit scores a simulated sounding against observations.
type Fit struct {
	KGE, NSE, RMSE, Bias float64
	Chi2                 float64 // reduced, uncertainty-weighted; NaN without uncertainties
}

// Score compares apparent resistivities reading by reading; the sets must
// align with the same survey.
func Score(obs, sim *DataSet) (*Fit, error) {
	if len(obs.D) != len(sim.D) {
		return nil, fmt.Errorf("dcres.Score: %d observed vs %d simulated readings", len(obs.D), len(sim.D))
	}
	o, s := obs.Rhoas(), sim.Rhoas()
	f := Fit{
		KGE:  objfunc.KGE(o, s),
		NSE:  objfunc.NSE(o, s),
		RMSE: objfunc.RMSE(o, s),
		Bias: objfunc.Bias(o, s),
	}
	chi2, n := 0., 0
	for i := range obs.D {
		if obs.D[i].Unc > 0. {
			d := (sim.D[i].Rhoa - obs.D[i].Rhoa) / obs.D[i].Unc
			chi2 += d * d
			n++
		}
	}
	if n > 0 {
		f.Chi2 = chi2 / float64(n)
	} else {
		f.Chi2 = math.NaN()
	}
	return &f, nil
}

// Print writes the scores one per line.
func (f *Fit) Print() {
	fmt.Printf("  KGE: %.5f\n  NSE: %.5f\n  RMSE: %.5f\n  Bias: %.5f\n", f.KGE, f.NSE, f.RMSE, f.Bias)
	if !math.IsNaN(f.Chi2) {
		fmt.Printf("  chi2(reduced): %.5f\n", f.Chi2)
	}
}

package dcres

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/mmio"
)

// Datum is one synthetic reading.
type Datum struct {
	Ab2, Mn2  float64 // half-spacings [m], NaN where the pair has a remote electrode
	Rhoa, Unc float64 // apparent resistivity and 1-sigma uncertainty [ohm.m]
	Cfg       int     // configuration ordinal within the survey
}

// DataSet is the forward response of a survey over a layered model, ordered
// as the survey orders its configurations.
type DataSet struct {
	D   []Datum
	Nam string
}

// Rhoas returns the apparent resistivities in survey order.
func (ds *DataSet) Rhoas() []float64 {
	o := make([]float64, len(ds.D))
	for i, d := range ds.D {
		o[i] = d.Rhoa
	}
	return o
}

// WriteCSV writes cfg,ab2,mn2,rhoa records; the unc column is appended only
// when a reading carries an uncertainty (a contaminated set).
func (ds *DataSet) WriteCSV(fp string) error {
	unc := false
	for _, d := range ds.D {
		if d.Unc > 0. {
			unc = true
			break
		}
	}
	lns := make([]string, len(ds.D)+1)
	if unc {
		lns[0] = "cfg,ab2,mn2,rhoa,unc"
	} else {
		lns[0] = "cfg,ab2,mn2,rhoa"
	}
	for i, d := range ds.D {
		if unc {
			lns[i+1] = fmt.Sprintf("%d,%g,%g,%g,%g", d.Cfg, d.Ab2, d.Mn2, d.Rhoa, d.Unc)
		} else {
			lns[i+1] = fmt.Sprintf("%d,%g,%g,%g", d.Cfg, d.Ab2, d.Mn2, d.Rhoa)
		}
	}
	if err := mmio.WriteStrings(fp, lns); err != nil {
		return fmt.Errorf(" DataSet.WriteCSV %v", err)
	}
	return nil
}

// SaveGob writes the data set to path.
func (ds *DataSet) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" DataSet.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(ds); err != nil {
		return fmt.Errorf(" DataSet.SaveGob %v", err)
	}
	return nil
}

// LoadGobDataSet reads a data set written by SaveGob.
func LoadGobDataSet(fp string) (*DataSet, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" LoadGobDataSet %v", err)
	}
	defer f.Close()
	var ds DataSet
	if err := gob.NewDecoder(f).Decode(&ds); err != nil {
		return nil, fmt.Errorf(" LoadGobDataSet %v", err)
	}
	return &ds, nil
}

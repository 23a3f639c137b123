package dcres

import (
	"math"
	"reflect"
	"testing"
)

func syntheticSet() *DataSet {
	ds := DataSet{Nam: "syn", D: make([]Datum, 12)}
	for i := range ds.D {
		ds.D[i] = Datum{Cfg: i, Ab2: float64(5 * (i + 1)), Mn2: 1., Rhoa: 100. + 25.*float64(i)}
	}
	return &ds
}

func TestContaminateIsSeeded(t *testing.T) {
	ds := syntheticSet()
	a, err := Contaminate(ds, .05, 1., 12345)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Contaminate(ds, .05, 1., 12345)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.D, b.D) {
		t.Fatal("same seed, different noise")
	}
	c, err := Contaminate(ds, .05, 1., 54321)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.D, c.D) {
		t.Fatal("different seeds, same noise")
	}
}

func TestContaminateLeavesInputAlone(t *testing.T) {
	ds := syntheticSet()
	before := make([]Datum, len(ds.D))
	copy(before, ds.D)
	if _, err := Contaminate(ds, .1, 2., 7); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, ds.D) {
		t.Fatal("input mutated")
	}
}

func TestContaminateZeroScaleIsIdentity(t *testing.T) {
	ds := syntheticSet()
	out, err := Contaminate(ds, 0., 0., 99)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out.D, ds.D) {
		t.Fatal("zero-scale contamination changed data")
	}
}

func TestContaminateRecordsUncertainty(t *testing.T) {
	ds := syntheticSet()
	const relerr, floor = .03, 4.
	out, err := Contaminate(ds, relerr, floor, 11)
	if err != nil {
		t.Fatal(err)
	}
	moved := false
	for i := range out.D {
		want := relerr * math.Abs(ds.D[i].Rhoa)
		if want < floor {
			want = floor
		}
		if out.D[i].Unc != want {
			t.Fatalf("cfg %d: unc %g want %g", i, out.D[i].Unc, want)
		}
		if out.D[i].Rhoa != ds.D[i].Rhoa {
			moved = true
		}
		// draws this size essentially never reach 6 sigma
		if math.Abs(out.D[i].Rhoa-ds.D[i].Rhoa) > 6.*want {
			t.Fatalf("cfg %d: excursion %g at sigma %g", i, out.D[i].Rhoa-ds.D[i].Rhoa, want)
		}
	}
	if !moved {
		t.Fatal("noise never perturbed the data")
	}
}

func TestContaminateRejectsNegativeScales(t *testing.T) {
	ds := syntheticSet()
	if _, err := Contaminate(ds, -.01, 0., 1); err == nil {
		t.Fatal("negative relerr accepted")
	}
	if _, err := Contaminate(ds, .01, -1., 1); err == nil {
		t.Fatal("negative floor accepted")
	}
}

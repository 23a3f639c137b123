package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/maseology/dcres"
	"github.com/maseology/dcres/earth"
)

func testRun(t *testing.T) (*earth.LayerStack, *dcres.Survey, *dcres.DataSet) {
	t.Helper()
	ls, err := earth.New([]float64{400., 50., 2000.}, []float64{8., 12.})
	if err != nil {
		t.Fatal(err)
	}
	srv := dcres.NewSchlumberger(dcres.LogSpacing(5., 100., 9), 1., 0., 0., 0.)
	ev, err := dcres.NewEvaluator(ls, srv)
	if err != nil {
		t.Fatal(err)
	}
	ds, err := ev.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	return ls, srv, ds
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(filepath.Join(t.TempDir(), "runs.db"))
	if err := s.Init(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ls, srv, ds := testRun(t)
	id, err := s.SaveRun(ctx, "synthetic sounding", ls, srv, ds, .05, 1234)
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty run id")
	}

	r, ok, err := s.GetRun(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("saved run not found")
	}
	if r.Name != "synthetic sounding" || r.Sdev != .05 || r.Seed != 1234 {
		t.Fatalf("run metadata mangled: %+v", r)
	}
	if len(r.Rho) != ls.N() || len(r.H) != ls.N()-1 {
		t.Fatalf("stack shape mangled: %d rho, %d h", len(r.Rho), len(r.H))
	}
	if r.Srv.NConfig() != srv.NConfig() || len(r.Data.D) != len(ds.D) {
		t.Fatalf("survey/data shape mangled: %d cfgs, %d readings", r.Srv.NConfig(), len(r.Data.D))
	}
	for i, d := range r.Data.D {
		if d.Rhoa != ds.D[i].Rhoa {
			t.Fatalf("reading %d: archived rhoa %g, ran %g", i, d.Rhoa, ds.D[i].Rhoa)
		}
	}
}

func TestStoreMisses(t *testing.T) {
	ctx := context.Background()
	s := NewStore(filepath.Join(t.TempDir(), "runs.db"))

	if _, err := s.ListRuns(ctx); err == nil {
		t.Fatal("expecting error before Init")
	}
	if err := s.Init(ctx); err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, ok, err := s.GetRun(ctx, "no-such-id"); err != nil || ok {
		t.Fatalf("miss should be (false, nil): ok=%v err=%v", ok, err)
	}
	lst, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(lst) != 0 {
		t.Fatalf("empty archive lists %d runs", len(lst))
	}

	ls, srv, ds := testRun(t)
	for i := 0; i < 3; i++ {
		if _, err := s.SaveRun(ctx, "run", ls, srv, ds, 0., 0); err != nil {
			t.Fatal(err)
		}
	}
	if lst, err = s.ListRuns(ctx); err != nil {
		t.Fatal(err)
	}
	if len(lst) != 3 {
		t.Fatalf("archive lists %d runs, saved 3", len(lst))
	}
	for _, ri := range lst {
		if ri.NConfig != len(ds.D) {
			t.Fatalf("catalogue row has %d readings, expecting %d", ri.NConfig, len(ds.D))
		}
	}
}

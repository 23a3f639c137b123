package dcres

import "github.com/gosuri/uiprogress"

// Evaluate forward-models every configuration in survey order. Any failure
// voids the run and is tagged with the offending configuration.
func (ev *Evaluator) Evaluate() (*DataSet, error) {
	ds := DataSet{Nam: ev.Srv.Nam, D: make([]Datum, ev.Srv.NConfig())}
	for i := range ev.Srv.Cfgs {
		c := &ev.Srv.Cfgs[i]
		_, rhoa, err := ev.ConfigResponse(c)
		if err != nil {
			return nil, &ConfigError{Idx: i, Err: err}
		}
		ab2, mn2 := c.Spread()
		ds.D[i] = Datum{Cfg: i, Ab2: ab2, Mn2: mn2, Rhoa: rhoa}
	}
	return &ds, nil
}

// EvaluateVerbose is Evaluate with a progress bar, for slow engines such as
// the reference quadrature.
func (ev *Evaluator) EvaluateVerbose() (*DataSet, error) {
	uiprogress.Start()
	bar := uiprogress.AddBar(ev.Srv.NConfig()).AppendCompleted().PrependElapsed()
	ds := DataSet{Nam: ev.Srv.Nam, D: make([]Datum, ev.Srv.NConfig())}
	for i := range ev.Srv.Cfgs {
		c := &ev.Srv.Cfgs[i]
		_, rhoa, err := ev.ConfigResponse(c)
		if err != nil {
			uiprogress.Stop()
			return nil, &ConfigError{Idx: i, Err: err}
		}
		ab2, mn2 := c.Spread()
		ds.D[i] = Datum{Cfg: i, Ab2: ab2, Mn2: mn2, Rhoa: rhoa}
		bar.Incr()
	}
	uiprogress.Stop()
	return &ds, nil
}

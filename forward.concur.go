package dcres

import "sync"

// EvaluateConcurrent fans the survey out one goroutine per configuration.
// Configurations are independent, so the result is ordered and bit-identical
// to Evaluate; the first failing configuration voids the whole run.
func (ev *Evaluator) EvaluateConcurrent() (*DataSet, error) {
	n := ev.Srv.NConfig()
	d, errs := make([]Datum, n), make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			c := &ev.Srv.Cfgs[i]
			_, rhoa, err := ev.ConfigResponse(c)
			if err != nil {
				errs[i] = err
				wg.Done()
				return
			}
			ab2, mn2 := c.Spread()
			d[i] = Datum{Cfg: i, Ab2: ab2, Mn2: mn2, Rhoa: rhoa}
			wg.Done()
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, &ConfigError{Idx: i, Err: err}
		}
	}
	return &DataSet{Nam: ev.Srv.Nam, D: d}, nil
}

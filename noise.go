package dcres

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Contaminate returns a copy of ds with zero-mean Gaussian noise added to
// every apparent resistivity, leaving the input untouched. The 1-sigma
// scale per reading is max(relerr*|rhoa|, floor) [ohm.m] and is recorded on
// the datum. A zero seed draws from the wall clock; any other seed
// reproduces the same draws bit-for-bit.
func Contaminate(ds *DataSet, relerr, floor float64, seed int64) (*DataSet, error) {
	if relerr < 0. || floor < 0. {
		return nil, fmt.Errorf("dcres.Contaminate: negative noise scale (relerr %g, floor %g)", relerr, floor)
	}
	out := DataSet{Nam: ds.Nam, D: make([]Datum, len(ds.D))}
	copy(out.D, ds.D)
	if relerr == 0. && floor == 0. {
		return &out, nil
	}
	rng := rand.New(mrg63k3a.New())
	if seed == 0 {
		rng.Seed(time.Now().UnixNano())
	} else {
		rng.Seed(seed)
	}
	for i := range out.D {
		sd := relerr * math.Abs(out.D[i].Rhoa)
		if sd < floor {
			sd = floor
		}
		out.D[i].Rhoa += rng.NormFloat64() * sd
		out.D[i].Unc = sd
	}
	return &out, nil
}

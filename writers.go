package dcres

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

func writeFloats(fp string, f []float64) error {
	f32 := func() []float32 {
		o := make([]float32, len(f))
		for i, v := range f {
			o[i] = float32(v)
		}
		return o
	}()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, f32); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writeFloats failed: %v", err)
	}
	return nil
}

// WriteEnsembleBins dumps the ensemble response matrix as packed little-
// endian float32, realization-major, for external plotting.
func WriteEnsembleBins(fp string, rlz []Realization) error {
	if len(rlz) == 0 {
		return fmt.Errorf("WriteEnsembleBins: empty ensemble")
	}
	x := make([]float64, 0, len(rlz)*len(rlz[0].Sim.D))
	for _, r := range rlz {
		x = append(x, r.Sim.Rhoas()...)
	}
	return writeFloats(fp, x)
}

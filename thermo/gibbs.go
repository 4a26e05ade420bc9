package thermo

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"
)

// log is a global logging variable.
var log = logging.MustGetLogger("thermo")

// Default solution conditions.
const (
	// DefaultTemperature is the default temperature (°C).
	DefaultTemperature = 37.0
	// DefaultSaltConc is the default monovalent cation
	// concentration (M).
	DefaultSaltConc = 1.0
)

// Monovalent cation concentration range (M) the entropy correction
// was calibrated for. Concentrations outside this range are accepted
// with a warning.
const (
	SaltConcMin = 0.05
	SaltConcMax = 1.1
)

const (
	// zeroCelsius is 0 °C in K.
	zeroCelsius = 273.15
	// saltEntropyFactor scales the ln-concentration entropy
	// correction applied to every stacking step.
	saltEntropyFactor = 0.368
)

// ErrInvalidSaltConc is returned if the salt concentration is not a
// positive number.
var ErrInvalidSaltConc = errors.New("invalid salt concentration")

// GibbsTable derives a free-energy table (kcal/mol) from the
// nearest-neighbor parameters for the given temperature (°C) and
// monovalent cation concentration (M). The table has the same keys
// as the parameter tables: the entropy of every stacking step is
// first adjusted for the salt concentration, while initiation and
// symmetry terms are fixed values independent of the conditions.
func GibbsTable(temperature, saltConc float64) (map[string]float64, error) {
	if saltConc <= 0 || math.IsNaN(saltConc) || math.IsInf(saltConc, 1) {
		return nil, fmt.Errorf("%w: %v M", ErrInvalidSaltConc, saltConc)
	}
	if saltConc < SaltConcMin || saltConc > SaltConcMax {
		log.Warningf("salt concentration %v M is outside of the calibration range [%v, %v] M",
			saltConc, SaltConcMin, SaltConcMax)
	}

	adjS := saltEntropyFactor * math.Log(saltConc)
	tK := zeroCelsius + temperature

	tbl := make(map[string]float64, len(nnDH))
	for k, dh := range nnDH {
		if dg, ok := fixedDG[k]; ok {
			tbl[k] = dg
			continue
		}
		tbl[k] = dh - tK*(nnDS[k]+adjS)/1000
	}
	return tbl, nil
}

// stackMatrix stores the stacking entries of a free-energy table in
// a matrix indexed by baseNum.
func stackMatrix(tbl map[string]float64) *mat64.Dense {
	m := mat64.NewDense(NBase, NBase, nil)
	for i := 0; i < NBase; i++ {
		for j := 0; j < NBase; j++ {
			m.Set(i, j, tbl[string([]byte{numBase[i], numBase[j]})])
		}
	}
	return m
}

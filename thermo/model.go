package thermo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gonum/matrix/mat64"

	"bitbucket.org/Davydov/gotherm/bio"
)

// ErrInvalidSequence is returned for empty sequences and for
// sequences with characters outside the A, C, G, T alphabet.
var ErrInvalidSequence = errors.New("invalid sequence")

// Model computes Gibbs free energies of duplex formation for fixed
// solution conditions. The free-energy table is derived once per
// condition change, so DeltaG only sums precomputed values.
type Model struct {
	temperature float64
	saltConc    float64
	// tbl is the derived free-energy table.
	tbl map[string]float64
	// stack holds the dinucleotide entries of tbl, indexed by
	// baseNum.
	stack *mat64.Dense
}

// New creates a model for the given temperature (°C) and monovalent
// cation concentration (M).
func New(temperature, saltConc float64) (*Model, error) {
	m := &Model{}
	if err := m.SetConditions(temperature, saltConc); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDefault creates a model for the default conditions (37 °C,
// 1 M monovalent cations).
func NewDefault() *Model {
	m, err := New(DefaultTemperature, DefaultSaltConc)
	if err != nil {
		// default conditions are always valid
		panic(err)
	}
	return m
}

// SetConditions replaces both solution parameters and rederives the
// free-energy table. On error the model is left unchanged.
func (m *Model) SetConditions(temperature, saltConc float64) error {
	tbl, err := GibbsTable(temperature, saltConc)
	if err != nil {
		return err
	}
	m.temperature = temperature
	m.saltConc = saltConc
	m.tbl = tbl
	m.stack = stackMatrix(tbl)
	return nil
}

// SetTemperature changes the temperature (°C) keeping the salt
// concentration.
func (m *Model) SetTemperature(temperature float64) error {
	return m.SetConditions(temperature, m.saltConc)
}

// SetSaltConc changes the monovalent cation concentration (M)
// keeping the temperature.
func (m *Model) SetSaltConc(saltConc float64) error {
	return m.SetConditions(m.temperature, saltConc)
}

// Temperature returns the temperature (°C).
func (m *Model) Temperature() float64 {
	return m.temperature
}

// SaltConc returns the monovalent cation concentration (M).
func (m *Model) SaltConc() float64 {
	return m.saltConc
}

// DeltaGTable returns a copy of the derived free-energy table
// (kcal/mol). The returned map is safe to modify.
func (m *Model) DeltaGTable() map[string]float64 {
	return copyTable(m.tbl)
}

// DeltaG computes the Gibbs free energy (kcal/mol) of the duplex
// formed by a sequence and its perfect complement. The sequence is
// uppercased first and must be a non-empty string over A, C, G and
// T. The result is the sum over all dinucleotide stacking steps plus
// the initiation terms for the two terminal bases; for
// self-complementary sequences the symmetry correction is added.
func (m *Model) DeltaG(seq string) (float64, error) {
	seq = strings.ToUpper(seq)
	if len(seq) == 0 {
		return 0, fmt.Errorf("%w: empty sequence", ErrInvalidSequence)
	}
	for i := 0; i < len(seq); i++ {
		if _, ok := baseNum[seq[i]]; !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidSequence, seq[i], i+1)
		}
	}

	dG := 0.0
	for i := 0; i < len(seq)-1; i++ {
		dG += m.stack.At(int(baseNum[seq[i]]), int(baseNum[seq[i+1]]))
	}
	dG += m.tbl["init"+seq[:1]]
	dG += m.tbl["init"+seq[len(seq)-1:]]

	selfComp := bio.IsSelfComplementary(seq)
	if selfComp {
		dG += m.tbl["sym"]
	}
	log.Debugf("%s: %d stacking steps, self-complementary=%v, dG=%g",
		seq, len(seq)-1, selfComp, dG)

	return dG, nil
}

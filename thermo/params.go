// Package thermo computes Gibbs free energies of DNA duplex
// formation using the unified nearest-neighbor thermodynamic
// parameters.
package thermo

// Unified nearest-neighbor parameters for DNA duplex formation in
// 1 M NaCl (SantaLucia, PNAS 95:1460, 1998; SantaLucia & Hicks, Annu
// Rev Biophys 33:415, 2004). Enthalpies are in kcal/mol, entropies in
// cal/(K·mol). Keys are the 16 dinucleotide stacking steps written
// 5'->3', the four duplex initiation terms (one per terminal base)
// and the symmetry correction for self-complementary sequences.
var (
	// nnDH is the enthalpy table.
	nnDH = map[string]float64{
		"AA": -7.6, "TT": -7.6,
		"AT": -7.2, "TA": -7.2,
		"CA": -8.5, "TG": -8.5,
		"GT": -8.4, "AC": -8.4,
		"CT": -7.8, "AG": -7.8,
		"GA": -8.2, "TC": -8.2,
		"CG": -10.6, "GC": -9.8,
		"GG": -8.0, "CC": -8.0,
		"initA": 2.2, "initT": 2.2,
		"initC": 0.2, "initG": 0.2,
		"sym": 0.0,
	}
	// nnDS is the entropy table.
	nnDS = map[string]float64{
		"AA": -21.3, "TT": -21.3,
		"AT": -20.4, "TA": -21.3,
		"CA": -22.7, "TG": -22.7,
		"GT": -22.4, "AC": -22.4,
		"CT": -21.0, "AG": -21.0,
		"GA": -22.2, "TC": -22.2,
		"CG": -27.2, "GC": -24.4,
		"GG": -19.9, "CC": -19.9,
		"initA": 6.9, "initT": 6.9,
		"initC": -5.7, "initG": -5.7,
		"sym": -1.4,
	}
	// fixedDG holds the free energies which do not depend on the
	// solution conditions: duplex initiation and the symmetry
	// correction are tabulated directly in kcal/mol.
	fixedDG = map[string]float64{
		"initA": 0.05, "initT": 0.05,
		"initC": 1.96, "initG": 1.96,
		"sym": 0.43,
	}
)

// NBase is the number of nucleotides.
const NBase = 4

var (
	// baseNum maps a nucleotide to its row/column in a stacking
	// matrix.
	baseNum = map[byte]byte{'A': 0, 'C': 1, 'G': 2, 'T': 3}
	// numBase is a reverse of baseNum.
	numBase = [NBase]byte{'A', 'C', 'G', 'T'}
)

// Tables returns copies of the enthalpy and entropy parameter
// tables. The returned maps are safe to modify.
func Tables() (dH, dS map[string]float64) {
	return copyTable(nnDH), copyTable(nnDS)
}

// copyTable creates a copy of a parameter table.
func copyTable(tbl map[string]float64) map[string]float64 {
	res := make(map[string]float64, len(tbl))
	for k, v := range tbl {
		res[k] = v
	}
	return res
}

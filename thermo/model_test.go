package thermo

import (
	"errors"
	"math"
	"testing"
)

const (
	// seq35 is a reference oligonucleotide, ref35 is its duplex
	// free energy at default conditions.
	seq35 = "TAACAAGCAATGAGATAGAGAAAGAAATATATCCA"
	ref35 = -39.2702
)

/*** Test deltaG of a long oligonucleotide ***/
func TestDeltaG(tst *testing.T) {
	m := NewDefault()
	dG, err := m.DeltaG(seq35)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	tst.Log("dG=", dG, ", Ref=", ref35, ", diff=", math.Abs(dG-ref35))
	if math.IsNaN(dG) || math.Abs(dG-ref35) > smallDiff {
		tst.Error("Expected ", ref35, ", got ", dG)
	}

	// colder and low-salt conditions
	if err = m.SetConditions(25, 0.05); err != nil {
		tst.Fatal("Error: ", err)
	}
	ref := -36.8787621521
	dG, err = m.DeltaG(seq35)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	tst.Log("dG=", dG, ", Ref=", ref, ", diff=", math.Abs(dG-ref))
	if math.Abs(dG-ref) > smallDiff {
		tst.Error("Expected ", ref, ", got ", dG)
	}
}

// Repeated evaluation gives exactly the same value.
func TestDeltaGDeterministic(tst *testing.T) {
	m := NewDefault()
	first, err := m.DeltaG(seq35)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	for i := 0; i < 5; i++ {
		dG, err := m.DeltaG(seq35)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		if dG != first {
			tst.Error("Expected ", first, ", got ", dG)
		}
	}
}

/*** Test deltaG under changing conditions ***/
func TestDeltaGConditions(tst *testing.T) {
	m, err := New(37, 1)
	if err != nil {
		tst.Fatal("Error: ", err)
	}

	refs := [...]float64{-4.677455, -1.1706792611, -4.677455}
	conditions := [...][2]float64{{37, 1}, {60, 0.5}, {37, 1}}
	for i, c := range conditions {
		if err = m.SetConditions(c[0], c[1]); err != nil {
			tst.Fatal("Error: ", err)
		}
		dG, err := m.DeltaG("GATTACA")
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		tst.Log("dG=", dG, ", Ref=", refs[i], ", diff=", math.Abs(dG-refs[i]))
		if math.Abs(dG-refs[i]) > smallDiff {
			tst.Error("Expected ", refs[i], ", got ", dG)
		}
	}
}

/*** Test the symmetry correction for self-complementary sequences ***/
func TestDeltaGSelfComplementary(tst *testing.T) {
	m := NewDefault()
	seqs := [...]string{"AT", "ATGCAT"}
	refs := [...]float64{-0.342940, -6.367410}
	for i, seq := range seqs {
		dG, err := m.DeltaG(seq)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		tst.Log("dG=", dG, ", Ref=", refs[i], ", diff=", math.Abs(dG-refs[i]))
		if math.Abs(dG-refs[i]) > smallDiff {
			tst.Error("Expected ", refs[i], ", got ", dG)
		}
	}

	// the correction is added exactly once
	tbl := m.DeltaGTable()
	comp := tbl["AT"] + tbl["initA"] + tbl["initT"] + tbl["sym"]
	dG, err := m.DeltaG("AT")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if math.Abs(dG-comp) > smallDiff {
		tst.Error("Expected ", comp, ", got ", dG)
	}
}

// A single base has no stacking steps, only the two initiation
// terms.
func TestDeltaGSingleBase(tst *testing.T) {
	m := NewDefault()
	seqs := [...]string{"A", "C"}
	refs := [...]float64{0.1, 3.92}
	for i, seq := range seqs {
		dG, err := m.DeltaG(seq)
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		if math.Abs(dG-refs[i]) > smallDiff {
			tst.Error("Expected ", refs[i], ", got ", dG)
		}
	}
}

// Lowercase sequences are accepted.
func TestDeltaGCase(tst *testing.T) {
	m := NewDefault()
	dG1, err := m.DeltaG("GATTACA")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	dG2, err := m.DeltaG("gattaca")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if dG1 != dG2 {
		tst.Error("Expected ", dG1, ", got ", dG2)
	}
}

/*** Test invalid sequences ***/
func TestDeltaGInvalidSequence(tst *testing.T) {
	m := NewDefault()
	for _, seq := range []string{"", "AXGT", "AC GT", "ACGU", "GATTACA-"} {
		dG, err := m.DeltaG(seq)
		if !errors.Is(err, ErrInvalidSequence) {
			tst.Errorf("Expected invalid sequence error for %q, got %v", seq, err)
		}
		if dG != 0 {
			tst.Errorf("Expected no value for %q, got %v", seq, dG)
		}
	}
}

// Invalid conditions leave the model unchanged.
func TestSetConditionsInvalid(tst *testing.T) {
	m, err := New(37, 1)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	if err = m.SetConditions(60, -1); !errors.Is(err, ErrInvalidSaltConc) {
		tst.Error("Expected invalid salt concentration error, got ", err)
	}
	if m.Temperature() != 37 || m.SaltConc() != 1 {
		tst.Error("Model modified by rejected conditions: ",
			m.Temperature(), ", ", m.SaltConc())
	}
	dG, err := m.DeltaG("GATTACA")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	ref := -4.677455
	if math.Abs(dG-ref) > smallDiff {
		tst.Error("Expected ", ref, ", got ", dG)
	}
}

// Single-parameter setters keep the other parameter.
func TestSetters(tst *testing.T) {
	m := NewDefault()
	if err := m.SetTemperature(60); err != nil {
		tst.Fatal("Error: ", err)
	}
	if err := m.SetSaltConc(0.5); err != nil {
		tst.Fatal("Error: ", err)
	}
	if m.Temperature() != 60 || m.SaltConc() != 0.5 {
		tst.Error("Expected conditions 60, 0.5, got ",
			m.Temperature(), ", ", m.SaltConc())
	}
	dG, err := m.DeltaG("GATTACA")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	ref := -1.1706792611
	if math.Abs(dG-ref) > smallDiff {
		tst.Error("Expected ", ref, ", got ", dG)
	}
}

// Duplexes become more stable as the salt concentration grows.
func TestDeltaGSaltMonotonic(tst *testing.T) {
	m := NewDefault()
	prev := math.Inf(1)
	for _, salt := range []float64{0.05, 0.1, 0.5, 1} {
		if err := m.SetSaltConc(salt); err != nil {
			tst.Fatal("Error: ", err)
		}
		dG, err := m.DeltaG("GATTACA")
		if err != nil {
			tst.Fatal("Error: ", err)
		}
		tst.Log("salt=", salt, ", dG=", dG)
		if dG >= prev {
			tst.Error("Expected dG to decrease, got ", dG, " after ", prev)
		}
		prev = dG
	}
}

// The default model table matches a directly derived table.
func TestDeltaGTableDefault(tst *testing.T) {
	m := NewDefault()
	tbl, err := GibbsTable(DefaultTemperature, DefaultSaltConc)
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	mtbl := m.DeltaGTable()
	for k, v := range tbl {
		if mtbl[k] != v {
			tst.Error("Entry ", k, ": expected ", v, ", got ", mtbl[k])
		}
	}
}

// Modifying the returned table does not affect the model.
func TestDeltaGTableCopy(tst *testing.T) {
	m := NewDefault()
	tbl := m.DeltaGTable()
	tbl["AA"] = 0
	dG, err := m.DeltaG("AAA")
	if err != nil {
		tst.Fatal("Error: ", err)
	}
	ref := -1.88761
	if math.Abs(dG-ref) > smallDiff {
		tst.Error("Expected ", ref, ", got ", dG)
	}
}

/*** Benchmark the evaluator ***/
func BenchmarkDeltaG(b *testing.B) {
	m := NewDefault()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.DeltaG(seq35)
	}
}

/*** Benchmark the table derivation ***/
func BenchmarkSetConditions(b *testing.B) {
	m := NewDefault()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m.SetConditions(60, 0.5)
	}
}

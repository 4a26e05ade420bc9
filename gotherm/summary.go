package main

// CallSummary stores the summary information of a gotherm call.
type CallSummary struct {
	// Version stores gotherm version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Temperature is the temperature in °C.
	Temperature float64 `json:"temperature"`
	// SaltConc is the monovalent cation concentration in M.
	SaltConc float64 `json:"saltConc"`
	// Results stores a summary for every input sequence.
	Results []SequenceSummary `json:"results"`
	// TotalTime is the computations time in seconds.
	TotalTime float64 `json:"time"`
}

// SequenceSummary stores the result for a single sequence.
type SequenceSummary struct {
	// Sequence is the uppercased input sequence.
	Sequence string `json:"sequence"`
	// Length is the sequence length.
	Length int `json:"length"`
	// SelfComplementary is true if the sequence equals its own
	// reverse complement.
	SelfComplementary bool `json:"selfComplementary"`
	// DeltaG is the duplex formation free energy in kcal/mol.
	DeltaG float64 `json:"deltaG"`
}

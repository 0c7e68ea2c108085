package assessment

// DeltaRow pairs one diagnostic score with the final score at the same
// positional index.
type DeltaRow struct {
	Diagnostic float64 `json:"diagnostic"`
	Final      float64 `json:"final"`
	Delta      float64 `json:"delta"`
}

// DeltaReport is the paired diagnostic→final evolution table plus summary
// statistics. MeanValid and CorrelationValid gate their fields so an empty
// or degenerate pairing never leaks a NaN into a rendered view.
type DeltaReport struct {
	Rows []DeltaRow `json:"rows"`

	MeanDelta float64 `json:"mean_delta"`
	MeanValid bool    `json:"mean_valid"`

	// Correlation is the Pearson correlation between the two score series,
	// defined only when both series have at least two points and nonzero
	// variance.
	Correlation      float64 `json:"correlation"`
	CorrelationValid bool    `json:"correlation_valid"`
}

// Empty reports whether the pairing produced no rows
func (r DeltaReport) Empty() bool { return len(r.Rows) == 0 }

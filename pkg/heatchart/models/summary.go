package models

// BatchSummary describes one alloy-code batch.
type BatchSummary struct {
	// AlloyCode is the alloy code of the batch.
	AlloyCode string `json:"alloy_code"`
	// Input is the report path that was loaded.
	Input string `json:"input"`
	// OutputDir is the directory charts and tables were written to.
	OutputDir string `json:"output_dir"`
	// Rows is the number of melts in the pivoted table.
	Rows int `json:"rows"`
	// Targets is the number of melts labeled as targets.
	Targets int `json:"targets"`
	// Files lists every file written during the batch.
	Files []string `json:"files,omitempty"`
	// Omitted maps an element to the positions left out of its chart.
	Omitted map[string][]string `json:"omitted,omitempty"`
	// Error holds the fatal error message, if the batch failed.
	Error string `json:"error,omitempty"`
}

// RunSummary is the container for all batches of a run.
type RunSummary struct {
	// Batches maps alloy code to BatchSummary.
	Batches map[string]BatchSummary `json:"batches"`
}

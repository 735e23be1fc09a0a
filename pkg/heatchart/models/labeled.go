package models

// LabeledRow is a PivotRow with its reset index and target label.
type LabeledRow struct {
	PivotRow
	// Index is the row position after the index reset (0-based).
	Index int `json:"index"`
	// Label is 1 for target melts and 0 otherwise.
	Label int `json:"label"`
}

// LabeledTable is a PivotTable extended with a binary target column.
type LabeledTable struct {
	// LabelName is the name of the binary column, e.g. "trial_heats".
	LabelName string `json:"label_name"`
	// Columns lists the concentration columns carried over from the pivot.
	Columns []ColumnKey `json:"columns"`
	// Rows holds the labeled rows in index order.
	Rows []LabeledRow `json:"rows"`
}

// HasColumn reports whether the table carries the given column.
func (t *LabeledTable) HasColumn(key ColumnKey) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == key {
			return true
		}
	}
	return false
}

// Targets returns the number of rows labeled 1.
func (t *LabeledTable) Targets() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, r := range t.Rows {
		if r.Label == 1 {
			n++
		}
	}
	return n
}

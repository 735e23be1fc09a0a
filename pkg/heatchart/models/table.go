package models

// ColumnKey identifies a pivoted concentration column.
type ColumnKey struct {
	// Element is the element code.
	Element string `json:"element"`
	// Position is the measurement position label.
	Position string `json:"position"`
}

// String returns the flat column name used in persisted tables, e.g. "Al_Beg".
func (k ColumnKey) String() string {
	return k.Element + "_" + k.Position
}

// PivotRow represents one melt with its concentrations.
type PivotRow struct {
	// MeltID is the melt identifier. Unique within a table.
	MeltID string `json:"melt_id"`
	// HeatNo is the heat number extracted from MeltID.
	HeatNo string `json:"heat_no"`
	// Values maps a column to its concentration. Absent keys are missing values.
	Values map[ColumnKey]float64 `json:"-"`
}

// Value returns the concentration stored under key.
func (r PivotRow) Value(key ColumnKey) (float64, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// PivotTable is a wide table with one row per melt.
type PivotTable struct {
	// Columns lists the (element, position) columns, ordered by element then position.
	Columns []ColumnKey `json:"columns"`
	// Rows holds one entry per melt, sorted by heat number.
	Rows []PivotRow `json:"rows"`
}

// HasColumn reports whether the table carries the given column.
func (t *PivotTable) HasColumn(key ColumnKey) bool {
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

// MeltIDs returns the melt identifiers in row order.
func (t *PivotTable) MeltIDs() []string {
	if t == nil {
		return nil
	}
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.MeltID
	}
	return ids
}

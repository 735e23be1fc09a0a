package transform

import (
	"fmt"
	"sort"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"go.uber.org/zap"
)

// Positions holds the two measurement position labels kept by the pivot.
type Positions struct {
	Beginning string
	End       string
}

// DefaultPositions returns the position labels used by the LIMS export.
func DefaultPositions() Positions {
	return Positions{Beginning: "Beg", End: "End"}
}

func (p Positions) withDefaults() Positions {
	d := DefaultPositions()
	if p.Beginning == "" {
		p.Beginning = d.Beginning
	}
	if p.End == "" {
		p.End = d.End
	}
	return p
}

// PivotOptions configures Pivot.
type PivotOptions struct {
	// Elements lists the element codes to keep.
	Elements []string
	// Positions holds the beginning and end labels. Empty labels use the defaults.
	Positions Positions
	// HeatNumberPolicy handles melt ids without a heat number. Empty means fail.
	HeatNumberPolicy HeatNumberPolicy
	// Sentinel is the heat number assigned under HeatNumberSentinel.
	Sentinel string
	// SortMode orders rows by heat number. Empty means lexical.
	SortMode SortMode
	// Logger receives warnings for excluded melts. Nil disables logging.
	Logger *zap.Logger
}

type meltKey struct {
	meltID   string
	element  string
	position string
}

// Pivot reshapes a report into one row per melt with one column per
// (element, position) pair, sorted by heat number.
// A filter that leaves no rows yields an empty table.
func Pivot(report *models.Report, opts PivotOptions) (*models.PivotTable, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pos := opts.Positions.withDefaults()

	keep := make(map[string]bool, len(opts.Elements))
	for _, e := range opts.Elements {
		keep[e] = true
	}

	var filtered []models.Measurement
	if report != nil {
		for _, m := range report.Measurements {
			if !keep[m.Element] {
				continue
			}
			if m.Position != pos.Beginning && m.Position != pos.End {
				continue
			}
			filtered = append(filtered, m)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Element < filtered[j].Element
	})

	seen := make(map[meltKey]bool, len(filtered))
	columns := make(map[models.ColumnKey]bool)
	rows := make(map[string]*models.PivotRow)
	for _, m := range filtered {
		k := meltKey{meltID: m.MeltID, element: m.Element, position: m.Position}
		if seen[k] {
			return nil, fmt.Errorf("%w: melt %q element %q position %q", ErrDuplicateEntry, m.MeltID, m.Element, m.Position)
		}
		seen[k] = true

		col := models.ColumnKey{Element: m.Element, Position: m.Position}
		columns[col] = true

		row, ok := rows[m.MeltID]
		if !ok {
			row = &models.PivotRow{MeltID: m.MeltID, Values: make(map[models.ColumnKey]float64)}
			rows[m.MeltID] = row
		}
		if m.Conc != nil {
			row.Values[col] = *m.Conc
		}
	}

	table := &models.PivotTable{Columns: sortedColumns(columns)}

	meltIDs := make([]string, 0, len(rows))
	for id := range rows {
		meltIDs = append(meltIDs, id)
	}
	sort.Strings(meltIDs)

	for _, id := range meltIDs {
		row := rows[id]
		heatNo, ok := HeatNumber(id)
		if !ok {
			switch opts.HeatNumberPolicy {
			case HeatNumberExclude:
				logger.Warn("Excluding melt without heat number", zap.String("melt_id", id))
				continue
			case HeatNumberSentinel:
				heatNo = opts.Sentinel
			default:
				return nil, fmt.Errorf("%w: %q", ErrNoHeatNumber, id)
			}
		}
		row.HeatNo = heatNo
		table.Rows = append(table.Rows, *row)
	}

	mode := opts.SortMode
	sort.SliceStable(table.Rows, func(i, j int) bool {
		return lessHeatNo(table.Rows[i].HeatNo, table.Rows[j].HeatNo, mode)
	})

	return table, nil
}

// sortedColumns orders columns by element, then position.
func sortedColumns(set map[models.ColumnKey]bool) []models.ColumnKey {
	cols := make([]models.ColumnKey, 0, len(set))
	for c := range set {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].Element != cols[j].Element {
			return cols[i].Element < cols[j].Element
		}
		return cols[i].Position < cols[j].Position
	})
	return cols
}

package transform

import (
	"errors"
	"fmt"
	"maps"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"go.uber.org/zap"
)

// DefaultLabel is the name of the target column when none is given.
const DefaultLabel = "trial_heats"

var errNoTable = errors.New("no pivot table")

// Label marks the rows of table whose melt id is in targets.
// The returned table has its index reset. If target membership cannot be
// determined, the failure is logged and every row is labeled 0.
func Label(table *models.PivotTable, targets []string, name string, logger *zap.Logger) *models.LabeledTable {
	if logger == nil {
		logger = zap.NewNop()
	}
	if name == "" {
		name = DefaultLabel
	}

	out := &models.LabeledTable{LabelName: name}
	if table != nil {
		out.Columns = append([]models.ColumnKey(nil), table.Columns...)
		out.Rows = make([]models.LabeledRow, len(table.Rows))
		for i, r := range table.Rows {
			r.Values = maps.Clone(r.Values)
			out.Rows[i] = models.LabeledRow{PivotRow: r, Index: i}
		}
	}

	labels, err := matchTargets(table, targets)
	if err != nil {
		logger.Warn("Labeling target heats failed; all rows left unlabeled",
			zap.String("label", name), zap.Error(err))
		return out
	}
	for i := range out.Rows {
		out.Rows[i].Label = labels[i]
	}
	return out
}

// matchTargets returns 1 for each row whose melt id is in targets, 0 otherwise.
func matchTargets(table *models.PivotTable, targets []string) ([]int, error) {
	if table == nil {
		return nil, errNoTable
	}
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t] = true
	}

	labels := make([]int, len(table.Rows))
	for i, r := range table.Rows {
		if r.MeltID == "" {
			return nil, fmt.Errorf("row %d has no melt id", i)
		}
		if set[r.MeltID] {
			labels[i] = 1
		}
	}
	return labels, nil
}

package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractRows reads the raw string rows of a worksheet.
// Rows without any non-blank cell are dropped.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result [][]string
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		result = append(result, row)
	}

	return result, nil
}

// isBlankRow reports whether every cell of the row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseConc attempts to parse a concentration cell.
// Returns nil for empty, non-numeric or non-finite values.
func parseConc(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Package output serializes labeled tables and run summaries.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/xuri/excelize/v2"
)

// Format is the file format of a persisted labeled table.
type Format string

const (
	// FormatCSV writes a comma-delimited file.
	FormatCSV Format = "csv"
	// FormatXLSX writes a single-sheet workbook.
	FormatXLSX Format = "xlsx"
)

// ParseFormat parses a table format name. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	case "":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("invalid table format: %s (must be csv or xlsx)", s)
}

// TableFileName returns the conventional file name "{alloy_code}_{label}.{format}".
func TableFileName(alloyCode, label string, format Format) string {
	if format == "" {
		format = FormatCSV
	}
	return alloyCode + "_" + label + "." + string(format)
}

// Header returns the column names of a persisted table.
func Header(t *models.LabeledTable) []string {
	header := []string{"Melt_id", "HeatNo"}
	for _, c := range t.Columns {
		header = append(header, c.String())
	}
	return append(header, t.LabelName)
}

// Records returns the table rows as strings, parallel to Header.
// Missing concentrations are empty cells.
func Records(t *models.LabeledTable) [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := []string{r.MeltID, r.HeatNo}
		for _, c := range t.Columns {
			if v, ok := r.Value(c); ok {
				rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				rec = append(rec, "")
			}
		}
		records = append(records, append(rec, strconv.Itoa(r.Label)))
	}
	return records
}

// WriteCSV writes the table to w as comma-delimited text.
func WriteCSV(w io.Writer, t *models.LabeledTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(t)); err != nil {
		return err
	}
	if err := cw.WriteAll(Records(t)); err != nil {
		return err
	}
	return cw.Error()
}

// WriteTable writes the table to path in the given format.
func WriteTable(t *models.LabeledTable, path string, format Format) error {
	switch format {
	case FormatXLSX:
		return writeXLSX(t, path)
	case FormatCSV, "":
		return writeCSVFile(t, path)
	}
	return fmt.Errorf("invalid table format: %s", format)
}

func writeCSVFile(t *models.LabeledTable, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, t)
}

func writeXLSX(t *models.LabeledTable, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.LabelName)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := Header(t)
	if err := setRow(f, sheet, 1, toCells(header)); err != nil {
		return err
	}
	for i, r := range t.Rows {
		cells := []interface{}{r.MeltID, r.HeatNo}
		for _, c := range t.Columns {
			if v, ok := r.Value(c); ok {
				cells = append(cells, v)
			} else {
				cells = append(cells, nil)
			}
		}
		cells = append(cells, r.Label)
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// sheetName returns a worksheet name valid for Excel (max 31 chars, no []:*?/\).
func sheetName(label string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, label)
	if name == "" {
		name = "Sheet1"
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}

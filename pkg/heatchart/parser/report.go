// Package parser provides composition report loading for CSV and XLSX exports.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/xuri/excelize/v2"
)

// LoadOptions configures report loading.
type LoadOptions struct {
	// Columns names the required report columns. Empty names use the defaults.
	Columns ReportColumns
	// Sheet selects the worksheet of an xlsx report. Empty means the first sheet.
	Sheet string
	// Delimiter overrides the CSV field delimiter. If 0, '\t' for .tsv and ',' otherwise.
	Delimiter rune
}

// LoadReport reads a composition report from a CSV, TSV or XLSX file.
func LoadReport(path string, opts LoadOptions) (*models.Report, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path, opts.Sheet)
	default:
		rows, err = readDelimited(path, opts.Delimiter)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	report, err := buildReport(rows, opts.Columns.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	report.Source = filepath.Base(path)
	return report, nil
}

// ReadReport reads a delimited report from r.
func ReadReport(r io.Reader, opts LoadOptions) (*models.Report, error) {
	rows, err := readCSV(r, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	return buildReport(rows, opts.Columns.withDefaults())
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}
	return ExtractRows(f, sheet)
}

func readDelimited(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	return readCSV(f, delim)
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if delim != 0 {
		cr.Comma = delim
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlankRow(rec) {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

// buildReport maps raw rows onto measurements using the header row.
func buildReport(rows [][]string, cols ReportColumns) (*models.Report, error) {
	headerIdx, index, err := findHeader(rows, cols.names())
	if err != nil {
		return nil, err
	}

	cell := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	report := &models.Report{}
	for _, row := range rows[headerIdx+1:] {
		report.Measurements = append(report.Measurements, models.Measurement{
			AlloyCode: cell(row, cols.AlloyCode),
			MeltID:    cell(row, cols.MeltID),
			Element:   cell(row, cols.Element),
			Position:  cell(row, cols.Position),
			Conc:      parseConc(cell(row, cols.Conc)),
		})
	}
	return report, nil
}

package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
	"github.com/xuri/excelize/v2"
)

var (
	alBeg = models.ColumnKey{Element: "Al", Position: "Beg"}
	alEnd = models.ColumnKey{Element: "Al", Position: "End"}
)

func sampleTable() *models.LabeledTable {
	return &models.LabeledTable{
		LabelName: "RR",
		Columns:   []models.ColumnKey{alBeg, alEnd},
		Rows: []models.LabeledRow{
			{PivotRow: models.PivotRow{MeltID: "140B001", HeatNo: "001", Values: map[models.ColumnKey]float64{alBeg: 1.0, alEnd: 1.2}}, Index: 0, Label: 1},
			{PivotRow: models.PivotRow{MeltID: "140B002", HeatNo: "002", Values: map[models.ColumnKey]float64{alBeg: 0.9}}, Index: 1, Label: 0},
		},
	}
}

func TestTableFileName(t *testing.T) {
	tests := []struct {
		alloy, label string
		format       Format
		expected     string
	}{
		{"140", "RR", FormatCSV, "140_RR.csv"},
		{"2005", "trial_heats", FormatXLSX, "2005_trial_heats.xlsx"},
		{"062", "RR", "", "062_RR.csv"},
	}

	for _, tt := range tests {
		if result := TableFileName(tt.alloy, tt.label, tt.format); result != tt.expected {
			t.Errorf("TableFileName(%q, %q, %q) = %q, expected %q", tt.alloy, tt.label, tt.format, result, tt.expected)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "Melt_id,HeatNo,Al_Beg,Al_End,RR\n" +
		"140B001,001,1,1.2,1\n" +
		"140B002,002,0.9,,0\n"
	if buf.String() != expected {
		t.Errorf("WriteCSV output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteTableCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), TableFileName("140", "RR", FormatCSV))
	if err := WriteTable(sampleTable(), path, FormatCSV); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("Melt_id,HeatNo,Al_Beg,Al_End,RR\n")) {
		t.Errorf("Unexpected header: %q", data)
	}
}

func TestWriteTableXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), TableFileName("140", "RR", FormatXLSX))
	if err := WriteTable(sampleTable(), path, FormatXLSX); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("RR")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][4] != "RR" || rows[1][0] != "140B001" || rows[1][4] != "1" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestWriteTableFailsOnMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "140_RR.csv")
	if err := WriteTable(sampleTable(), path, FormatCSV); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{"XLSX", FormatXLSX, false},
		{"parquet", "", true},
	}

	for _, tt := range tests {
		result, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || result != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, result, err)
		}
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"RR", "RR"},
		{"a/b:c", "a_b_c"},
		{"", "Sheet1"},
		{"abcdefghijklmnopqrstuvwxyz0123456789", "abcdefghijklmnopqrstuvwxyz01234"},
	}

	for _, tt := range tests {
		if result := sheetName(tt.label); result != tt.expected {
			t.Errorf("sheetName(%q) = %q, expected %q", tt.label, result, tt.expected)
		}
	}
}

func TestToJSON(t *testing.T) {
	s := &models.RunSummary{Batches: map[string]models.BatchSummary{
		"140": {AlloyCode: "140", Rows: 2, Targets: 1, Files: []string{"140_RR.csv"}},
	}}

	data, err := ToJSON(s, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded map[string]map[string]map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	batch := decoded["batches"]["140"]
	if batch["rows"] != float64(2) || batch["targets"] != float64(1) {
		t.Errorf("Unexpected batch: %v", batch)
	}
	if _, ok := batch["error"]; ok {
		t.Errorf("Expected error to be omitted, got %v", batch["error"])
	}

	pretty, err := ToJSON(s, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"batches\"")) {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

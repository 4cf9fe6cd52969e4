package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

func testBuilder() *grid.CellBuilder {
	return grid.NewCellBuilder(grid.NewColumnMapper([]models.Column{
		{ID: 1, Index: 0, Title: "Name"},
		{ID: 2, Index: 1, Title: "Score"},
		{ID: 3, Index: 2, Title: "Site"},
	}))
}

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Header on row 2, row 1 left empty
	f.SetCellValue(sheetName, "A2", "Name")
	f.SetCellValue(sheetName, "B2", "Score")
	f.SetCellValue(sheetName, "C2", "Site")
	f.SetCellValue(sheetName, "A3", "Alice")
	f.SetCellValue(sheetName, "B3", 90)
	f.SetCellValue(sheetName, "C3", "Docs")
	f.SetCellHyperLink(sheetName, "C3", "https://example.com/docs", "External")
	f.SetCellValue(sheetName, "A4", "Bob")
	f.SetCellValue(sheetName, "B4", 75.5)
	f.SetCellValue(sheetName, "A6", "Carol")

	// Save to temp file
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	// Open and read
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName, testBuilder(), ReadOptions{})
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.ID != 0 {
			t.Errorf("row %d: expected new row, got id %d", i, row.ID)
		}
	}

	// Check first row
	if len(rows[0].Cells) != 3 {
		t.Fatalf("Expected 3 cells, got %d", len(rows[0].Cells))
	}
	name, err := rows[0].Cells[0].ValueAsText()
	if err != nil || name != "Alice" {
		t.Errorf("Expected 'Alice', got %q (%v)", name, err)
	}
	score, err := rows[0].Cells[1].ValueAsUint64()
	if err != nil || score != 90 {
		t.Errorf("Expected 90, got %d (%v)", score, err)
	}
	url, ok := rows[0].Cells[2].LinkURL()
	if !ok || url != "https://example.com/docs" {
		t.Errorf("Expected hyperlink, got %q", url)
	}
	if rows[0].Cells[2].ColumnID != 3 {
		t.Errorf("Expected column 3, got %d", rows[0].Cells[2].ColumnID)
	}

	// Check decimals and sparse rows
	if len(rows[1].Cells) != 2 {
		t.Errorf("Expected 2 cells, got %d", len(rows[1].Cells))
	}
	f64, err := rows[1].Cells[1].ValueAsFloat64()
	if err != nil || f64 != 75.5 {
		t.Errorf("Expected 75.5, got %v (%v)", f64, err)
	}
	if len(rows[2].Cells) != 1 || rows[2].Cells[0].ColumnID != 1 {
		t.Errorf("Expected a single Name cell, got %+v", rows[2].Cells)
	}
}

func TestReadRowsColumnFilter(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Unknown")
	f.SetCellValue("Sheet1", "A2", "Alice")
	f.SetCellValue("Sheet1", "B2", "ignored")
	f.SetCellValue("Sheet1", "B3", "only unknown")

	rows, err := ReadRows(f, "Sheet1", testBuilder(), ReadOptions{Columns: []string{"Name"}, SkipLinks: true})
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if len(rows[0].Cells) != 1 || rows[0].Cells[0].ColumnID != 1 {
		t.Errorf("Expected only the Name cell, got %+v", rows[0].Cells)
	}
}

func TestReadRowsUnknownColumn(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", "Unknown")

	_, err := ReadRows(f, "Sheet1", testBuilder(), ReadOptions{})
	if err == nil {
		t.Fatal("Expected an error for an unknown header")
	}
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected ImportError, got %T", err)
	}
	if ie.Row != 1 || ie.Sheet != "Sheet1" {
		t.Errorf("Expected sheet %q row 1, got %q row %d", "Sheet1", ie.Sheet, ie.Row)
	}
	if !errors.Is(err, grid.ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestReadRowsEmptyAndMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows, err := ReadRows(f, "Sheet1", testBuilder(), ReadOptions{})
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}

	if _, err := ReadRows(f, "Nope", testBuilder(), ReadOptions{}); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellValue
	}{
		{"123", models.IntValue(123)},
		{"-456", models.IntValue(-456)},
		{"3.14", mustFloat(t, 3.14)},
		{"-2.5", mustFloat(t, -2.5)},
		{"TRUE", models.BoolValue(true)},
		{"false", models.BoolValue(false)},
		{"hello", models.TextValue("hello")},
		{"123abc", models.TextValue("123abc")},
		{"NaN", models.TextValue("NaN")},
		{"007", models.TextValue("007")},
		{"00123", models.TextValue("00123")},
		{"-01", models.TextValue("-01")},
		{"00.5", models.TextValue("00.5")},
		{"0", models.IntValue(0)},
		{"0.25", mustFloat(t, 0.25)},
		{"-0.5", mustFloat(t, -0.5)},
		{"", models.TextValue("")},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result.Kind() != tt.expected.Kind() || !result.Equal(tt.expected) {
			t.Errorf("ParseValue(%q) = %v (%s), expected %v (%s)",
				tt.input, result, result.Kind(), tt.expected, tt.expected.Kind())
		}
	}
}

func mustFloat(t *testing.T, f float64) models.CellValue {
	t.Helper()
	v, err := models.FloatValue(f)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

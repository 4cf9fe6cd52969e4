package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// maxSheetNameLen is Excel's limit on worksheet names.
const maxSheetNameLen = 31

// XLSXOptions configures WriteXLSX.
type XLSXOptions struct {
	// PreferDisplay writes display values (as text) where the service
	// returned them, instead of raw typed values.
	PreferDisplay bool
	// SkipLinks drops cell hyperlinks.
	SkipLinks bool
}

// WriteXLSX writes sheet as a single-worksheet workbook. The first row
// holds the column titles in column index order.
func WriteXLSX(w io.Writer, sheet *models.Sheet, opts XLSXOptions) error {
	if len(sheet.Columns) == 0 {
		return fmt.Errorf("sheet %d has no columns", sheet.ID)
	}
	cols := grid.MapperFromSheet(sheet)

	f := excelize.NewFile()
	defer f.Close()

	name := SanitizeSheetName(sheet.Name)
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}

	position := make(map[uint64]int, cols.Len())
	for i, c := range cols.Columns() {
		position[c.ID] = i + 1
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, c.Title); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(cols.Len(), 1)
	if err := f.SetCellStyle(name, "A1", last, style); err != nil {
		return err
	}

	for rowIdx := range sheet.Rows {
		rowNum := rowIdx + 2 // below the header
		for _, c := range sheet.Rows[rowIdx].Cells {
			col, ok := position[c.ColumnID]
			if !ok {
				continue
			}
			value, ok := cellValue(&c, opts.PreferDisplay)
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("row %d: %w", sheet.Rows[rowIdx].ID, err)
			}
			if url, ok := c.LinkURL(); ok && url != "" && !opts.SkipLinks {
				if err := f.SetCellHyperLink(name, cell, url, "External"); err != nil {
					return fmt.Errorf("row %d: %w", sheet.Rows[rowIdx].ID, err)
				}
			}
		}
	}

	return f.Write(w)
}

// cellValue picks what to write for c: the display value when preferred
// and present, else the raw value, else the display value of composite
// cells.
func cellValue(c *models.Cell, preferDisplay bool) (any, bool) {
	display, hasDisplay := c.DisplayText()
	if preferDisplay && hasDisplay {
		return display, true
	}
	if c.Value != nil {
		return c.Value.Interface(), true
	}
	if hasDisplay {
		return display, true
	}
	return nil, false
}

// SanitizeSheetName makes name a valid worksheet name: no []:*?/\
// characters, no surrounding apostrophes, at most 31 characters.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if utf8.RuneCountInString(name) > maxSheetNameLen {
		name = string([]rune(name)[:maxSheetNameLen])
	}
	if strings.TrimSpace(name) == "" {
		return "Sheet1"
	}
	return name
}

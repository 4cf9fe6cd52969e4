// Package parser imports worksheet data into rows ready to be added to a
// sheet.
package parser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ReadOptions configures ReadRows.
type ReadOptions struct {
	// Columns restricts the import to these header titles. Empty imports
	// every titled column.
	Columns []string
	// SkipLinks imports hyperlinked cells as plain values.
	SkipLinks bool
}

func (o ReadOptions) wants(title string) bool {
	return len(o.Columns) == 0 || slices.Contains(o.Columns, title)
}

// ReadRows reads a worksheet laid out as a table: the first non-empty row
// holds column titles and each later non-empty row becomes a new Row.
// Blank cells are skipped. Cells with hyperlinks become hyperlink cells.
//
// Every imported header title must exist in the builder's column mapper,
// otherwise an ImportError wrapping grid.ColumnNotFoundError is returned.
func ReadRows(f *excelize.File, sheetName string, b *grid.CellBuilder, opts ReadOptions) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, NewImportError(sheetName, 0, err)
	}

	headerIdx := firstNonEmptyRow(rows)
	if headerIdx < 0 {
		return nil, nil
	}

	columnIDs := make(map[int]uint64)
	for colIdx, raw := range rows[headerIdx] {
		title := strings.TrimSpace(raw)
		if title == "" || !opts.wants(title) {
			continue
		}
		id, err := b.Mapper().ID(title)
		if err != nil {
			return nil, NewImportError(sheetName, headerIdx+1, err)
		}
		columnIDs[colIdx] = id
	}

	var result []models.Row
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		var cells []models.Cell

		for colIdx, cellValue := range rows[rowIdx] {
			if cellValue == "" {
				continue
			}
			columnID, ok := columnIDs[colIdx]
			if !ok {
				continue
			}

			if !opts.SkipLinks {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					cells = append(cells, b.URLHyperlinkCellWithID(columnID, cellValue, target))
					continue
				}
			}

			cell, err := b.CellWithID(columnID, ParseValue(cellValue))
			if err != nil {
				return nil, NewImportError(sheetName, rowNum, err)
			}
			cells = append(cells, cell)
		}

		if len(cells) > 0 {
			result = append(result, *models.NewRow(cells...))
		}
	}

	return result, nil
}

// ParseValue converts worksheet text into a cell value.
// Boolean literals (any case) become Boolean values, integers and decimals
// Numeric values, and anything else Text. Numbers written with leading
// zeros, such as "007", stay Text so codes keep their digits.
func ParseValue(s string) models.CellValue {
	if strings.EqualFold(s, "true") {
		return models.BoolValue(true)
	}
	if strings.EqualFold(s, "false") {
		return models.BoolValue(false)
	}
	if hasLeadingZero(s) {
		return models.TextValue(s)
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.IntValue(i)
	}
	// Try float; non-finite values stay text
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if v, err := models.FloatValue(f); err == nil {
			return v
		}
	}
	return models.TextValue(s)
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

// firstNonEmptyRow returns the index of the first row with any data, or -1.
func firstNonEmptyRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rowIdx
			}
		}
	}
	return -1
}

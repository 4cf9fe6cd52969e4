// Package output renders sheets as JSON documents and xlsx workbooks.
package output

import (
	"encoding/json"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// SheetView is a title-keyed rendering of a sheet.
type SheetView struct {
	ID        uint64       `json:"id"`
	Name      string       `json:"name"`
	Version   uint64       `json:"version,omitempty"`
	Permalink string       `json:"permalink,omitempty"`
	Columns   []ColumnView `json:"columns"`
	Rows      []RowView    `json:"rows"`
}

// ColumnView describes one column.
type ColumnView struct {
	ID    uint64 `json:"id"`
	Index uint64 `json:"index"`
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`
}

// RowView is a row with its cells keyed by column title.
type RowView struct {
	// ID is the row id.
	ID uint64 `json:"id"`
	// RowNumber is the 1-based position in the sheet.
	RowNumber uint64 `json:"rowNumber,omitempty"`
	// Values maps column title to raw value, or to the object value for
	// composite cells.
	Values map[string]any `json:"values"`
	// Display maps column title to display value where it differs from the raw value.
	Display map[string]string `json:"display,omitempty"`
	// Links maps column title to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}

// ToJSON serializes v to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// NewSheetView renders sheet by column title. A sheet without columns
// renders with no rows.
func NewSheetView(sheet *models.Sheet) SheetView {
	view := SheetView{
		ID:        sheet.ID,
		Name:      sheet.Name,
		Version:   sheet.Version,
		Permalink: sheet.Permalink,
		Columns:   []ColumnView{},
		Rows:      []RowView{},
	}
	if len(sheet.Columns) == 0 {
		return view
	}
	cols := grid.MapperFromSheet(sheet)
	for _, c := range cols.Columns() {
		view.Columns = append(view.Columns, ColumnView{ID: c.ID, Index: c.Index, Title: c.Title, Type: c.Type})
	}
	view.Rows = NewRowViews(sheet.Rows, cols)
	return view
}

// NewRowViews renders rows by column title.
func NewRowViews(rows []models.Row, cols *grid.ColumnMapper) []RowView {
	getter := grid.NewCellGetter(cols)
	out := make([]RowView, 0, len(rows))
	for i := range rows {
		out = append(out, newRowView(&rows[i], getter))
	}
	return out
}

func newRowView(row *models.Row, getter *grid.CellGetter) RowView {
	rv := RowView{ID: row.ID, RowNumber: row.RowNumber, Values: map[string]any{}}
	for title, cell := range getter.NameToCell(row) {
		switch {
		case cell.Value != nil:
			rv.Values[title] = *cell.Value
		case len(cell.ObjectValue) > 0:
			rv.Values[title] = cell.ObjectValue
		default:
			continue
		}
		if s, ok := cell.DisplayText(); ok && (cell.Value == nil || s != cell.Value.String()) {
			if rv.Display == nil {
				rv.Display = map[string]string{}
			}
			rv.Display[title] = s
		}
		if url, ok := cell.LinkURL(); ok && url != "" {
			if rv.Links == nil {
				rv.Links = map[string]string{}
			}
			rv.Links[title] = url
		}
	}
	return rv
}

// SheetToJSON serializes sheet through NewSheetView.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return ToJSON(NewSheetView(sheet), pretty)
}

// RowsToJSON serializes rows through NewRowViews.
func RowsToJSON(rows []models.Row, cols *grid.ColumnMapper, pretty bool) ([]byte, error) {
	return ToJSON(NewRowViews(rows, cols), pretty)
}

// RowPtrsToJSON is RowsToJSON for query results.
func RowPtrsToJSON(rows []*models.Row, cols *grid.ColumnMapper, pretty bool) ([]byte, error) {
	flat := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		flat = append(flat, *r)
	}
	return RowsToJSON(flat, cols, pretty)
}

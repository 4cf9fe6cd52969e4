package grid

import (
	"strconv"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// Comparison selects how a RowFinder compares cell values.
type Comparison uint8

const (
	Eq Comparison = iota
	Ne
)

func (c Comparison) String() string {
	if c == Ne {
		return "!="
	}
	return "=="
}

// Matches compares a bound query value with a cell value.
func (c Comparison) Matches(bound, actual models.CellValue) bool {
	eq := bound.Equal(actual)
	if c == Ne {
		return !eq
	}
	return eq
}

// RowGetter runs equality queries over a slice of rows.
type RowGetter struct {
	rows []models.Row
	cols *ColumnMapper
}

// NewRowGetter returns a RowGetter over rows, resolving titles through cols.
func NewRowGetter(rows []models.Row, cols *ColumnMapper) *RowGetter {
	return &RowGetter{rows: rows, cols: cols}
}

// WhereEq finds rows whose cell in column title equals value.
func (g *RowGetter) WhereEq(title string, value any) (*RowFinder, error) {
	return g.where(title, value, Eq)
}

// WhereNe finds rows whose cell in column title is set and differs from
// value. Rows with an absent or empty cell match neither WhereEq nor
// WhereNe.
func (g *RowGetter) WhereNe(title string, value any) (*RowFinder, error) {
	return g.where(title, value, Ne)
}

// WhereEqByID is WhereEq with a column id.
func (g *RowGetter) WhereEqByID(columnID uint64, value any) (*RowFinder, error) {
	return g.whereID(columnID, strconv.FormatUint(columnID, 10), value, Eq)
}

// WhereNeByID is WhereNe with a column id.
func (g *RowGetter) WhereNeByID(columnID uint64, value any) (*RowFinder, error) {
	return g.whereID(columnID, strconv.FormatUint(columnID, 10), value, Ne)
}

func (g *RowGetter) where(title string, value any, cmp Comparison) (*RowFinder, error) {
	id, err := g.cols.ID(title)
	if err != nil {
		return nil, err
	}
	return g.whereID(id, title, value, cmp)
}

func (g *RowGetter) whereID(columnID uint64, label string, value any, cmp Comparison) (*RowFinder, error) {
	v, err := models.ValueOf(value)
	if err != nil {
		return nil, err
	}
	return NewRowFinder(g.rows, columnID, label, v, cmp), nil
}

// RowFinder holds one bound condition. It is usually obtained from a
// RowGetter.
type RowFinder struct {
	rows     []models.Row
	columnID uint64
	label    string
	value    models.CellValue
	cmp      Comparison
}

// NewRowFinder binds a condition on columnID. label names the column in
// error messages.
func NewRowFinder(rows []models.Row, columnID uint64, label string, value models.CellValue, cmp Comparison) *RowFinder {
	return &RowFinder{rows: rows, columnID: columnID, label: label, value: value, cmp: cmp}
}

// A row without a cell for the column, or whose cell has no value, matches
// neither Eq nor Ne.
func (f *RowFinder) match(row *models.Row) bool {
	cell, err := row.CellByID(f.columnID)
	if err != nil || cell.Value == nil {
		return false
	}
	return f.cmp.Matches(f.value, *cell.Value)
}

// First returns the first matching row in row order, or a NoMatchError.
func (f *RowFinder) First() (*models.Row, error) {
	for i := range f.rows {
		if f.match(&f.rows[i]) {
			return &f.rows[i], nil
		}
	}
	return nil, &NoMatchError{Column: f.label, Comparison: f.cmp, Value: f.value}
}

// FindAll returns every matching row in row order. No match is an empty
// result, not an error.
func (f *RowFinder) FindAll() []*models.Row {
	out := []*models.Row{}
	for i := range f.rows {
		if f.match(&f.rows[i]) {
			out = append(out, &f.rows[i])
		}
	}
	return out
}

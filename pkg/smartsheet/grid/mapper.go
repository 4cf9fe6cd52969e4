// Package grid navigates the rows and columns of a fetched sheet: it maps
// column titles to ids, looks up cells, builds correctly-shaped cells
// for writes and finds rows matching a condition.
//
// Everything in this package works on caller-owned snapshots and never
// performs I/O, so values may be shared between goroutines once built.
package grid

import (
	"slices"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ColumnMapper is the bidirectional title <-> id index of a sheet's columns.
// It keeps its own copy of the titles and ids.
type ColumnMapper struct {
	nameToID map[string]uint64
	idToName map[uint64]string
	columns  []models.Column
}

// NewColumnMapper indexes columns. When two columns share a title the
// later one wins the title -> id entry.
//
// It panics if columns is empty: rows fetched without column data cannot
// be navigated by title, so this is a programming error. Request the
// columns (for example with the columns include flag) before mapping.
func NewColumnMapper(columns []models.Column) *ColumnMapper {
	if len(columns) == 0 {
		panic("grid: no column data; fetch the sheet or row with columns included before building a ColumnMapper")
	}
	m := &ColumnMapper{
		nameToID: make(map[string]uint64, len(columns)),
		idToName: make(map[uint64]string, len(columns)),
		columns:  slices.Clone(columns),
	}
	for _, c := range columns {
		m.nameToID[c.Title] = c.ID
		m.idToName[c.ID] = c.Title
	}
	slices.SortStableFunc(m.columns, func(a, b models.Column) int {
		switch {
		case a.Index < b.Index:
			return -1
		case a.Index > b.Index:
			return 1
		}
		return 0
	})
	return m
}

// MapperFromSheet is NewColumnMapper(sheet.Columns).
func MapperFromSheet(sheet *models.Sheet) *ColumnMapper {
	return NewColumnMapper(sheet.Columns)
}

// ID resolves a column title.
func (m *ColumnMapper) ID(title string) (uint64, error) {
	id, ok := m.nameToID[title]
	if !ok {
		return 0, &ColumnNotFoundError{Title: title}
	}
	return id, nil
}

// Title resolves a column id.
func (m *ColumnMapper) Title(id uint64) (string, bool) {
	title, ok := m.idToName[id]
	return title, ok
}

// Len returns the number of mapped columns.
func (m *ColumnMapper) Len() int {
	return len(m.columns)
}

// Titles returns the column titles in column index order.
func (m *ColumnMapper) Titles() []string {
	out := make([]string, 0, len(m.columns))
	for _, c := range m.columns {
		out = append(out, c.Title)
	}
	return out
}

// Columns returns a copy of the columns in column index order.
func (m *ColumnMapper) Columns() []models.Column {
	return slices.Clone(m.columns)
}

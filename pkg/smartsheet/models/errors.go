package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValueType indicates a typed accessor was called on a different variant.
	ErrValueType = errors.New("cell value type mismatch")
	// ErrInvalidValue indicates a value that cannot be represented as a cell value.
	ErrInvalidValue = errors.New("invalid cell value")
	// ErrNoValue indicates the cell carries no raw value.
	ErrNoValue = errors.New("cell has no value")
	// ErrCellNotFound indicates the row has no cell for the column.
	ErrCellNotFound = errors.New("cell not found")
	// ErrRowNotFound indicates the sheet has no row with the id.
	ErrRowNotFound = errors.New("row not found")
	// ErrLocation indicates contradictory row location specifiers.
	ErrLocation = errors.New("conflicting row location")
)

// ValueTypeError reports the variant that was requested and the one found.
type ValueTypeError struct {
	Want Kind
	Got  Kind
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("cell value is %s, not %s", e.Got, e.Want)
}

func (e *ValueTypeError) Unwrap() error {
	return ErrValueType
}

// CellNotFoundError represents a row without a cell for a column. Sheets
// may omit empty cells entirely, so this is not the same as an empty cell.
type CellNotFoundError struct {
	RowID    uint64
	ColumnID uint64
}

func (e *CellNotFoundError) Error() string {
	return fmt.Sprintf("row %d has no cell for column id %d", e.RowID, e.ColumnID)
}

func (e *CellNotFoundError) Unwrap() error {
	return ErrCellNotFound
}

// LocationError lists the location specifiers that cannot be combined.
type LocationError struct {
	RowID  uint64
	Fields []string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("row %d: location specifiers %v cannot be combined", e.RowID, e.Fields)
}

func (e *LocationError) Unwrap() error {
	return ErrLocation
}

package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

var (
	// ErrColumnNotFound indicates a column title unknown to the mapper.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoMatch indicates that no row satisfied a query.
	ErrNoMatch = errors.New("no matching row")
	// ErrExpression indicates a row filter expression failed to compile or run.
	ErrExpression = errors.New("invalid row expression")
)

// ColumnNotFoundError reports a column title the sheet does not have.
type ColumnNotFoundError struct {
	Title string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("a column named %q was not found in the sheet", e.Title)
}

func (e *ColumnNotFoundError) Unwrap() error {
	return ErrColumnNotFound
}

// NoMatchError describes the query that matched no row.
type NoMatchError struct {
	// Column is the column title, or the column id for id-based queries.
	Column     string
	Comparison Comparison
	Value      models.CellValue
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no row where %s %s %q", e.Column, e.Comparison, e.Value.String())
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

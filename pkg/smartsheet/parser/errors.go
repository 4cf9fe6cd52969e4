package parser

import (
	"fmt"
)

// ImportError represents a failure while importing a worksheet.
type ImportError struct {
	Sheet string
	// Row is the 1-based worksheet row, 0 when not tied to a row.
	Row int
	Err error
}

func (e *ImportError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("import error in sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("import error in sheet %q row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(sheet string, row int, err error) *ImportError {
	return &ImportError{
		Sheet: sheet,
		Row:   row,
		Err:   err,
	}
}

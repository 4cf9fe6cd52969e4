package grid

import (
	"fmt"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// CellGetter retrieves cells from rows by column title or id.
type CellGetter struct {
	cols *ColumnMapper
}

// NewCellGetter returns a CellGetter resolving titles through cols.
func NewCellGetter(cols *ColumnMapper) *CellGetter {
	return &CellGetter{cols: cols}
}

// ByName returns the cell of row in the column titled name. An unknown
// title yields a ColumnNotFoundError, a row without a cell for the column
// a CellNotFoundError.
func (g *CellGetter) ByName(row *models.Row, name string) (*models.Cell, error) {
	id, err := g.cols.ID(name)
	if err != nil {
		return nil, err
	}
	cell, err := row.CellByID(id)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return cell, nil
}

// ByID returns the cell of row for a column id.
func (g *CellGetter) ByID(row *models.Row, columnID uint64) (*models.Cell, error) {
	return row.CellByID(columnID)
}

// NameToCell maps each column title to the row's cell in one pass. Cells
// for columns unknown to the mapper are left out.
func (g *CellGetter) NameToCell(row *models.Row) map[string]*models.Cell {
	out := make(map[string]*models.Cell, len(row.Cells))
	for i := range row.Cells {
		if title, ok := g.cols.Title(row.Cells[i].ColumnID); ok {
			out[title] = &row.Cells[i]
		}
	}
	return out
}

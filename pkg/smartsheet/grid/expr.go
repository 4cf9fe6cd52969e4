package grid

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ExprFinder filters rows with a boolean expr-lang expression.
//
// Each row is evaluated against an environment holding:
//
//	cells      map of column title to native value (string, bool, int64, float64)
//	id         the row id
//	rowNumber  the row number
//
// Column titles that are valid identifiers are also bound directly, so
// `Score >= 80 && Name != "Bob"` works as well as `cells["Score"] >= 80`.
// A column titled cells, id or rowNumber is only reachable through the
// cells map, e.g. `cells["id"]`.
// Empty or absent cells evaluate to nil. A nil result counts as false.
// Ordering a nil value is an evaluation error; guard it with
// `Score != nil && Score >= 80`.
type ExprFinder struct {
	rows    []models.Row
	getter  *CellGetter
	source  string
	program *vm.Program
}

// Where compiles expression once for filtering g's rows.
func (g *RowGetter) Where(expression string) (*ExprFinder, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrExpression, expression, err)
	}
	return &ExprFinder{
		rows:    g.rows,
		getter:  NewCellGetter(g.cols),
		source:  expression,
		program: program,
	}, nil
}

func (f *ExprFinder) env(row *models.Row) map[string]any {
	cells := make(map[string]any, len(row.Cells))
	env := make(map[string]any, len(row.Cells)+3)
	env["cells"] = cells
	env["id"] = row.ID
	env["rowNumber"] = row.RowNumber
	for title, cell := range f.getter.NameToCell(row) {
		var v any
		if cell.Value != nil {
			v = cell.Value.Interface()
		}
		cells[title] = v
		if _, reserved := env[title]; !reserved {
			env[title] = v
		}
	}
	return env
}

func (f *ExprFinder) match(row *models.Row) (bool, error) {
	result, err := expr.Run(f.program, f.env(row))
	if err != nil {
		return false, fmt.Errorf("%w: evaluate %q on row %d: %v", ErrExpression, f.source, row.ID, err)
	}
	if result == nil {
		return false, nil
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q evaluated to %T, expected bool", ErrExpression, f.source, result)
	}
	return b, nil
}

// First returns the first row for which the expression holds.
func (f *ExprFinder) First() (*models.Row, error) {
	for i := range f.rows {
		ok, err := f.match(&f.rows[i])
		if err != nil {
			return nil, err
		}
		if ok {
			return &f.rows[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMatch, f.source)
}

// FindAll returns every row for which the expression holds, in row order.
func (f *ExprFinder) FindAll() ([]*models.Row, error) {
	out := []*models.Row{}
	for i := range f.rows {
		ok, err := f.match(&f.rows[i])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, &f.rows[i])
		}
	}
	return out, nil
}

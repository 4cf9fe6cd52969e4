package smartsheet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/grid"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/parser"
)

// ImportOptions configures ImportXLSX.
type ImportOptions struct {
	// Tab is the worksheet to read. Empty means the first worksheet.
	Tab string
	// Columns restricts the import to these header titles.
	Columns []string
	// SkipLinks imports hyperlinked cells as plain values.
	SkipLinks bool
	// ToTop inserts the rows at the top of the sheet instead of the bottom.
	ToTop bool
	// Params are passed to AddRows.
	Params RowWriteParams
}

// ImportXLSX reads a worksheet whose first non-empty row holds column
// titles and adds every later row to the sheet.
func (c *Client) ImportXLSX(ctx context.Context, sheetID uint64, path string, opts ImportOptions) (*models.RowResult[[]models.Row], error) {
	rows, err := c.ReadXLSX(ctx, sheetID, path, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows to import", path)
	}
	for i := range rows {
		if opts.ToTop {
			rows[i].ToTopOf()
		} else {
			rows[i].ToBottomOf()
		}
	}
	c.logger.InfoContext(ctx, "importing rows", "sheet_id", sheetID, "file", path, "rows", len(rows))
	return c.AddRows(ctx, sheetID, rows, opts.Params)
}

// ReadXLSX parses a worksheet into new rows for sheetID without adding
// them. Column titles are resolved against the sheet's current columns.
func (c *Client) ReadXLSX(ctx context.Context, sheetID uint64, path string, opts ImportOptions) ([]models.Row, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	tab := opts.Tab
	if tab == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no worksheets", ErrInvalidFormat, path)
		}
		tab = sheets[0]
	}

	cols, err := c.ListColumns(ctx, sheetID, ListColumnsParams{IncludeAll: Bool(true)})
	if err != nil {
		return nil, err
	}
	if len(cols.Data) == 0 {
		return nil, fmt.Errorf("sheet %d has no columns", sheetID)
	}
	b := grid.NewCellBuilder(grid.NewColumnMapper(cols.Data))

	return parser.ReadRows(f, tab, b, parser.ReadOptions{
		Columns:   opts.Columns,
		SkipLinks: opts.SkipLinks,
	})
}

package smartsheet

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// GetRow retrieves one row of a sheet.
func (c *Client) GetRow(ctx context.Context, sheetID, rowID uint64, p GetRowParams) (*models.Row, error) {
	var out models.Row
	path := fmt.Sprintf("/sheets/%d/rows/%d", sheetID, rowID)
	if err := c.do(ctx, "GET", path, p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRowWithColumnData retrieves a row together with the sheet's columns,
// enough to build a grid.ColumnMapper from Row.Columns.
func (c *Client) GetRowWithColumnData(ctx context.Context, sheetID, rowID uint64) (*models.Row, error) {
	return c.GetRow(ctx, sheetID, rowID, GetRowParams{Include: []string{IncludeColumns}})
}

// AddRows inserts new rows into a sheet.
func (c *Client) AddRows(ctx context.Context, sheetID uint64, rows []models.Row, p RowWriteParams) (*models.RowResult[[]models.Row], error) {
	return c.writeRows(ctx, "POST", sheetID, rows, p)
}

// UpdateRows changes cell values and positions of existing rows.
func (c *Client) UpdateRows(ctx context.Context, sheetID uint64, rows []models.Row, p RowWriteParams) (*models.RowResult[[]models.Row], error) {
	for i := range rows {
		if rows[i].ID == 0 {
			return nil, fmt.Errorf("update rows: row %d has no id", i)
		}
	}
	return c.writeRows(ctx, "PUT", sheetID, rows, p)
}

func (c *Client) writeRows(ctx context.Context, method string, sheetID uint64, rows []models.Row, p RowWriteParams) (*models.RowResult[[]models.Row], error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows to write")
	}
	for i := range rows {
		if err := rows[i].ValidateLocation(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	var out models.RowResult[[]models.Row]
	if err := c.do(ctx, method, fmt.Sprintf("/sheets/%d/rows", sheetID), p.values(), rows, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRows deletes rows by id. With ignoreNotFound, ids that do not
// exist are skipped instead of failing the whole call.
func (c *Client) DeleteRows(ctx context.Context, sheetID uint64, ids []uint64, ignoreNotFound bool) (*models.RowResult[[]uint64], error) {
	if len(ids) == 0 {
		return nil, errors.New("no row ids to delete")
	}
	q := query{}
	q.ids("ids", ids)
	if ignoreNotFound {
		q.flag("ignoreRowsNotFound", Bool(true))
	}
	var out models.RowResult[[]uint64]
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/sheets/%d/rows", sheetID), url.Values(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

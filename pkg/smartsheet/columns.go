package smartsheet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ListColumns lists the columns of a sheet.
func (c *Client) ListColumns(ctx context.Context, sheetID uint64, p ListColumnsParams) (*models.IndexResult[models.Column], error) {
	var out models.IndexResult[models.Column]
	if err := c.do(ctx, "GET", fmt.Sprintf("/sheets/%d/columns", sheetID), p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetColumn retrieves one column. level may be nil.
func (c *Client) GetColumn(ctx context.Context, sheetID, columnID uint64, level *Level) (*models.Column, error) {
	q := query{}
	q.level(level)
	var out models.Column
	path := fmt.Sprintf("/sheets/%d/columns/%d", sheetID, columnID)
	if err := c.do(ctx, "GET", path, url.Values(q), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetColumnByTitle lists all columns and returns the first titled title.
func (c *Client) GetColumnByTitle(ctx context.Context, sheetID uint64, title string) (*models.Column, error) {
	c.logger.WarnContext(ctx, "GetColumnByTitle lists every column; cache the column id and call GetColumn instead",
		"sheet_id", sheetID, "title", title)

	list, err := c.ListColumns(ctx, sheetID, ListColumnsParams{IncludeAll: Bool(true)})
	if err != nil {
		return nil, err
	}
	for i := range list.Data {
		if list.Data[i].Title == title {
			return &list.Data[i], nil
		}
	}
	return nil, fmt.Errorf("column %q in sheet %d: %w", title, sheetID, ErrNotFound)
}

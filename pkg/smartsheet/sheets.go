package smartsheet

import (
	"context"
	"fmt"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ListSheets lists the sheets the caller can access, in alphabetical
// order. Each entry is an abbreviated sheet without rows or columns.
func (c *Client) ListSheets(ctx context.Context, p ListSheetsParams) (*models.IndexResult[models.Sheet], error) {
	var out models.IndexResult[models.Sheet]
	if err := c.do(ctx, "GET", "/sheets", p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSheet retrieves a sheet with its columns and rows.
func (c *Client) GetSheet(ctx context.Context, sheetID uint64, p GetSheetParams) (*models.Sheet, error) {
	var out models.Sheet
	if err := c.do(ctx, "GET", fmt.Sprintf("/sheets/%d", sheetID), p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSheetWithMultiContactInfo retrieves a sheet with MULTI_CONTACT cells
// populated as object values.
func (c *Client) GetSheetWithMultiContactInfo(ctx context.Context, sheetID uint64) (*models.Sheet, error) {
	return c.GetSheet(ctx, sheetID, GetSheetParams{
		Include: []string{IncludeObjectValue},
		Level:   LevelOf(LevelMultiContact),
	})
}

// GetSheetByName lists all sheets and fetches the first one named name.
// It costs an extra request; prefer caching the id and calling GetSheet.
func (c *Client) GetSheetByName(ctx context.Context, name string) (*models.Sheet, error) {
	c.logger.WarnContext(ctx, "GetSheetByName lists every sheet; cache the sheet id and call GetSheet instead", "name", name)

	list, err := c.ListSheets(ctx, ListSheetsParams{IncludeAll: Bool(true)})
	if err != nil {
		return nil, err
	}
	for _, s := range list.Data {
		if s.Name == name {
			return c.GetSheet(ctx, s.ID, GetSheetParams{})
		}
	}
	return nil, fmt.Errorf("sheet %q: %w", name, ErrNotFound)
}

package smartsheet

import (
	"context"
	"fmt"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// ListAttachments lists the attachments on a sheet and its rows.
func (c *Client) ListAttachments(ctx context.Context, sheetID uint64) (*models.IndexResult[models.AttachmentMeta], error) {
	var out models.IndexResult[models.AttachmentMeta]
	if err := c.do(ctx, "GET", fmt.Sprintf("/sheets/%d/attachments", sheetID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAttachment retrieves an attachment with a temporary download URL.
func (c *Client) GetAttachment(ctx context.Context, sheetID, attachmentID uint64) (*models.Attachment, error) {
	var out models.Attachment
	path := fmt.Sprintf("/sheets/%d/attachments/%d", sheetID, attachmentID)
	if err := c.do(ctx, "GET", path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package models

import "fmt"

// Sheet is the top-level tabular document: columns, rows and metadata.
type Sheet struct {
	ID                  uint64      `json:"id"`
	Name                string      `json:"name"`
	Owner               string      `json:"owner,omitempty"`
	OwnerID             uint64      `json:"ownerId,omitempty"`
	AccessLevel         AccessLevel `json:"accessLevel,omitempty"`
	Permalink           string      `json:"permalink,omitempty"`
	CreatedAt           string      `json:"createdAt,omitempty"`
	ModifiedAt          string      `json:"modifiedAt,omitempty"`
	Version             uint64      `json:"version,omitempty"`
	TotalRowCount       uint64      `json:"totalRowCount,omitempty"`
	Favorite            bool        `json:"favorite,omitempty"`
	ReadOnly            bool        `json:"readOnly,omitempty"`
	GanttEnabled        bool        `json:"ganttEnabled,omitempty"`
	DependenciesEnabled bool        `json:"dependenciesEnabled,omitempty"`
	Workspace           *Workspace  `json:"workspace,omitempty"`
	Columns             []Column    `json:"columns,omitempty"`
	Rows                []Row       `json:"rows,omitempty"`
}

// Workspace is the workspace a sheet lives in.
type Workspace struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// RowByID returns the row with id.
func (s *Sheet) RowByID(id uint64) (*Row, error) {
	for i := range s.Rows {
		if s.Rows[i].ID == id {
			return &s.Rows[i], nil
		}
	}
	return nil, fmt.Errorf("sheet %d: row %d: %w", s.ID, id, ErrRowNotFound)
}

// ColumnByTitle returns the first column titled title.
func (s *Sheet) ColumnByTitle(title string) (*Column, error) {
	for i := range s.Columns {
		if s.Columns[i].Title == title {
			return &s.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("sheet %d: no column titled %q", s.ID, title)
}

// IndexResult is one page of a list endpoint.
type IndexResult[T any] struct {
	Data       []T    `json:"data"`
	PageNumber uint64 `json:"pageNumber"`
	PageSize   uint64 `json:"pageSize"`
	TotalCount uint64 `json:"totalCount"`
	TotalPages uint64 `json:"totalPages"`
}

// RowResult is the response envelope of row add, update and delete calls.
type RowResult[T any] struct {
	Message    string `json:"message"`
	ResultCode int64  `json:"resultCode"`
	Result     T      `json:"result"`
	Version    uint64 `json:"version,omitempty"`
}

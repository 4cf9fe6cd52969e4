package models

import (
	"encoding/json"
)

// Row is an ordered collection of cells plus row metadata.
//
// A zero ID marks a new row: it is left out of request bodies, so the same
// type serves both add and update requests. The location specifiers
// (SiblingID through Outdent) are request-only and never decoded.
type Row struct {
	// ID is the row id, 0 for rows not yet created.
	ID uint64
	// Cells holds the row's cells. Empty cells may be absent.
	Cells []Cell

	// Writable row attributes.
	Expanded *bool
	Format   string
	Locked   *bool

	// Response-only attributes.
	SheetID           uint64
	RowNumber         uint64
	Version           uint64
	AccessLevel       AccessLevel
	Attachments       []AttachmentMeta
	Discussions       []Discussion
	Columns           []Column
	ConditionalFormat string
	CreatedAt         string
	CreatedBy         *User
	ModifiedAt        string
	ModifiedBy        *User
	FilteredOut       bool
	InCriticalPath    bool
	LockedForUser     bool
	Permalink         string

	// Location specifiers, see ValidateLocation.
	SiblingID *uint64
	ParentID  *uint64
	ToTop     bool
	ToBottom  bool
	Above     bool
	Indent    bool
	Outdent   bool
}

type rowResponse struct {
	ID                uint64           `json:"id"`
	SheetID           uint64           `json:"sheetId"`
	RowNumber         uint64           `json:"rowNumber"`
	Version           uint64           `json:"version"`
	AccessLevel       AccessLevel      `json:"accessLevel"`
	Attachments       []AttachmentMeta `json:"attachments"`
	Discussions       []Discussion     `json:"discussions"`
	Cells             []Cell           `json:"cells"`
	Columns           []Column         `json:"columns"`
	ConditionalFormat string           `json:"conditionalFormat"`
	CreatedAt         string           `json:"createdAt"`
	CreatedBy         *User            `json:"createdBy"`
	ModifiedAt        string           `json:"modifiedAt"`
	ModifiedBy        *User            `json:"modifiedBy"`
	Expanded          *bool            `json:"expanded"`
	FilteredOut       bool             `json:"filteredOut"`
	Format            string           `json:"format"`
	InCriticalPath    bool             `json:"inCriticalPath"`
	Locked            *bool            `json:"locked"`
	LockedForUser     bool             `json:"lockedForUser"`
	Permalink         string           `json:"permalink"`
}

type rowRequest struct {
	ID        uint64  `json:"id,omitempty"`
	Cells     []Cell  `json:"cells,omitempty"`
	Expanded  *bool   `json:"expanded,omitempty"`
	Format    string  `json:"format,omitempty"`
	Locked    *bool   `json:"locked,omitempty"`
	SiblingID *uint64 `json:"siblingId,omitempty"`
	ParentID  *uint64 `json:"parentId,omitempty"`
	ToTop     bool    `json:"toTop,omitempty"`
	ToBottom  bool    `json:"toBottom,omitempty"`
	Above     bool    `json:"above,omitempty"`
	Indent    int     `json:"indent,omitempty"`
	Outdent   int     `json:"outdent,omitempty"`
}

// NewRow returns a row to be added to a sheet.
func NewRow(cells ...Cell) *Row {
	return &Row{Cells: cells}
}

// ExistingRow returns a row update for the row with id.
func ExistingRow(id uint64, cells ...Cell) *Row {
	return &Row{ID: id, Cells: cells}
}

// MarshalJSON emits the request projection of the row. Indent and outdent
// are sent as the number 1.
func (r Row) MarshalJSON() ([]byte, error) {
	req := rowRequest{
		ID:        r.ID,
		Cells:     r.Cells,
		Expanded:  r.Expanded,
		Format:    r.Format,
		Locked:    r.Locked,
		SiblingID: r.SiblingID,
		ParentID:  r.ParentID,
		ToTop:     r.ToTop,
		ToBottom:  r.ToBottom,
		Above:     r.Above,
	}
	if r.Indent {
		req.Indent = 1
	}
	if r.Outdent {
		req.Outdent = 1
	}
	return json.Marshal(req)
}

// UnmarshalJSON decodes the response projection of the row.
func (r *Row) UnmarshalJSON(data []byte) error {
	var w rowResponse
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Row{
		ID:                w.ID,
		Cells:             w.Cells,
		Expanded:          w.Expanded,
		Format:            w.Format,
		Locked:            w.Locked,
		SheetID:           w.SheetID,
		RowNumber:         w.RowNumber,
		Version:           w.Version,
		AccessLevel:       w.AccessLevel,
		Attachments:       w.Attachments,
		Discussions:       w.Discussions,
		Columns:           w.Columns,
		ConditionalFormat: w.ConditionalFormat,
		CreatedAt:         w.CreatedAt,
		CreatedBy:         w.CreatedBy,
		ModifiedAt:        w.ModifiedAt,
		ModifiedBy:        w.ModifiedBy,
		FilteredOut:       w.FilteredOut,
		InCriticalPath:    w.InCriticalPath,
		LockedForUser:     w.LockedForUser,
		Permalink:         w.Permalink,
	}
	return nil
}

// CellByID returns the cell for a column id.
func (r *Row) CellByID(columnID uint64) (*Cell, error) {
	for i := range r.Cells {
		if r.Cells[i].ColumnID == columnID {
			return &r.Cells[i], nil
		}
	}
	return nil, &CellNotFoundError{RowID: r.ID, ColumnID: columnID}
}

// ToTopOf places the row at the top of the sheet, or of its parent's
// children when combined with UnderParent.
func (r *Row) ToTopOf() *Row {
	r.ToTop = true
	return r
}

// ToBottomOf places the row at the bottom of the sheet, or of its parent's
// children when combined with UnderParent.
func (r *Row) ToBottomOf() *Row {
	r.ToBottom = true
	return r
}

// UnderParent makes the row a child of parentID.
func (r *Row) UnderParent(parentID uint64) *Row {
	r.ParentID = &parentID
	return r
}

// NextTo places the row directly below siblingID.
func (r *Row) NextTo(siblingID uint64) *Row {
	r.SiblingID = &siblingID
	return r
}

// AboveSibling places the row directly above siblingID.
func (r *Row) AboveSibling(siblingID uint64) *Row {
	r.SiblingID = &siblingID
	r.Above = true
	return r
}

// IndentOnce indents an existing row by one level.
func (r *Row) IndentOnce() *Row {
	r.Indent = true
	return r
}

// OutdentOnce outdents an existing row by one level.
func (r *Row) OutdentOnce() *Row {
	r.Outdent = true
	return r
}

// ValidateLocation checks that the location specifiers form one of the
// placements the API accepts:
//
//	toTop | toBottom
//	parentId [+ toTop | toBottom]
//	siblingId [+ above]
//	indent
//	outdent
func (r *Row) ValidateLocation() error {
	var set []string
	if r.ToTop {
		set = append(set, "toTop")
	}
	if r.ToBottom {
		set = append(set, "toBottom")
	}
	if r.ParentID != nil {
		set = append(set, "parentId")
	}
	if r.SiblingID != nil {
		set = append(set, "siblingId")
	}
	if r.Above {
		set = append(set, "above")
	}
	if r.Indent {
		set = append(set, "indent")
	}
	if r.Outdent {
		set = append(set, "outdent")
	}

	conflict := false
	switch {
	case len(set) <= 1:
		conflict = r.Above
	case r.Indent || r.Outdent:
		conflict = true
	case r.ToTop && r.ToBottom:
		conflict = true
	case r.SiblingID != nil:
		conflict = r.ToTop || r.ToBottom || r.ParentID != nil
	case r.Above:
		conflict = true
	}
	if conflict {
		return &LocationError{RowID: r.ID, Fields: set}
	}
	return nil
}

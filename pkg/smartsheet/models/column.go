package models

// Column type codes.
const (
	ColumnTextNumber    = "TEXT_NUMBER"
	ColumnDate          = "DATE"
	ColumnDateTime      = "DATETIME"
	ColumnContactList   = "CONTACT_LIST"
	ColumnMultiContact  = "MULTI_CONTACT_LIST"
	ColumnCheckbox      = "CHECKBOX"
	ColumnPicklist      = "PICKLIST"
	ColumnMultiPicklist = "MULTI_PICKLIST"
	ColumnDuration      = "DURATION"
	ColumnPredecessor   = "PREDECESSOR"
)

// Column is a typed field definition within a sheet. Columns are created
// by the service; the client only reads them.
type Column struct {
	ID             uint64          `json:"id"`
	Index          uint64          `json:"index"`
	Title          string          `json:"title"`
	Type           string          `json:"type"`
	Primary        bool            `json:"primary,omitempty"`
	Hidden         bool            `json:"hidden,omitempty"`
	Locked         bool            `json:"locked,omitempty"`
	LockedForUser  bool            `json:"lockedForUser,omitempty"`
	Validation     bool            `json:"validation,omitempty"`
	Version        uint64          `json:"version,omitempty"`
	Width          uint64          `json:"width,omitempty"`
	Description    string          `json:"description,omitempty"`
	Options        []string        `json:"options,omitempty"`
	Symbol         string          `json:"symbol,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Format         string          `json:"format,omitempty"`
	Formula        string          `json:"formula,omitempty"`
	ContactOptions []ContactOption `json:"contactOptions,omitempty"`
}

// ContactOption is a preset contact offered by a contact list column.
type ContactOption struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name"`
}

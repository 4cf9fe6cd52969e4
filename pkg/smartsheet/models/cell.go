package models

import (
	"encoding/json"
	"fmt"
)

// Cell is the value held at the intersection of a row and a column.
//
// The same type is used for responses and requests, but the two
// directions see different fields: DisplayValue, ColumnType, Formula,
// ConditionalFormat, Format and Image are only ever decoded, while Strict
// and OverrideValidation are only ever encoded.
type Cell struct {
	// ColumnID is the id of the column the cell belongs to.
	ColumnID uint64
	// Value is the raw editable value. Nil means the cell is empty.
	Value *CellValue
	// ObjectValue holds composite payloads such as multi-picklist and
	// multi-contact lists.
	ObjectValue json.RawMessage
	// Hyperlink is set when the cell links to a URL or a resource.
	Hyperlink *Hyperlink
	// DisplayValue is the formatted value as shown to users, e.g. "$1,234.57".
	DisplayValue *string
	// ColumnType is returned when the include parameter has columnType.
	ColumnType string
	// Formula is the cell formula, e.g. "=COUNTM([Assigned To]3)".
	Formula string
	// ConditionalFormat is the conditional format descriptor.
	ConditionalFormat string
	// Format is the format descriptor.
	Format string
	// Image is set for cells holding an image.
	Image *Image
	// Strict set to false enables lenient parsing on write.
	Strict *bool
	// OverrideValidation (admin only) allows values outside validation limits.
	// Strict must also be false.
	OverrideValidation *bool
}

type cellResponse struct {
	ColumnID          uint64          `json:"columnId"`
	Value             *CellValue      `json:"value,omitempty"`
	ObjectValue       json.RawMessage `json:"objectValue,omitempty"`
	Hyperlink         *Hyperlink      `json:"hyperlink,omitempty"`
	DisplayValue      *string         `json:"displayValue,omitempty"`
	ColumnType        string          `json:"columnType,omitempty"`
	Formula           string          `json:"formula,omitempty"`
	ConditionalFormat string          `json:"conditionalFormat,omitempty"`
	Format            string          `json:"format,omitempty"`
	Image             *Image          `json:"image,omitempty"`
}

type cellRequest struct {
	ColumnID           uint64          `json:"columnId"`
	Value              *CellValue      `json:"value,omitempty"`
	ObjectValue        json.RawMessage `json:"objectValue,omitempty"`
	Hyperlink          *Hyperlink      `json:"hyperlink,omitempty"`
	Strict             *bool           `json:"strict,omitempty"`
	OverrideValidation *bool           `json:"overrideValidation,omitempty"`
}

// NewCell returns an empty cell for a column.
func NewCell(columnID uint64) Cell {
	return Cell{ColumnID: columnID}
}

// MarshalJSON emits the request projection of the cell.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellRequest{
		ColumnID:           c.ColumnID,
		Value:              c.Value,
		ObjectValue:        c.ObjectValue,
		Hyperlink:          c.Hyperlink,
		Strict:             c.Strict,
		OverrideValidation: c.OverrideValidation,
	})
}

// UnmarshalJSON decodes the response projection of the cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var r cellResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if string(r.ObjectValue) == "null" {
		r.ObjectValue = nil
	}
	*c = Cell{
		ColumnID:          r.ColumnID,
		Value:             r.Value,
		ObjectValue:       r.ObjectValue,
		Hyperlink:         r.Hyperlink,
		DisplayValue:      r.DisplayValue,
		ColumnType:        r.ColumnType,
		Formula:           r.Formula,
		ConditionalFormat: r.ConditionalFormat,
		Format:            r.Format,
		Image:             r.Image,
	}
	return nil
}

// WithStrict sets the strict parsing flag.
func (c Cell) WithStrict(strict bool) Cell {
	c.Strict = &strict
	return c
}

// WithOverrideValidation sets the override flag and disables strict
// parsing, which the API requires for the override to apply.
func (c Cell) WithOverrideValidation(override bool) Cell {
	c.OverrideValidation = &override
	if override {
		strict := false
		c.Strict = &strict
	}
	return c
}

func (c *Cell) value() (CellValue, error) {
	if c.Value == nil {
		return CellValue{}, fmt.Errorf("column id %d: %w", c.ColumnID, ErrNoValue)
	}
	return *c.Value, nil
}

// ValueAsText returns the raw value as a string.
func (c *Cell) ValueAsText() (string, error) {
	v, err := c.value()
	if err != nil {
		return "", err
	}
	return v.AsText()
}

// ValueText returns the raw value as a string, if set and textual.
func (c *Cell) ValueText() (string, bool) {
	if c.Value == nil {
		return "", false
	}
	return c.Value.Text()
}

// ValueAsBool returns the raw value as a boolean.
func (c *Cell) ValueAsBool() (bool, error) {
	v, err := c.value()
	if err != nil {
		return false, err
	}
	return v.AsBool()
}

// ValueAsNumber returns the raw value as a JSON number.
func (c *Cell) ValueAsNumber() (json.Number, error) {
	v, err := c.value()
	if err != nil {
		return "", err
	}
	return v.AsNumber()
}

// ValueAsUint64 returns the raw value as an unsigned integer.
func (c *Cell) ValueAsUint64() (uint64, error) {
	v, err := c.value()
	if err != nil {
		return 0, err
	}
	return v.AsUint64()
}

// ValueAsFloat64 returns the raw value as a float.
func (c *Cell) ValueAsFloat64() (float64, error) {
	v, err := c.value()
	if err != nil {
		return 0, err
	}
	return v.AsFloat64()
}

// DisplayText returns the server-formatted display value, if any.
func (c *Cell) DisplayText() (string, bool) {
	if c.DisplayValue == nil {
		return "", false
	}
	return *c.DisplayValue, true
}

// DisplayValueAsText returns the display value or an error when absent.
func (c *Cell) DisplayValueAsText() (string, error) {
	s, ok := c.DisplayText()
	if !ok {
		return "", fmt.Errorf("column id %d: no display value", c.ColumnID)
	}
	return s, nil
}

// LinkURL returns the hyperlink URL, if the cell has a hyperlink.
func (c *Cell) LinkURL() (string, bool) {
	if c.Hyperlink == nil {
		return "", false
	}
	return c.Hyperlink.URL, true
}

// ObjectValues returns the `values` array of a list-shaped object value.
func (c *Cell) ObjectValues() ([]json.RawMessage, error) {
	if len(c.ObjectValue) == 0 {
		return nil, fmt.Errorf("column id %d: no object value", c.ColumnID)
	}
	var env struct {
		Values []json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(c.ObjectValue, &env); err != nil {
		return nil, fmt.Errorf("column id %d: object value is not a list: %w", c.ColumnID, err)
	}
	if env.Values == nil {
		return nil, fmt.Errorf("column id %d: object value has no values", c.ColumnID)
	}
	return env.Values, nil
}

// Contacts decodes the contacts of a MULTI_CONTACT cell. A single CONTACT
// object value is returned as a one-element list.
func (c *Cell) Contacts() (Contacts, error) {
	if len(c.ObjectValue) == 0 {
		return nil, fmt.Errorf("column id %d: no object value", c.ColumnID)
	}
	var env struct {
		ObjectType ObjectType `json:"objectType"`
		Email      string     `json:"email"`
		Name       string     `json:"name"`
		Values     []Contact  `json:"values"`
	}
	if err := json.Unmarshal(c.ObjectValue, &env); err != nil {
		return nil, fmt.Errorf("column id %d: decode contacts: %w", c.ColumnID, err)
	}
	switch env.ObjectType {
	case ObjectContact:
		return Contacts{{Email: env.Email, Name: env.Name}}, nil
	case ObjectMultiContact:
		return Contacts(env.Values), nil
	default:
		return nil, fmt.Errorf("column id %d: object value %q holds no contacts", c.ColumnID, env.ObjectType)
	}
}

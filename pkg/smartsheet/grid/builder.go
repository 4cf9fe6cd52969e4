package grid

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// CellBuilder constructs cells in the shape each column type expects.
// The title based methods fail with a ColumnNotFoundError for titles the
// mapper does not know; the *WithID variants cannot fail on lookup.
type CellBuilder struct {
	cols *ColumnMapper
}

// NewCellBuilder returns a CellBuilder resolving titles through cols.
func NewCellBuilder(cols *ColumnMapper) *CellBuilder {
	return &CellBuilder{cols: cols}
}

// Cell builds a scalar cell. value may be anything models.ValueOf
// accepts, including LightPicker and Decision options.
func (b *CellBuilder) Cell(title string, value any) (models.Cell, error) {
	id, err := b.cols.ID(title)
	if err != nil {
		return models.Cell{}, err
	}
	return b.CellWithID(id, value)
}

// CellWithID builds a scalar cell for a column id.
func (b *CellBuilder) CellWithID(columnID uint64, value any) (models.Cell, error) {
	v, err := models.ValueOf(value)
	if err != nil {
		return models.Cell{}, fmt.Errorf("column id %d: %w", columnID, err)
	}
	return models.Cell{ColumnID: columnID, Value: &v}, nil
}

// URLHyperlinkCell builds a cell showing text and linking to url.
func (b *CellBuilder) URLHyperlinkCell(title, text, url string) (models.Cell, error) {
	id, err := b.cols.ID(title)
	if err != nil {
		return models.Cell{}, err
	}
	return b.URLHyperlinkCellWithID(id, text, url), nil
}

// URLHyperlinkCellWithID builds a hyperlink cell for a column id.
func (b *CellBuilder) URLHyperlinkCellWithID(columnID uint64, text, url string) models.Cell {
	v := models.TextValue(text)
	return models.Cell{ColumnID: columnID, Value: &v, Hyperlink: models.URLLink(url)}
}

// MultiPicklistCell builds a MULTI_PICKLIST object value. The cell has no
// scalar value.
func (b *CellBuilder) MultiPicklistCell(title string, values ...string) (models.Cell, error) {
	id, err := b.cols.ID(title)
	if err != nil {
		return models.Cell{}, err
	}
	return b.MultiPicklistCellWithID(id, values...)
}

// MultiPicklistCellWithID builds a MULTI_PICKLIST cell for a column id.
func (b *CellBuilder) MultiPicklistCellWithID(columnID uint64, values ...string) (models.Cell, error) {
	if values == nil {
		values = []string{}
	}
	return objectCell(columnID, models.ObjectValue{ObjectType: models.ObjectMultiPicklist, Values: values})
}

// ContactCell builds a single CONTACT object value.
func (b *CellBuilder) ContactCell(title string, contact models.Contact) (models.Cell, error) {
	id, err := b.cols.ID(title)
	if err != nil {
		return models.Cell{}, err
	}
	return b.ContactCellWithID(id, contact)
}

// ContactCellWithID builds a CONTACT cell for a column id.
func (b *CellBuilder) ContactCellWithID(columnID uint64, contact models.Contact) (models.Cell, error) {
	return objectCell(columnID, contact)
}

// MultiContactCell builds a MULTI_CONTACT object value.
func (b *CellBuilder) MultiContactCell(title string, contacts ...models.Contact) (models.Cell, error) {
	id, err := b.cols.ID(title)
	if err != nil {
		return models.Cell{}, err
	}
	return b.MultiContactCellWithID(id, contacts...)
}

// MultiContactCellWithID builds a MULTI_CONTACT cell for a column id.
func (b *CellBuilder) MultiContactCellWithID(columnID uint64, contacts ...models.Contact) (models.Cell, error) {
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return objectCell(columnID, models.ObjectValue{ObjectType: models.ObjectMultiContact, Values: contacts})
}

func objectCell(columnID uint64, v any) (models.Cell, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return models.Cell{}, fmt.Errorf("column id %d: encode object value: %w", columnID, err)
	}
	return models.Cell{ColumnID: columnID, ObjectValue: raw}, nil
}

// Mapper returns the column mapper the builder resolves titles with.
func (b *CellBuilder) Mapper() *ColumnMapper {
	return b.cols
}

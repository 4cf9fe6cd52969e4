package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowMarshalNewRowOmitsID(t *testing.T) {
	v := TextValue("x")
	r := NewRow(Cell{ColumnID: 1, Value: &v}).ToBottomOf()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cells":[{"columnId":1,"value":"x"}],"toBottom":true}`, string(data))
}

func TestRowMarshalIndentAsOne(t *testing.T) {
	data, err := json.Marshal(ExistingRow(55).IndentOnce())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":55,"indent":1}`, string(data))

	data, err = json.Marshal(ExistingRow(55).OutdentOnce())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":55,"outdent":1}`, string(data))
}

func TestRowMarshalSkipsResponseFields(t *testing.T) {
	r := Row{ID: 3, RowNumber: 12, Version: 4, Permalink: "https://app.smartsheet.com/x"}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3}`, string(data))
}

func TestRowUnmarshalIgnoresLocation(t *testing.T) {
	in := `{"id":10,"rowNumber":1,"siblingId":9,"parentId":8,"toTop":true,"above":true,
		"cells":[{"columnId":1,"value":"Ada"}]}`
	var r Row
	require.NoError(t, json.Unmarshal([]byte(in), &r))
	assert.Equal(t, uint64(10), r.ID)
	assert.Equal(t, uint64(1), r.RowNumber)
	assert.Nil(t, r.SiblingID)
	assert.Nil(t, r.ParentID)
	assert.False(t, r.ToTop)
	assert.False(t, r.Above)
	require.Len(t, r.Cells, 1)
}

func TestRowCellByID(t *testing.T) {
	r := ExistingRow(10, NewCell(1), NewCell(2))
	c, err := r.CellByID(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.ColumnID)

	_, err = r.CellByID(3)
	var nf *CellNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, uint64(10), nf.RowID)
	assert.Equal(t, uint64(3), nf.ColumnID)
	assert.ErrorIs(t, err, ErrCellNotFound)
}

func TestRowValidateLocation(t *testing.T) {
	tests := []struct {
		name string
		row  *Row
		ok   bool
	}{
		{"none", NewRow(), true},
		{"top", NewRow().ToTopOf(), true},
		{"bottom", NewRow().ToBottomOf(), true},
		{"parent", NewRow().UnderParent(1), true},
		{"parent top", NewRow().UnderParent(1).ToTopOf(), true},
		{"parent bottom", NewRow().UnderParent(1).ToBottomOf(), true},
		{"sibling", NewRow().NextTo(2), true},
		{"sibling above", NewRow().AboveSibling(2), true},
		{"indent", ExistingRow(1).IndentOnce(), true},
		{"outdent", ExistingRow(1).OutdentOnce(), true},
		{"top and bottom", NewRow().ToTopOf().ToBottomOf(), false},
		{"above alone", &Row{Above: true}, false},
		{"sibling and top", NewRow().NextTo(2).ToTopOf(), false},
		{"sibling and parent", NewRow().NextTo(2).UnderParent(1), false},
		{"indent and top", ExistingRow(1).IndentOnce().ToTopOf(), false},
		{"indent and outdent", ExistingRow(1).IndentOnce().OutdentOnce(), false},
		{"parent above", &Row{ParentID: new(uint64), Above: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.row.ValidateLocation()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrLocation)
		})
	}
}

func TestSheetLookups(t *testing.T) {
	s := Sheet{
		ID:      1,
		Columns: []Column{{ID: 11, Title: "Name"}},
		Rows:    []Row{{ID: 100}, {ID: 101}},
	}
	r, err := s.RowByID(101)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), r.ID)
	_, err = s.RowByID(5)
	assert.ErrorIs(t, err, ErrRowNotFound)

	c, err := s.ColumnByTitle("Name")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), c.ID)
	_, err = s.ColumnByTitle("Nope")
	assert.Error(t, err)
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellMarshalOnlyWritableFields(t *testing.T) {
	v := TextValue("Ada")
	c := Cell{ColumnID: 7, Value: &v}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"columnId":7,"value":"Ada"}`, string(data))

	display := "Ada!"
	c.DisplayValue = &display
	c.Formula = "=A1"
	c.Format = ",,1"
	c.ColumnType = ColumnTextNumber
	data, err = json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"columnId":7,"value":"Ada"}`, string(data))
}

func TestCellMarshalWriteFlags(t *testing.T) {
	v := IntValue(120)
	c := Cell{ColumnID: 1, Value: &v}.WithOverrideValidation(true)
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columnId":1,"value":120,"strict":false,"overrideValidation":true}`, string(data))
}

func TestCellUnmarshalResponse(t *testing.T) {
	in := `{
		"columnId": 3,
		"value": 1234.567,
		"displayValue": "$1,234.57",
		"formula": "=SUM([Amount]1:[Amount]4)",
		"strict": false,
		"overrideValidation": true,
		"hyperlink": {"url": "https://example.com"}
	}`
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(in), &c))

	assert.Equal(t, uint64(3), c.ColumnID)
	n, err := c.ValueAsNumber()
	require.NoError(t, err)
	assert.Equal(t, "1234.567", n.String())
	s, ok := c.DisplayText()
	require.True(t, ok)
	assert.Equal(t, "$1,234.57", s)
	assert.Equal(t, "=SUM([Amount]1:[Amount]4)", c.Formula)
	assert.Nil(t, c.Strict)
	assert.Nil(t, c.OverrideValidation)
	url, ok := c.LinkURL()
	require.True(t, ok)
	assert.Equal(t, "https://example.com", url)
}

func TestCellEmptyValue(t *testing.T) {
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(`{"columnId":9}`), &c))
	assert.Nil(t, c.Value)
	_, err := c.ValueAsText()
	assert.ErrorIs(t, err, ErrNoValue)
	_, ok := c.ValueText()
	assert.False(t, ok)
	_, err = c.DisplayValueAsText()
	assert.Error(t, err)
}

func TestCellObjectValues(t *testing.T) {
	in := `{"columnId":2,"objectValue":{"objectType":"MULTI_PICKLIST","values":["a","b"]}}`
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(in), &c))
	vals, err := c.ObjectValues()
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.JSONEq(t, `"a"`, string(vals[0]))

	var plain Cell
	require.NoError(t, json.Unmarshal([]byte(`{"columnId":2,"objectValue":null}`), &plain))
	assert.Nil(t, plain.ObjectValue)
	_, err = plain.ObjectValues()
	assert.Error(t, err)
}

func TestCellContacts(t *testing.T) {
	in := `{"columnId":4,"objectValue":{"objectType":"MULTI_CONTACT","values":[
		{"objectType":"CONTACT","email":"ada@example.com","name":"Ada"},
		{"objectType":"CONTACT","email":"bob@example.com"}
	]}}`
	var c Cell
	require.NoError(t, json.Unmarshal([]byte(in), &c))
	contacts, err := c.Contacts()
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com", "bob@example.com"}, contacts.Emails())
	assert.Equal(t, []string{"Ada <ada@example.com>", "bob@example.com"}, contacts.NameAddrs())

	single := Cell{ColumnID: 4, ObjectValue: json.RawMessage(`{"objectType":"CONTACT","email":"x@example.com"}`)}
	contacts, err = single.Contacts()
	require.NoError(t, err)
	assert.Equal(t, Contacts{{Email: "x@example.com"}}, contacts)

	picklist := Cell{ColumnID: 4, ObjectValue: json.RawMessage(`{"objectType":"MULTI_PICKLIST","values":["a"]}`)}
	_, err = picklist.Contacts()
	assert.Error(t, err)
}

func TestContactMarshalTagsObjectType(t *testing.T) {
	data, err := json.Marshal(Contact{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectType":"CONTACT","email":"ada@example.com","name":"Ada"}`, string(data))
}

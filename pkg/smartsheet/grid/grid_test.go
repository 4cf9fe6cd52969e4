package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

func textPtr(s string) *models.CellValue {
	v := models.TextValue(s)
	return &v
}

func intPtr(i int64) *models.CellValue {
	v := models.IntValue(i)
	return &v
}

func scoreSheet() *models.Sheet {
	return &models.Sheet{
		ID: 1,
		Columns: []models.Column{
			{ID: 1, Index: 0, Title: "Name", Type: models.ColumnTextNumber},
			{ID: 2, Index: 1, Title: "Score", Type: models.ColumnTextNumber},
		},
		Rows: []models.Row{
			{ID: 10, RowNumber: 1, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("Alice")}, {ColumnID: 2, Value: intPtr(90)}}},
			{ID: 11, RowNumber: 2, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("Bob")}, {ColumnID: 2, Value: intPtr(75)}}},
		},
	}
}

func TestColumnMapperBijective(t *testing.T) {
	cols := []models.Column{
		{ID: 30, Index: 2, Title: "Status"},
		{ID: 10, Index: 0, Title: "Name"},
		{ID: 20, Index: 1, Title: "Score"},
	}
	m := NewColumnMapper(cols)
	require.Equal(t, 3, m.Len())
	for _, c := range cols {
		id, err := m.ID(c.Title)
		require.NoError(t, err)
		title, ok := m.Title(id)
		require.True(t, ok)
		assert.Equal(t, c.Title, title)
	}
	assert.Equal(t, []string{"Name", "Score", "Status"}, m.Titles())

	_, err := m.ID("Missing")
	var nf *ColumnNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Missing", nf.Title)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestColumnMapperPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewColumnMapper(nil) })
	assert.Panics(t, func() { MapperFromSheet(&models.Sheet{}) })
}

func TestColumnMapperOwnsCopy(t *testing.T) {
	cols := []models.Column{{ID: 1, Title: "Name"}}
	m := NewColumnMapper(cols)
	cols[0].Title = "Changed"
	assert.Equal(t, []string{"Name"}, m.Titles())
}

func TestCellGetter(t *testing.T) {
	sheet := scoreSheet()
	g := NewCellGetter(MapperFromSheet(sheet))
	row := &sheet.Rows[0]

	c, err := g.ByName(row, "Score")
	require.NoError(t, err)
	n, err := c.ValueAsUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(90), n)

	_, err = g.ByName(row, "NoSuchColumn")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	sparse := &models.Row{ID: 12, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("Carol")}}}
	_, err = g.ByName(sparse, "Score")
	assert.ErrorIs(t, err, models.ErrCellNotFound)
	assert.NotErrorIs(t, err, ErrColumnNotFound)

	_, err = g.ByID(sparse, 2)
	var cnf *models.CellNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, uint64(12), cnf.RowID)

	byName := g.NameToCell(row)
	require.Len(t, byName, 2)
	name, err := byName["Name"].ValueAsText()
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
}

func TestCellBuilderScalar(t *testing.T) {
	b := NewCellBuilder(MapperFromSheet(scoreSheet()))

	c, err := b.Cell("Name", "x")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.ColumnID)
	assert.Nil(t, c.ObjectValue)
	require.NotNil(t, c.Value)
	assert.True(t, c.Value.Equal(models.TextValue("x")))

	c, err = b.Cell("Score", 100.0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.ColumnID)
	assert.True(t, c.Value.Equal(models.IntValue(100)))
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"columnId":2,"value":100}`, string(data))

	c, err = b.Cell("Name", models.LightYellow)
	require.NoError(t, err)
	assert.Equal(t, "Yellow", c.Value.String())

	_, err = b.Cell("Nope", 1)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = b.CellWithID(2, struct{}{})
	assert.ErrorIs(t, err, models.ErrInvalidValue)
}

func TestCellBuilderShapes(t *testing.T) {
	b := NewCellBuilder(MapperFromSheet(scoreSheet()))

	c, err := b.MultiPicklistCell("Name", "A", "B")
	require.NoError(t, err)
	assert.Nil(t, c.Value)
	assert.JSONEq(t, `{"objectType":"MULTI_PICKLIST","values":["A","B"]}`, string(c.ObjectValue))

	c, err = b.MultiContactCell("Name",
		models.Contact{Email: "ada@example.com", Name: "Ada"},
		models.Contact{Email: "bob@example.com"},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectType":"MULTI_CONTACT","values":[
		{"objectType":"CONTACT","email":"ada@example.com","name":"Ada"},
		{"objectType":"CONTACT","email":"bob@example.com"}]}`, string(c.ObjectValue))
	contacts, err := c.Contacts()
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com", "bob@example.com"}, contacts.Emails())

	c, err = b.ContactCell("Name", models.Contact{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectType":"CONTACT","email":"ada@example.com"}`, string(c.ObjectValue))

	c, err = b.URLHyperlinkCell("Name", "Docs", "https://example.com/docs")
	require.NoError(t, err)
	assert.Equal(t, "Docs", c.Value.String())
	require.NotNil(t, c.Hyperlink)
	assert.Equal(t, "https://example.com/docs", c.Hyperlink.URL)

	c, err = b.MultiPicklistCellWithID(1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectType":"MULTI_PICKLIST","values":[]}`, string(c.ObjectValue))

	for _, build := range []func() (models.Cell, error){
		func() (models.Cell, error) { return b.MultiPicklistCell("Nope", "A") },
		func() (models.Cell, error) { return b.MultiContactCell("Nope") },
		func() (models.Cell, error) { return b.ContactCell("Nope", models.Contact{}) },
		func() (models.Cell, error) { return b.URLHyperlinkCell("Nope", "a", "b") },
	} {
		_, err := build()
		assert.ErrorIs(t, err, ErrColumnNotFound)
	}
}

func TestRowGetterScenario(t *testing.T) {
	sheet := scoreSheet()
	g := NewRowGetter(sheet.Rows, MapperFromSheet(sheet))

	f, err := g.WhereEq("Score", 90.0)
	require.NoError(t, err)
	row, err := f.First()
	require.NoError(t, err)
	assert.Equal(t, uint64(10), row.ID)

	f, err = g.WhereNe("Score", 90.0)
	require.NoError(t, err)
	rows := f.FindAll()
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(11), rows[0].ID)

	f, err = g.WhereEqByID(1, "Bob")
	require.NoError(t, err)
	row, err = f.First()
	require.NoError(t, err)
	assert.Equal(t, uint64(11), row.ID)

	_, err = g.WhereEq("Missing", 1)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestRowFinderNoMatch(t *testing.T) {
	sheet := scoreSheet()
	g := NewRowGetter(sheet.Rows, MapperFromSheet(sheet))

	f, err := g.WhereEq("Name", "Zed")
	require.NoError(t, err)
	_, err = f.First()
	var nm *NoMatchError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "Name", nm.Column)
	assert.Equal(t, Eq, nm.Comparison)
	assert.ErrorIs(t, err, ErrNoMatch)

	all := f.FindAll()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestRowFinderAbsenceMatchesNeither(t *testing.T) {
	cols := MapperFromSheet(scoreSheet())
	rows := []models.Row{
		{ID: 20, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("NoScore")}}},
		{ID: 21, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("Empty")}, {ColumnID: 2}}},
	}
	g := NewRowGetter(rows, cols)

	for _, where := range []func(string, any) (*RowFinder, error){g.WhereEq, g.WhereNe} {
		f, err := where("Score", 90)
		require.NoError(t, err)
		_, err = f.First()
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Empty(t, f.FindAll())
	}
}

func TestComparison(t *testing.T) {
	assert.True(t, Eq.Matches(models.IntValue(1), models.IntValue(1)))
	assert.False(t, Ne.Matches(models.IntValue(1), models.IntValue(1)))
	assert.True(t, Ne.Matches(models.TextValue("1"), models.IntValue(1)))
	assert.Equal(t, "==", Eq.String())
	assert.Equal(t, "!=", Ne.String())
}

func TestRowGetterWhere(t *testing.T) {
	sheet := scoreSheet()
	sheet.Columns = append(sheet.Columns, models.Column{ID: 3, Index: 2, Title: "Due Date"})
	sheet.Rows[1].Cells = append(sheet.Rows[1].Cells, models.Cell{ColumnID: 3, Value: textPtr("2024-01-31")})
	g := NewRowGetter(sheet.Rows, MapperFromSheet(sheet))

	tests := []struct {
		expression string
		want       []uint64
	}{
		{`Score >= 80`, []uint64{10}},
		{`cells["Score"] < 80 && Name == "Bob"`, []uint64{11}},
		{`cells["Due Date"] != nil`, []uint64{11}},
		{`id == 10 || rowNumber == 2`, []uint64{10, 11}},
		{`Name startsWith "Z"`, []uint64{}},
		{`Missing == nil`, []uint64{10, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := g.Where(tt.expression)
			require.NoError(t, err)
			rows, err := f.FindAll()
			require.NoError(t, err)
			got := []uint64{}
			for _, r := range rows {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowGetterWhereErrors(t *testing.T) {
	sheet := scoreSheet()
	g := NewRowGetter(sheet.Rows, MapperFromSheet(sheet))

	_, err := g.Where(`Score >=`)
	assert.ErrorIs(t, err, ErrExpression)

	f, err := g.Where(`Name`)
	require.NoError(t, err)
	_, err = f.FindAll()
	assert.ErrorIs(t, err, ErrExpression)

	f, err = g.Where(`Score > 100`)
	require.NoError(t, err)
	_, err = f.First()
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestRowGetterWhereReservedTitles(t *testing.T) {
	cols := NewColumnMapper([]models.Column{
		{ID: 1, Index: 0, Title: "id"},
		{ID: 2, Index: 1, Title: "Name"},
	})
	rows := []models.Row{
		{ID: 10, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("A-7")}, {ColumnID: 2, Value: textPtr("Alice")}}},
		{ID: 11, Cells: []models.Cell{{ColumnID: 1, Value: textPtr("B-2")}, {ColumnID: 2, Value: textPtr("Bob")}}},
	}
	g := NewRowGetter(rows, cols)

	f, err := g.Where(`cells["id"] == "A-7"`)
	require.NoError(t, err)
	got, err := f.FindAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(10), got[0].ID)

	f, err = g.Where(`id == 11 && Name == "Bob"`)
	require.NoError(t, err)
	row, err := f.First()
	require.NoError(t, err)
	assert.Equal(t, uint64(11), row.ID)
}

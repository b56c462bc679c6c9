package table_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmercado/infratrack/internal/table"
)

type row struct {
	Name string
	Cost int64
}

func rowFields(r row) []string { return []string{r.Name} }

func byCost(a, b row) bool { return a.Cost < b.Cost }

func TestApply_FilterSortPaginate(t *testing.T) {
	// 25 records, 13 of which match "road"; costs descend in insertion
	// order so the expected page is easy to state.
	var rows []row

	for i := 0; i < 13; i++ {
		rows = append(rows, row{Name: fmt.Sprintf("Road project %d", i), Cost: int64(1300 - i)})
	}

	for i := 0; i < 12; i++ {
		rows = append(rows, row{Name: fmt.Sprintf("Bridge project %d", i), Cost: int64(99 - i)})
	}

	got := table.Apply(rows, table.Query{
		Filter:   "ROAD",
		SortDesc: true,
		Page:     1,
		PageSize: 10,
	}, rowFields, byCost)

	assert.Equal(t, 13, got.TotalCount)
	require.Len(t, got.Items, 10)
	assert.Equal(t, int64(1300), got.Items[0].Cost)
	assert.Equal(t, int64(1291), got.Items[9].Cost)

	for i := 1; i < len(got.Items); i++ {
		assert.GreaterOrEqual(t, got.Items[i-1].Cost, got.Items[i].Cost)
	}

	last := table.Apply(rows, table.Query{
		Filter:   "road",
		SortDesc: true,
		Page:     2,
		PageSize: 10,
	}, rowFields, byCost)

	assert.Equal(t, 13, last.TotalCount)
	assert.Len(t, last.Items, 3)
}

func TestApply_StableForEqualKeys(t *testing.T) {
	rows := []row{
		{Name: "first", Cost: 10},
		{Name: "second", Cost: 10},
		{Name: "third", Cost: 10},
	}

	asc := table.Apply(rows, table.Query{}, nil, byCost)
	require.Len(t, asc.Items, 3)
	assert.Equal(t, "first", asc.Items[0].Name)
	assert.Equal(t, "second", asc.Items[1].Name)
	assert.Equal(t, "third", asc.Items[2].Name)

	desc := table.Apply(rows, table.Query{SortDesc: true}, nil, byCost)
	require.Len(t, desc.Items, 3)
	assert.Equal(t, "first", desc.Items[0].Name, "equal keys keep original order regardless of direction")
}

func TestApply_EmptyFilterMatchesAll(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}}

	got := table.Apply(rows, table.Query{PageSize: 10}, rowFields, nil)
	assert.Equal(t, 2, got.TotalCount)
	assert.Len(t, got.Items, 2)
}

func TestApply_PageBeyondEnd(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}}

	got := table.Apply(rows, table.Query{Page: 5, PageSize: 10}, nil, nil)
	assert.Equal(t, 2, got.TotalCount)
	assert.Empty(t, got.Items)
}

func TestApply_FilterMatchesAnyField(t *testing.T) {
	type record struct{ Title, Location string }

	rows := []record{
		{Title: "Drainage works", Location: "San Roque"},
		{Title: "School repair", Location: "Poblacion"},
	}

	got := table.Apply(rows, table.Query{Filter: "san"}, func(r record) []string {
		return []string{r.Title, r.Location}
	}, nil)

	require.Equal(t, 1, got.TotalCount)
	assert.Equal(t, "Drainage works", got.Items[0].Title)
}

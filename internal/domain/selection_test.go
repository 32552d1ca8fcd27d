package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Normalize(t *testing.T) {
	selection := Selection{Years: []int{2021, 2020, 2021}, Regions: []string{"US", "EU", "US"}}

	normalized := selection.Normalize()

	assert.Equal(t, []int{2020, 2021}, normalized.Years)
	assert.Equal(t, []string{"EU", "US"}, normalized.Regions)
	assert.Equal(t, []int{2021, 2020, 2021}, selection.Years)
}

func TestSelection_CacheKey(t *testing.T) {
	a := Selection{Years: []int{2021, 2020}, Regions: []string{"US", "EU"}}
	b := Selection{Years: []int{2020, 2021, 2020}, Regions: []string{"EU", "US"}}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, `years=2020,2021|regions="EU","US"`, a.CacheKey())

	// Vírgula dentro do nome da região não pode colidir com duas regiões
	joined := Selection{Years: []int{2020}, Regions: []string{"A,B"}}
	split := Selection{Years: []int{2020}, Regions: []string{"A", "B"}}
	assert.NotEqual(t, joined.CacheKey(), split.CacheKey())

	assert.NotEqual(t, Selection{}.CacheKey(), a.CacheKey())
}

func TestSelection_IsEmpty(t *testing.T) {
	assert.True(t, Selection{}.IsEmpty())
	assert.True(t, Selection{Years: []int{2020}}.IsEmpty())
	assert.True(t, Selection{Regions: []string{"EU"}}.IsEmpty())
	assert.False(t, Selection{Years: []int{2020}, Regions: []string{"EU"}}.IsEmpty())
}

func TestParseField(t *testing.T) {
	for _, name := range []string{"region", "model", "year"} {
		field, err := ParseField(name)
		assert.NoError(t, err)
		assert.Equal(t, Field(name), field)
	}

	_, err := ParseField("Region")
	assert.Error(t, err)
}

func TestSale_Key(t *testing.T) {
	sale := Sale{Year: 2020, Region: "EU", Model: "X3", SalesVolume: 10}

	assert.Equal(t, "EU", sale.Key(FieldRegion))
	assert.Equal(t, "X3", sale.Key(FieldModel))
	assert.Equal(t, "2020", sale.Key(FieldYear))
}

func TestAggregateTable(t *testing.T) {
	table := AggregateTable{GroupBy: FieldRegion, Rows: []AggregateRow{{Key: "EU", Total: 300}, {Key: "US", Total: 50}}}

	top, ok := table.Leading()
	assert.True(t, ok)
	assert.Equal(t, AggregateRow{Key: "EU", Total: 300}, top)
	assert.Equal(t, int64(350), table.Sum())
	assert.False(t, table.IsEmpty())
}

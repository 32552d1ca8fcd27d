package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		sales     []domain.Sale
		selection domain.Selection
		expected  []domain.Sale
	}{
		{
			name:      "Seleção completa devolve o dataset inalterado",
			sales:     exampleSales(),
			selection: domain.Selection{Years: []int{2020, 2021}, Regions: []string{"EU", "US"}},
			expected:  exampleSales(),
		},
		{
			name:      "Conjunto de anos vazio não devolve nenhum registro",
			sales:     exampleSales(),
			selection: domain.Selection{Years: []int{}, Regions: []string{"EU", "US"}},
			expected:  []domain.Sale{},
		},
		{
			name:      "Anos nulos também filtram tudo",
			sales:     exampleSales(),
			selection: domain.Selection{Years: nil, Regions: []string{"EU"}},
			expected:  []domain.Sale{},
		},
		{
			name:      "Conjunto de regiões vazio não devolve nenhum registro",
			sales:     exampleSales(),
			selection: domain.Selection{Years: []int{2020, 2021}, Regions: []string{}},
			expected:  []domain.Sale{},
		},
		{
			name:      "Filtra por ano e região ao mesmo tempo",
			sales:     exampleSales(),
			selection: domain.Selection{Years: []int{2020}, Regions: []string{"EU"}},
			expected: []domain.Sale{
				{Year: 2020, Region: "EU", Model: "X3", SalesVolume: 100},
			},
		},
		{
			name:      "Valores inexistentes na seleção são ignorados",
			sales:     exampleSales(),
			selection: domain.Selection{Years: []int{1999, 2021}, Regions: []string{"Mars", "EU"}},
			expected: []domain.Sale{
				{Year: 2021, Region: "EU", Model: "X5", SalesVolume: 200},
			},
		},
		{
			name:      "Dataset vazio",
			sales:     nil,
			selection: domain.Selection{Years: []int{2020}, Regions: []string{"EU"}},
			expected:  []domain.Sale{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(tt.sales, tt.selection)

			assert.NotNil(t, result)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	sales := exampleSales()
	selection := domain.Selection{Years: []int{2021}, Regions: []string{"EU"}}

	result := Filter(sales, selection)
	result[0].SalesVolume = 999

	assert.Equal(t, exampleSales(), sales)
	assert.Equal(t, []int{2021}, selection.Years)
	assert.Equal(t, []string{"EU"}, selection.Regions)
}

// Package aggregating implementa o filtro e os agrupamentos das vendas
package aggregating

import (
	"fmt"
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Estrutura para acompanhar a ordem de aparição de cada chave
type groupAggregator struct {
	order  []string
	totals map[string]int64
	years  map[string]int
}

func newGroupAggregator() *groupAggregator {
	return &groupAggregator{
		order:  make([]string, 0),
		totals: make(map[string]int64),
		years:  make(map[string]int),
	}
}

func (g *groupAggregator) add(key string, year int, volume int64) {
	if _, exists := g.totals[key]; !exists {
		g.order = append(g.order, key)
		g.years[key] = year
	}
	g.totals[key] += volume
}

func (g *groupAggregator) rows() []domain.AggregateRow {
	rows := make([]domain.AggregateRow, 0, len(g.order))
	for _, key := range g.order {
		rows = append(rows, domain.AggregateRow{Key: key, Total: g.totals[key]})
	}
	return rows
}

// Aggregate agrupa as vendas pelo campo informado e soma o volume de cada grupo.
// Região e modelo: total decrescente, empates mantêm a ordem da primeira aparição.
// Ano: ordem cronológica.
func Aggregate(sales []domain.Sale, field domain.Field) (domain.AggregateTable, error) {
	if _, err := domain.ParseField(string(field)); err != nil {
		return domain.AggregateTable{}, err
	}

	groups := newGroupAggregator()
	for _, sale := range sales {
		groups.add(sale.Key(field), sale.Year, sale.SalesVolume)
	}

	rows := groups.rows()
	switch field {
	case domain.FieldYear:
		sort.SliceStable(rows, func(i, j int) bool {
			return groups.years[rows[i].Key] < groups.years[rows[j].Key]
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Total > rows[j].Total
		})
	}

	return domain.AggregateTable{
		GroupBy: field,
		Rows:    rows,
	}, nil
}

// AggregateAll calcula as três tabelas do painel a partir das vendas já filtradas
func AggregateAll(sales []domain.Sale) (domain.Aggregates, error) {
	region, err := Aggregate(sales, domain.FieldRegion)
	if err != nil {
		return domain.Aggregates{}, fmt.Errorf("erro ao agregar por região: %w", err)
	}

	model, err := Aggregate(sales, domain.FieldModel)
	if err != nil {
		return domain.Aggregates{}, fmt.Errorf("erro ao agregar por modelo: %w", err)
	}

	year, err := Aggregate(sales, domain.FieldYear)
	if err != nil {
		return domain.Aggregates{}, fmt.Errorf("erro ao agregar por ano: %w", err)
	}

	return domain.Aggregates{
		Region: region,
		Model:  model,
		Year:   year,
	}, nil
}

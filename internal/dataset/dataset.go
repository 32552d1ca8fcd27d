// Package dataset mantém o conjunto de vendas carregado na inicialização.
// O Dataset é imutável: nenhum método altera os registros depois de New.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrEmptyDataset  = errors.New("dataset sem registros")
	ErrInvalidRecord = errors.New("registro inválido no dataset")
)

// Source carrega as vendas de alguma origem (arquivo CSV, Postgres)
type Source interface {
	Load(ctx context.Context) ([]domain.Sale, error)
}

type Dataset struct {
	sales   []domain.Sale
	years   []int
	regions []string
	models  []string
}

// Load lê a origem uma única vez e constrói o Dataset
func Load(ctx context.Context, source Source) (*Dataset, error) {
	sales, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(sales)
}

// New valida e copia os registros recebidos
func New(sales []domain.Sale) (*Dataset, error) {
	if len(sales) == 0 {
		return nil, ErrEmptyDataset
	}

	yearSet := make(map[int]struct{})
	regionSet := make(map[string]struct{})
	modelSet := make(map[string]struct{})

	for i, sale := range sales {
		if sale.Region == "" || sale.Model == "" {
			return nil, fmt.Errorf("%w: linha %d sem região ou modelo", ErrInvalidRecord, i+1)
		}
		if sale.SalesVolume < 0 {
			return nil, fmt.Errorf("%w: linha %d com volume negativo (%d)", ErrInvalidRecord, i+1, sale.SalesVolume)
		}

		yearSet[sale.Year] = struct{}{}
		regionSet[sale.Region] = struct{}{}
		modelSet[sale.Model] = struct{}{}
	}

	return &Dataset{
		sales:   slices.Clone(sales),
		years:   sortedInts(yearSet),
		regions: sortedStrings(regionSet),
		models:  sortedStrings(modelSet),
	}, nil
}

// Sales devolve uma cópia dos registros
func (d *Dataset) Sales() []domain.Sale {
	return slices.Clone(d.sales)
}

func (d *Dataset) Len() int {
	return len(d.sales)
}

// DefaultSelection seleciona todos os anos e regiões presentes nos dados
func (d *Dataset) DefaultSelection() domain.Selection {
	return domain.Selection{
		Years:   slices.Clone(d.years),
		Regions: slices.Clone(d.regions),
	}
}

// Options devolve os valores distintos, em ordem crescente, para os filtros do painel
func (d *Dataset) Options() domain.FilterOptions {
	return domain.FilterOptions{
		Years:    slices.Clone(d.years),
		Regions:  slices.Clone(d.regions),
		Models:   slices.Clone(d.models),
		Defaults: d.DefaultSelection(),
	}
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Selection representa os anos e regiões escolhidos no painel.
// Conjuntos vazios não significam "todos": filtram todos os registros.
type Selection struct {
	Years   []int    `json:"years"`
	Regions []string `json:"regions"`
}

// FilterOptions lista os valores distintos disponíveis para os filtros
type FilterOptions struct {
	Years    []int     `json:"years"`
	Regions  []string  `json:"regions"`
	Models   []string  `json:"models"`
	Defaults Selection `json:"defaults"`
}

// Normalize devolve uma cópia ordenada e sem duplicatas da seleção
func (s Selection) Normalize() Selection {
	years := make([]int, 0, len(s.Years))
	seenYears := make(map[int]struct{}, len(s.Years))
	for _, year := range s.Years {
		if _, ok := seenYears[year]; ok {
			continue
		}
		seenYears[year] = struct{}{}
		years = append(years, year)
	}
	sort.Ints(years)

	regions := make([]string, 0, len(s.Regions))
	seenRegions := make(map[string]struct{}, len(s.Regions))
	for _, region := range s.Regions {
		if _, ok := seenRegions[region]; ok {
			continue
		}
		seenRegions[region] = struct{}{}
		regions = append(regions, region)
	}
	sort.Strings(regions)

	return Selection{Years: years, Regions: regions}
}

// CacheKey gera uma chave estável para a seleção (ordem dos valores é irrelevante)
func (s Selection) CacheKey() string {
	normalized := s.Normalize()

	years := make([]string, len(normalized.Years))
	for i, year := range normalized.Years {
		years[i] = strconv.Itoa(year)
	}

	var b strings.Builder
	b.WriteString("years=")
	b.WriteString(strings.Join(years, ","))
	b.WriteString("|regions=")
	for i, region := range normalized.Regions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(region))
	}
	return b.String()
}

// IsEmpty indica se algum dos conjuntos está vazio (resultado sempre vazio)
func (s Selection) IsEmpty() bool {
	return len(s.Years) == 0 || len(s.Regions) == 0
}

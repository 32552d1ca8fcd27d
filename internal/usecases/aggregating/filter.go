package aggregating

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Filter devolve as vendas cujo ano E região pertencem à seleção.
// Um conjunto vazio de anos ou de regiões resulta em nenhum registro.
// A entrada não é alterada; o resultado é sempre um slice novo.
func Filter(sales []domain.Sale, selection domain.Selection) []domain.Sale {
	filtered := make([]domain.Sale, 0)
	if selection.IsEmpty() {
		return filtered
	}

	years := make(map[int]struct{}, len(selection.Years))
	for _, year := range selection.Years {
		years[year] = struct{}{}
	}

	regions := make(map[string]struct{}, len(selection.Regions))
	for _, region := range selection.Regions {
		regions[region] = struct{}{}
	}

	for _, sale := range sales {
		if _, ok := years[sale.Year]; !ok {
			continue
		}
		if _, ok := regions[sale.Region]; !ok {
			continue
		}
		filtered = append(filtered, sale)
	}

	return filtered
}

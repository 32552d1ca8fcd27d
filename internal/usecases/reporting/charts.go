package reporting

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

const salesVolumeLabel = "Sales Volume"

// buildCharts monta os gráficos do painel: barras para região e modelo, linha para ano
func buildCharts(aggregates domain.Aggregates) domain.Charts {
	year := buildChart("line", "Sales Over Time", "Year", aggregates.Year)
	year.Markers = true

	return domain.Charts{
		Region: buildChart("bar", "Top Performing Regions", "", aggregates.Region),
		Model:  buildChart("bar", "Best-Selling Models", "", aggregates.Model),
		Year:   year,
	}
}

func buildChart(chartType, title, xLabel string, table domain.AggregateTable) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		points = append(points, domain.ChartPoint{
			Label: row.Key,
			Value: row.Total,
		})
	}

	return domain.ChartSpec{
		Type:   chartType,
		Title:  title,
		XLabel: xLabel,
		YLabel: salesVolumeLabel,
		Points: points,
	}
}

// Package insighting gera as observações textuais a partir das tabelas agregadas
package insighting

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const NoDataMessage = "Nenhum dado para a seleção atual"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Generate gera os insights das três tabelas do painel
func Generate(aggregates domain.Aggregates) domain.Insights {
	return domain.Insights{
		Region: RegionLeader(aggregates.Region),
		Model:  ModelLeader(aggregates.Model),
		Year:   YearTrend(aggregates.Year),
	}
}

// RegionLeader descreve a região com maior volume de vendas
func RegionLeader(table domain.AggregateTable) domain.LeaderInsight {
	insight, ok := leader(table)
	if !ok {
		return insight
	}

	insight.Message = printer.Sprintf("%s lidera com %d unidades vendidas (%.2f%% do total)",
		insight.Key, insight.Value, insight.Share)
	return insight
}

// ModelLeader descreve o modelo mais vendido
func ModelLeader(table domain.AggregateTable) domain.LeaderInsight {
	insight, ok := leader(table)
	if !ok {
		return insight
	}

	insight.Message = printer.Sprintf("%s é o modelo mais vendido com %d unidades (%.2f%% do total)",
		insight.Key, insight.Value, insight.Share)
	return insight
}

func leader(table domain.AggregateTable) (domain.LeaderInsight, bool) {
	top, ok := table.Leading()
	if !ok {
		return domain.LeaderInsight{Available: false, Message: NoDataMessage}, false
	}

	share := 0.0
	if total := table.Sum(); total > 0 {
		share = utils.RoundWithTwoDecimalPlace(float64(top.Total) / float64(total) * 100)
	}

	return domain.LeaderInsight{
		Available: true,
		Key:       top.Key,
		Value:     top.Total,
		Share:     share,
	}, true
}

// YearTrend classifica a tendência pela média das variações percentuais ano a ano.
// Média estritamente positiva é "increasing"; zero ou negativa é "declining".
// Um ano com vendas depois de um ano zerado é crescimento infinito e sempre
// resulta em "increasing".
func YearTrend(table domain.AggregateTable) domain.TrendInsight {
	if table.IsEmpty() {
		return domain.TrendInsight{Available: false, Message: NoDataMessage}
	}

	totals := make([]int64, len(table.Rows))
	for i, row := range table.Rows {
		totals[i] = row.Total
	}

	change := AverageChange(totals)

	trend := domain.TrendDeclining
	label := "em queda"
	if change > 0 || growsFromZero(totals) {
		trend = domain.TrendIncreasing
		label = "em alta"
	}

	return domain.TrendInsight{
		Available:     true,
		Trend:         trend,
		AverageChange: change,
		Periods:       len(totals),
		Message:       printer.Sprintf("Tendência de vendas %s, com variação média de %.2f%%", label, change*100),
	}
}

// growsFromZero indica se algum período tem vendas depois de um período com total zero
func growsFromZero(totals []int64) bool {
	for i := 1; i < len(totals); i++ {
		if totals[i-1] == 0 && totals[i] > 0 {
			return true
		}
	}
	return false
}

// AverageChange calcula a média das variações percentuais entre períodos consecutivos.
// A variação do primeiro período conta como zero, assim como a de qualquer período
// cujo anterior tenha total zero; nesse caso a média fica finita e YearTrend
// trata o crescimento a partir de zero separadamente.
func AverageChange(totals []int64) float64 {
	if len(totals) == 0 {
		return 0
	}

	var sum float64
	for i := 1; i < len(totals); i++ {
		previous := totals[i-1]
		if previous == 0 {
			continue
		}
		sum += float64(totals[i]-previous) / float64(previous)
	}

	return sum / float64(len(totals))
}

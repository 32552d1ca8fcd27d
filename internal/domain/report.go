package domain

import "time"

// ChartPoint é um ponto de um gráfico
type ChartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ChartSpec descreve um gráfico sem detalhes de layout ou cores
type ChartSpec struct {
	Type    string       `json:"type"` // "bar" ou "line"
	Title   string       `json:"title"`
	XLabel  string       `json:"x_label"`
	YLabel  string       `json:"y_label"`
	Markers bool         `json:"markers"`
	Points  []ChartPoint `json:"points"`
}

// Aggregates reúne as três tabelas calculadas para uma seleção
type Aggregates struct {
	Region AggregateTable `json:"region"`
	Model  AggregateTable `json:"model"`
	Year   AggregateTable `json:"year"`
}

// Charts reúne os gráficos do painel
type Charts struct {
	Region ChartSpec `json:"region"`
	Model  ChartSpec `json:"model"`
	Year   ChartSpec `json:"year"`
}

// Report é a resposta completa do painel para uma seleção
type Report struct {
	ID          string     `json:"id"`
	GeneratedAt time.Time  `json:"generated_at"`
	Selection   Selection  `json:"selection"`
	RecordCount int        `json:"record_count"`
	TotalSales  int64      `json:"total_sales"`
	Empty       bool       `json:"empty"`
	Aggregates  Aggregates `json:"aggregates"`
	Insights    Insights   `json:"insights"`
	Charts      Charts     `json:"charts"`
}

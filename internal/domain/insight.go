package domain

// Trend classifica a variação média ano a ano
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDeclining  Trend = "declining"
)

// LeaderInsight descreve a região ou modelo líder da seleção atual
type LeaderInsight struct {
	Available bool    `json:"available"`
	Key       string  `json:"key,omitempty"`
	Value     int64   `json:"value"`
	Share     float64 `json:"share"` // Percentual do total filtrado (0-100)
	Message   string  `json:"message"`
}

// TrendInsight descreve a tendência das vendas ao longo dos anos
type TrendInsight struct {
	Available     bool    `json:"available"`
	Trend         Trend   `json:"trend,omitempty"`
	AverageChange float64 `json:"average_change"` // Fração, ex: 0.1667 = 16,67%
	Periods       int     `json:"periods"`
	Message       string  `json:"message"`
}

// Insights agrupa as observações geradas para cada agregado
type Insights struct {
	Region LeaderInsight `json:"region"`
	Model  LeaderInsight `json:"model"`
	Year   TrendInsight  `json:"year"`
}

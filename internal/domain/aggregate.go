package domain

// AggregateRow é o total de vendas de um valor distinto do campo agrupado
type AggregateRow struct {
	Key   string `json:"key"`
	Total int64  `json:"total"`
}

// AggregateTable é a visão agrupada e somada das vendas por um campo.
// Região e modelo ficam em ordem decrescente de total; ano em ordem cronológica.
type AggregateTable struct {
	GroupBy Field          `json:"group_by"`
	Rows    []AggregateRow `json:"rows"`
}

// Leading devolve a primeira linha da tabela, se existir
func (t AggregateTable) Leading() (AggregateRow, bool) {
	if len(t.Rows) == 0 {
		return AggregateRow{}, false
	}
	return t.Rows[0], true
}

// Sum soma os totais de todas as linhas
func (t AggregateTable) Sum() int64 {
	var total int64
	for _, row := range t.Rows {
		total += row.Total
	}
	return total
}

// IsEmpty indica se a tabela não possui linhas
func (t AggregateTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

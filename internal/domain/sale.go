// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

// Field identifica a coluna usada para agrupar as vendas
type Field string

const (
	FieldRegion Field = "region"
	FieldModel  Field = "model"
	FieldYear   Field = "year"
)

// ParseField converte o nome recebido na URL para um Field conhecido
func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldRegion, FieldModel, FieldYear:
		return Field(name), nil
	}

	return "", fmt.Errorf("campo de agrupamento inválido: %q", name)
}

// Sale é uma linha do dataset de vendas de veículos
type Sale struct {
	Year        int    `json:"year"`
	Region      string `json:"region"`
	Model       string `json:"model"`
	SalesVolume int64  `json:"sales_volume"`
}

// Key devolve o valor da venda para o campo informado
func (s Sale) Key(field Field) string {
	switch field {
	case FieldRegion:
		return s.Region
	case FieldModel:
		return s.Model
	case FieldYear:
		return fmt.Sprintf("%d", s.Year)
	}

	return ""
}

// TotalVolume soma o volume de vendas de um conjunto de registros
func TotalVolume(sales []Sale) int64 {
	var total int64
	for _, sale := range sales {
		total += sale.SalesVolume
	}
	return total
}

package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SplitList separa uma lista "a,b,c" ignorando espaços e itens vazios.
// Uma string vazia resulta em uma lista vazia (não nula).
func SplitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ParseIntList converte uma lista "2020,2021" em inteiros
func ParseIntList(raw string) ([]int, error) {
	items := SplitList(raw)
	values := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("valor inteiro inválido: %q", item)
		}
		values = append(values, v)
	}
	return values, nil
}

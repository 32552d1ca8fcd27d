// Package csvfile lê o dataset de vendas a partir de um arquivo CSV
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente no CSV")
	ErrInvalidValue  = errors.New("valor inválido no CSV")
)

const (
	columnYear        = "year"
	columnRegion      = "region"
	columnModel       = "model"
	columnSalesVolume = "sales_volume"
)

var requiredColumns = []string{columnYear, columnRegion, columnModel, columnSalesVolume}

// Source implementa dataset.Source para arquivos CSV com cabeçalho
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load(ctx context.Context) ([]domain.Sale, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir dataset %s", s.path)
	}
	defer file.Close()

	sales, err := Parse(ctx, file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler dataset %s", s.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    s.path,
		"records": len(sales),
	}).Info("Dataset CSV carregado")

	return sales, nil
}

// Parse lê as vendas de um CSV. Colunas extras são ignoradas e o cabeçalho
// não diferencia maiúsculas de minúsculas.
func Parse(ctx context.Context, r io.Reader) ([]domain.Sale, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: arquivo sem cabeçalho", ErrMissingColumn)
		}
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	index, err := columnIndex(headers)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: linha %d: %v", ErrInvalidValue, line, err)
		}

		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		sale, err := parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func columnIndex(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
	}

	return index, nil
}

func parseRow(row []string, index map[string]int, line int) (domain.Sale, error) {
	value := func(column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := parseInteger(value(columnYear))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%w: linha %d, coluna %s: %v", ErrInvalidValue, line, columnYear, err)
	}

	volume, err := parseInteger(value(columnSalesVolume))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%w: linha %d, coluna %s: %v", ErrInvalidValue, line, columnSalesVolume, err)
	}
	if volume < 0 {
		return domain.Sale{}, fmt.Errorf("%w: linha %d, coluna %s: volume negativo", ErrInvalidValue, line, columnSalesVolume)
	}

	region := value(columnRegion)
	model := value(columnModel)
	if region == "" || model == "" {
		return domain.Sale{}, fmt.Errorf("%w: linha %d: região e modelo são obrigatórios", ErrInvalidValue, line)
	}

	return domain.Sale{
		Year:        int(year),
		Region:      region,
		Model:       model,
		SalesVolume: volume,
	}, nil
}

// parseInteger aceita inteiros e números com parte decimal zero ("2020.0")
func parseInteger(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%q não é um inteiro", raw)
	}
	// float64(math.MaxInt64) arredonda para 2^63, que já não cabe em int64
	if f >= float64(math.MaxInt64) || f < float64(math.MinInt64) {
		return 0, fmt.Errorf("%q fora do intervalo de inteiros", raw)
	}
	return int64(f), nil
}

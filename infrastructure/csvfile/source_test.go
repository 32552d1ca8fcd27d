package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []domain.Sale
		expectedErr error
	}{
		{
			name:  "CSV com colunas extras",
			input: "Model,Year,Region,Color,Fuel_Type,Price_USD,Sales_Volume,Sales_Classification\nX3,2020,Europe,Red,Diesel,45000,120,Low\ni8,2021,Asia,Blue,Hybrid,98000,8500,High\n",
			expected: []domain.Sale{
				{Year: 2020, Region: "Europe", Model: "X3", SalesVolume: 120},
				{Year: 2021, Region: "Asia", Model: "i8", SalesVolume: 8500},
			},
		},
		{
			name:  "Cabeçalho com BOM e espaços",
			input: "\ufeffyear, region ,model,sales_volume\n2022,North America,M5,10\n",
			expected: []domain.Sale{
				{Year: 2022, Region: "North America", Model: "M5", SalesVolume: 10},
			},
		},
		{
			name:  "Números com parte decimal zero",
			input: "year,region,model,sales_volume\n2020.0,EU,X3,100.0\n",
			expected: []domain.Sale{
				{Year: 2020, Region: "EU", Model: "X3", SalesVolume: 100},
			},
		},
		{
			name:     "Somente cabeçalho",
			input:    "year,region,model,sales_volume\n",
			expected: []domain.Sale{},
		},
		{
			name:        "Arquivo vazio",
			input:       "",
			expectedErr: ErrMissingColumn,
		},
		{
			name:        "Coluna obrigatória ausente",
			input:       "year,region,sales_volume\n2020,EU,10\n",
			expectedErr: ErrMissingColumn,
		},
		{
			name:        "Ano inválido",
			input:       "year,region,model,sales_volume\nabc,EU,X3,10\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Volume fracionado",
			input:       "year,region,model,sales_volume\n2020,EU,X3,10.5\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Ano fora do intervalo de inteiros",
			input:       "year,region,model,sales_volume\n1e19,EU,X3,10\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Volume fora do intervalo de inteiros",
			input:       "year,region,model,sales_volume\n2020,EU,X3,-1e19\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Volume negativo",
			input:       "year,region,model,sales_volume\n2020,EU,X3,-4\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Região vazia",
			input:       "year,region,model,sales_volume\n2020,,X3,4\n",
			expectedErr: ErrInvalidValue,
		},
		{
			name:        "Linha com número de colunas diferente",
			input:       "year,region,model,sales_volume\n2020,EU,X3\n",
			expectedErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales, err := Parse(context.Background(), strings.NewReader(tt.input))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, sales)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, sales)
		})
	}
}

func TestSource_Load(t *testing.T) {
	t.Run("Lê o arquivo informado", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sales.csv")
		content := "year,region,model,sales_volume\n2020,EU,X3,100\n2020,US,X3,50\n2021,EU,X5,200\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		sales, err := NewSource(path).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, sales, 3)
		assert.Equal(t, int64(350), domain.TotalVolume(sales))
	})

	t.Run("Arquivo inexistente", func(t *testing.T) {
		_, err := NewSource(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "erro ao abrir dataset")
	})

	t.Run("Erro de conteúdo preserva o erro sentinela", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.csv")
		require.NoError(t, os.WriteFile(path, []byte("year,model\n2020,X3\n"), 0o600))

		_, err := NewSource(path).Load(context.Background())
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

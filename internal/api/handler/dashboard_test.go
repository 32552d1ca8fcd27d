package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var defaultSelection = domain.Selection{
	Years:   []int{2020, 2021},
	Regions: []string{"EU", "US"},
}

func newDashboardRouter(reporter *mocks.MockReporter) http.Handler {
	return router.New(router.WithRoutes(Dashboard(reporter)...))
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    domain.Selection
		expectedErr bool
	}{
		{
			name:     "Sem parâmetros usa a seleção padrão",
			query:    "",
			expected: defaultSelection,
		},
		{
			name:     "Lista separada por vírgula",
			query:    "years=2021&regions=EU",
			expected: domain.Selection{Years: []int{2021}, Regions: []string{"EU"}},
		},
		{
			name:     "Parâmetros repetidos",
			query:    "years=2020&years=2021&regions=US",
			expected: domain.Selection{Years: []int{2020, 2021}, Regions: []string{"US"}},
		},
		{
			name:     "Parâmetro presente e vazio seleciona nada",
			query:    "regions=",
			expected: domain.Selection{Years: []int{2020, 2021}, Regions: []string{}},
		},
		{
			name:     "Regiões com espaço",
			query:    "regions=North%20America,%20Asia",
			expected: domain.Selection{Years: []int{2020, 2021}, Regions: []string{"North America", "Asia"}},
		},
		{
			name:     "Regiões repetidas são usadas como estão",
			query:    "regions=Korea%2C%20South&regions=%20Asia%20",
			expected: domain.Selection{Years: []int{2020, 2021}, Regions: []string{"Korea, South", " Asia "}},
		},
		{
			name:     "Região repetida vazia não é descartada",
			query:    "regions=EU&regions=",
			expected: domain.Selection{Years: []int{2020, 2021}, Regions: []string{"EU", ""}},
		},
		{
			name:        "Ano não numérico",
			query:       "years=2020,abc",
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?"+tt.query, nil)

			selection, err := parseSelection(req, defaultSelection)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, selection)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockReporter := mocks.NewMockReporter(ctrl)
	handler := newDashboardRouter(mockReporter)

	tests := []struct {
		name           string
		url            string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, body []byte)
	}{
		{
			name: "Seleção padrão",
			url:  "/v1/dashboard",
			setup: func() {
				mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
				mockReporter.EXPECT().
					Render(gomock.Any(), defaultSelection).
					Return(&domain.Report{ID: "abc123", Selection: defaultSelection, RecordCount: 3, TotalSales: 350}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var report domain.Report
				require.NoError(t, json.Unmarshal(body, &report))
				assert.Equal(t, "abc123", report.ID)
				assert.Equal(t, int64(350), report.TotalSales)
				assert.Equal(t, defaultSelection, report.Selection)
			},
		},
		{
			name: "Regiões vazias geram relatório vazio",
			url:  "/v1/dashboard?regions=",
			setup: func() {
				expected := domain.Selection{Years: []int{2020, 2021}, Regions: []string{}}
				mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
				mockReporter.EXPECT().
					Render(gomock.Any(), expected).
					Return(&domain.Report{ID: "empty1", Selection: expected, Empty: true}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body []byte) {
				var report domain.Report
				require.NoError(t, json.Unmarshal(body, &report))
				assert.True(t, report.Empty)
			},
		},
		{
			name: "Ano inválido",
			url:  "/v1/dashboard?years=vinte",
			setup: func() {
				mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
			},
		},
		{
			name: "Cálculo cancelado",
			url:  "/v1/dashboard",
			setup: func() {
				mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
				mockReporter.EXPECT().
					Render(gomock.Any(), defaultSelection).
					Return(nil, context.Canceled)
			},
			expectedStatus: 499,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrRequestCanceled, apiErr.Code)
			},
		},
		{
			name: "Erro inesperado",
			url:  "/v1/dashboard",
			setup: func() {
				mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
				mockReporter.EXPECT().
					Render(gomock.Any(), defaultSelection).
					Return(nil, errors.New("falha"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body []byte) {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(body, &apiErr))
				assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			tt.validate(t, rec.Body.Bytes())
		})
	}
}

func TestGetAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	handler := newDashboardRouter(mockReporter)

	t.Run("Tabela por modelo", func(t *testing.T) {
		selection := domain.Selection{Years: []int{2020}, Regions: []string{"EU", "US"}}
		mockReporter.EXPECT().DefaultSelection().Return(defaultSelection)
		mockReporter.EXPECT().
			Aggregate(gomock.Any(), selection, domain.FieldModel).
			Return(&domain.AggregateTable{
				GroupBy: domain.FieldModel,
				Rows:    []domain.AggregateRow{{Key: "X3", Total: 150}},
			}, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/aggregates/model?years=2020", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var table domain.AggregateTable
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
		assert.Equal(t, domain.FieldModel, table.GroupBy)
		assert.Equal(t, []domain.AggregateRow{{Key: "X3", Total: 150}}, table.Rows)
	})

	t.Run("Campo desconhecido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/aggregates/color", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidField, apiErr.Code)
	})
}

func TestGetFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	options := domain.FilterOptions{
		Years:    []int{2020, 2021},
		Regions:  []string{"EU", "US"},
		Models:   []string{"X3", "X5"},
		Defaults: defaultSelection,
	}
	mockReporter.EXPECT().Options().Return(options)

	rec := httptest.NewRecorder()
	newDashboardRouter(mockReporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/filters", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, options, got)
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	handler := NewHandler(testConfig(), mockReporter, nil)

	tests := []struct {
		name           string
		method         string
		url            string
		origin         string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "Healthcheck",
			method:         http.MethodGet,
			url:            "/healthcheck",
			setup:          func() {},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotEmpty(t, rec.Body.String())
			},
		},
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			url:            "/v1/inexistente",
			setup:          func() {},
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "RES_001")
			},
		},
		{
			name:           "Método não permitido",
			method:         http.MethodDelete,
			url:            "/v1/dashboard",
			setup:          func() {},
			expectedStatus: http.StatusMethodNotAllowed,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "RES_002")
			},
		},
		{
			name:   "CORS para origem permitida",
			method: http.MethodGet,
			url:    "/v1/dashboard/filters",
			origin: "http://localhost:3000",
			setup: func() {
				mockReporter.EXPECT().Options().Return(domain.FilterOptions{})
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "Preflight responde sem conteúdo",
			method:         http.MethodOptions,
			url:            "/v1/dashboard",
			origin:         "http://localhost:3000",
			setup:          func() {},
			expectedStatus: http.StatusNoContent,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "Origem não permitida",
			method:         http.MethodGet,
			url:            "/healthcheck",
			origin:         "http://evil.example",
			setup:          func() {},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:           "Métricas do Prometheus",
			method:         http.MethodGet,
			url:            "/metrics",
			setup:          func() {},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "sales_dashboard_http_requests_total")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}

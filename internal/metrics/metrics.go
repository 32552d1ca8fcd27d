// Package metrics registra as métricas Prometheus da API
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RenderOutcomeComputed = "computed"
	RenderOutcomeCacheHit = "cache_hit"
	RenderOutcomeEmpty    = "empty"
	RenderOutcomeError    = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_http_requests_total",
		Help: "Total de requisições HTTP por rota e status",
	},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_dashboard_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "path"},
	)

	ReportRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_report_renders_total",
		Help: "Total de relatórios gerados por resultado",
	},
		[]string{"outcome"},
	)

	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_dashboard_dataset_records",
		Help: "Quantidade de registros carregados no dataset",
	})

	WarmupRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_dashboard_report_warmup_runs_total",
		Help: "Execuções do aquecimento do cache de relatórios",
	},
		[]string{"status"},
	)
)

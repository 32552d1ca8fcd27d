package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
)

// contextKeyRoute guarda o padrão da rota resolvida pelo router
type contextKeyRoute string

const routePatternKey contextKeyRoute = "route_pattern"

const unmatchedRoute = "unmatched"

// MetricsMiddleware registra contagem e duração das requisições no Prometheus.
// O rótulo "path" usa o padrão da rota (ex: /v1/dashboard/aggregates/:field)
// para manter a cardinalidade baixa.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pattern := new(string)
			r = r.WithContext(context.WithValue(r.Context(), routePatternKey, pattern))

			sr := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(sr, r)

			path := *pattern
			if path == "" {
				path = unmatchedRoute
			}

			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sr.statusCode)).Inc()
		})
	}
}

// WithRoutePattern anota a requisição com o padrão da rota atendida
func WithRoutePattern(pattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if holder, ok := r.Context().Value(routePatternKey).(*string); ok {
				*holder = pattern
			}
			next.ServeHTTP(w, r)
		})
	}
}

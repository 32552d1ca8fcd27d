// Package reporting executa o pipeline filtro → agregação → insights para uma seleção
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter gera os relatórios do painel de vendas
type Reporter interface {
	// Render calcula agregados, insights e gráficos para a seleção
	Render(ctx context.Context, selection domain.Selection) (*domain.Report, error)

	// Aggregate calcula apenas uma tabela agregada para a seleção
	Aggregate(ctx context.Context, selection domain.Selection, field domain.Field) (*domain.AggregateTable, error)

	// Options devolve os valores disponíveis para os filtros
	Options() domain.FilterOptions

	// DefaultSelection devolve a seleção padrão (todos os anos e regiões)
	DefaultSelection() domain.Selection
}

// Service implementa Reporter sobre um Dataset imutável
type Service struct {
	dataset  *dataset.Dataset
	cache    *ttlcache.Cache[string, *domain.Report]
	useCache bool
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(ds *dataset.Dataset) *Service {
	metrics.DatasetRecords.Set(float64(ds.Len()))

	return &Service{
		dataset: ds,
		now:     time.Now,
	}
}

// WithCache habilita o cache de relatórios por seleção
func (s *Service) WithCache(ttl time.Duration) *Service {
	if ttl <= 0 {
		return s
	}

	s.cache = ttlcache.New(
		ttlcache.WithTTL[string, *domain.Report](ttl),
	)
	go s.cache.Start()
	s.useCache = true

	return s
}

// Close encerra a limpeza periódica do cache
func (s *Service) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *Service) Options() domain.FilterOptions {
	return s.dataset.Options()
}

func (s *Service) DefaultSelection() domain.Selection {
	return s.dataset.DefaultSelection()
}

func (s *Service) Render(ctx context.Context, selection domain.Selection) (*domain.Report, error) {
	selection = selection.Normalize()
	key := selection.CacheKey()

	if s.useCache {
		if item := s.cache.Get(key); item != nil {
			metrics.ReportRendersTotal.WithLabelValues(metrics.RenderOutcomeCacheHit).Inc()
			return item.Value(), nil
		}
	}

	report, err := s.render(ctx, selection)
	if err != nil {
		metrics.ReportRendersTotal.WithLabelValues(metrics.RenderOutcomeError).Inc()
		return nil, err
	}

	if report.Empty {
		metrics.ReportRendersTotal.WithLabelValues(metrics.RenderOutcomeEmpty).Inc()
	} else {
		metrics.ReportRendersTotal.WithLabelValues(metrics.RenderOutcomeComputed).Inc()
	}

	if s.useCache {
		s.cache.Set(key, report, ttlcache.DefaultTTL)
	}

	return report, nil
}

func (s *Service) render(ctx context.Context, selection domain.Selection) (*domain.Report, error) {
	filtered := aggregating.Filter(s.dataset.Sales(), selection)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	aggregates, err := aggregating.AggregateAll(filtered)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do relatório: %w", err)
	}

	report := &domain.Report{
		ID:          id,
		GeneratedAt: s.now(),
		Selection:   selection,
		RecordCount: len(filtered),
		TotalSales:  domain.TotalVolume(filtered),
		Empty:       len(filtered) == 0,
		Aggregates:  aggregates,
		Insights:    insighting.Generate(aggregates),
		Charts:      buildCharts(aggregates),
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   report.ID,
		"years":       selection.Years,
		"regions":     selection.Regions,
		"records":     report.RecordCount,
		"total_sales": report.TotalSales,
	}).Debug("Relatório do painel calculado")

	return report, nil
}

func (s *Service) Aggregate(ctx context.Context, selection domain.Selection, field domain.Field) (*domain.AggregateTable, error) {
	if _, err := domain.ParseField(string(field)); err != nil {
		return nil, err
	}

	report, err := s.Render(ctx, selection)
	if err != nil {
		return nil, err
	}

	var table domain.AggregateTable
	switch field {
	case domain.FieldRegion:
		table = report.Aggregates.Region
	case domain.FieldModel:
		table = report.Aggregates.Model
	case domain.FieldYear:
		table = report.Aggregates.Year
	}

	return &table, nil
}

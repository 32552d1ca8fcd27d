// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/metrics"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

type ReportWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// WarmupStatus é o estado exposto pelo endpoint de cron
type WarmupStatus struct {
	Enabled             bool      `json:"enabled"`
	CronSchedule        string    `json:"cron_schedule"`
	Running             bool      `json:"running"`
	LastStartedAt       *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt     *time.Time `json:"last_completed_at,omitempty"`
	LastReportID        string     `json:"last_report_id,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	NextRun             *time.Time `json:"next_run,omitempty"`
	CompletedExecutions int        `json:"completed_executions"`
}

// ReportWarmupService calcula periodicamente o relatório da seleção padrão
// para que a primeira visualização do painel saia do cache.
type ReportWarmupService struct {
	scheduler *gocron.Scheduler
	reporter  reporting.Reporter
	config    ReportWarmupConfig

	mu                  sync.Mutex
	running             bool
	lastStartedAt       time.Time
	lastCompletedAt     time.Time
	lastReportID        string
	lastError           string
	completedExecutions int
}

func NewReportWarmupService(reporter reporting.Reporter, cfg *config.Config) *ReportWarmupService {
	warmupConfig := ReportWarmupConfig{
		CronSchedule: cfg.ReportWarmup.CronSchedule,
		Enabled:      cfg.ReportWarmup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"enabled":       warmupConfig.Enabled,
	}).Info("Configuração do aquecimento de relatórios carregada")

	return &ReportWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
		config:    warmupConfig,
	}
}

func (s *ReportWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento de relatórios desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Warmup(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// Warmup gera o relatório da seleção padrão. Execuções concorrentes são ignoradas.
func (s *ReportWarmupService) Warmup(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Warn("Aquecimento de relatórios já está em execução")
		metrics.WarmupRunsTotal.WithLabelValues("skipped").Inc()
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	report, err := s.reporter.Render(ctx, s.reporter.DefaultSelection())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		metrics.WarmupRunsTotal.WithLabelValues("error").Inc()
		return err
	}

	s.lastError = ""
	s.lastReportID = report.ID
	s.completedExecutions++
	metrics.WarmupRunsTotal.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"report_id": report.ID,
		"records":   report.RecordCount,
	}).Info("Aquecimento de relatórios concluído")

	return nil
}

// TriggerManualWarmup dispara o aquecimento em background
func (s *ReportWarmupService) TriggerManualWarmup() {
	go func() {
		logrus.Info("Aquecimento manual de relatórios iniciado")
		if err := s.Warmup(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento manual de relatórios")
		}
	}()
}

func (s *ReportWarmupService) Status() WarmupStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := WarmupStatus{
		Enabled:             s.config.Enabled,
		CronSchedule:        s.config.CronSchedule,
		Running:             s.running,
		LastStartedAt:       timeOrNil(s.lastStartedAt),
		LastCompletedAt:     timeOrNil(s.lastCompletedAt),
		LastReportID:        s.lastReportID,
		LastError:           s.lastError,
		CompletedExecutions: s.completedExecutions,
	}

	if s.config.Enabled {
		_, next := s.scheduler.NextRun()
		status.NextRun = timeOrNil(next)
	}

	return status
}

// timeOrNil omite datas ainda não preenchidas no JSON de status
func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

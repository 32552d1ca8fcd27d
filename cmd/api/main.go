package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/csvfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Falha no carregamento do dataset impede a inicialização
	ds := loadDataset(ctx, cfg)

	reportService := reporting.NewService(ds)
	if cfg.ReportCache.Enabled {
		reportService = reportService.WithCache(cfg.ReportCache.TTL)
	}
	defer reportService.Close()

	warmupService := scheduler.NewReportWarmupService(reportService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de relatórios")
	}

	server, err := api.New(cfg, reportService, warmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadDataset carrega as vendas uma única vez a partir da origem configurada
func loadDataset(ctx context.Context, cfg *config.Config) *dataset.Dataset {
	var source dataset.Source

	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}
		defer conn.Close()

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		source = repository.NewVehicleSalesRepository(conn)
	default:
		source = csvfile.NewSource(cfg.Dataset.Path)
	}

	ds, err := dataset.Load(ctx, source)
	if err != nil {
		logrus.WithError(err).WithField("source", cfg.Dataset.Source).Fatal("Erro ao carregar o dataset de vendas")
	}

	options := ds.Options()
	logrus.WithFields(logrus.Fields{
		"records": ds.Len(),
		"years":   len(options.Years),
		"regions": len(options.Regions),
		"models":  len(options.Models),
	}).Info("Dataset de vendas carregado")

	return ds
}

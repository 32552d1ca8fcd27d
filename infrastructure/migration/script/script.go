// Carga da tabela vehicle_sales a partir do CSV, usada quando DATASET_SOURCE=postgres.
// A API apenas lê essa tabela; este script é executado manualmente.
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/csvfile"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS vehicle_sales (
	id           SERIAL PRIMARY KEY,
	year         INTEGER NOT NULL,
	region       TEXT    NOT NULL,
	model        TEXT    NOT NULL,
	sales_volume BIGINT  NOT NULL CHECK (sales_volume >= 0)
)`

const insertSaleStatement = `INSERT INTO vehicle_sales (year, region, model, sales_volume) VALUES ($1, $2, $3, $4)`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga do dataset...")
}

func createTable(ctx context.Context, db *sql.DB) {
	logrus.Info("Criando tabela vehicle_sales, se necessário...")

	if _, err := db.ExecContext(ctx, createTableStatement); err != nil {
		logrus.Fatalf("ERRO ao criar tabela vehicle_sales: %v", err)
	}
}

func insertSales(ctx context.Context, tx *sql.Tx, sales []domain.Sale) error {
	logrus.Infof("Iniciando inserção de %d vendas...", len(sales))
	startTime := time.Now()

	// A carga substitui o conteúdo anterior por completo
	if _, err := tx.ExecContext(ctx, `TRUNCATE vehicle_sales RESTART IDENTITY`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, insertSaleStatement)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, sale := range sales {
		if _, err := stmt.ExecContext(ctx, sale.Year, sale.Region, sale.Model, sale.SalesVolume); err != nil {
			logrus.Errorf("ERRO ao inserir venda [%d/%d] %d/%s/%s: %v", i+1, len(sales), sale.Year, sale.Region, sale.Model, err)
			return err
		}
		if i > 0 && i%5000 == 0 {
			logrus.Infof("Progresso: %d/%d vendas processadas", i+1, len(sales))
		}
	}

	logrus.Infof("Inserção de vendas concluída em %v", time.Since(startTime))
	return nil
}

func main() {
	setupLogger()
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	sales, err := csvfile.NewSource(cfg.Dataset.Path).Load(ctx)
	if err != nil {
		logrus.Fatalf("ERRO ao ler o CSV: %v", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	createTable(ctx, conn.DB)

	startTime := time.Now()
	logrus.Info("Iniciando transação...")

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logrus.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	if err := insertSales(ctx, tx, sales); err != nil {
		logrus.Errorf("ERRO na carga: %v", err)
		if err := tx.Rollback(); err != nil {
			logrus.Fatalf("ERRO ao reverter transação: %v", err)
		}
		logrus.Info("Transação revertida")
		os.Exit(1)
	}

	if err := tx.Commit(); err != nil {
		logrus.Errorf("ERRO ao confirmar transação: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Carga de %d vendas concluída em %v!", len(sales), time.Since(startTime))
}

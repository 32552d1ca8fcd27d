// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	vehicleSalesTable = "vehicle_sales vs"
)

// VehicleSalesRepository lê o dataset de vendas armazenado no Postgres.
// Implementa dataset.Source.
type VehicleSalesRepository interface {
	Load(ctx context.Context) ([]domain.Sale, error)
}

type vehicleSalesRepository struct {
	conn postgres.Queryer
}

func NewVehicleSalesRepository(conn postgres.Queryer) VehicleSalesRepository {
	return &vehicleSalesRepository{
		conn: conn,
	}
}

// listSalesQuery monta a consulta de leitura completa da tabela
func listSalesQuery() (string, []any, error) {
	return squirrel.
		Select(
			"vs.year",
			"vs.region",
			"vs.model",
			"vs.sales_volume",
		).
		From(vehicleSalesTable).
		OrderBy("vs.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *vehicleSalesRepository) Load(ctx context.Context) ([]domain.Sale, error) {
	sqlQuery, args, err := listSalesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, *sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	logrus.WithField("records", len(sales)).Info("Dataset carregado do PostgreSQL")

	return sales, nil
}

func (r *vehicleSalesRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.Year,
		&sale.Region,
		&sale.Model,
		&sale.SalesVolume,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type ForecastRepository interface {
	// Replace apaga as previsões da empresa e grava as novas na mesma transação
	Replace(ctx context.Context, companyID string, forecasts []*domain.Forecast) error
	List(ctx context.Context, companyID string) ([]*domain.Forecast, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{conn: conn}
}

func (r *forecastRepository) Replace(ctx context.Context, companyID string, forecasts []*domain.Forecast) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(forecastsTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover previsões antigas: %w", err)
		}

		if len(forecasts) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(forecastsTable).
			Columns("empresa_id", "produto_id", "data_previsao", "valor_estimado", "tipo", "metodo").
			PlaceholderFormat(squirrel.Dollar)
		for _, f := range forecasts {
			insert = insert.Values(companyID, f.ProductID, f.ForecastDate, f.EstimatedValue, f.Type, f.Method)
		}

		insertSQL, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir previsões: %w", err)
		}

		return nil
	})
}

func (r *forecastRepository) List(ctx context.Context, companyID string) ([]*domain.Forecast, error) {
	query, args, err := squirrel.
		Select("id", "empresa_id", "produto_id", "data_previsao", "valor_estimado", "tipo", "metodo").
		From(forecastsTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		OrderBy("data_previsao ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar previsões: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.Forecast, 0)
	for rows.Next() {
		var f domain.Forecast
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.ProductID, &f.ForecastDate, &f.EstimatedValue, &f.Type, &f.Method); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		forecasts = append(forecasts, &f)
	}

	return forecasts, rows.Err()
}

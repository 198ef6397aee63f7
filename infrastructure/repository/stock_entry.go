package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type StockEntryRepository interface {
	// Create grava a entrada e soma ao estoque do produto na mesma transação
	Create(ctx context.Context, entry *domain.StockEntry) error
	List(ctx context.Context, companyID string) ([]*domain.StockEntry, error)
}

type stockEntryRepository struct {
	conn *postgres.Connection
}

func NewStockEntryRepository(conn *postgres.Connection) StockEntryRepository {
	return &stockEntryRepository{conn: conn}
}

func (r *stockEntryRepository) Create(ctx context.Context, entry *domain.StockEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		update, args, err := squirrel.
			Update(productsTable).
			Set("quantidade_estoque", squirrel.Expr("quantidade_estoque + ?", entry.Quantity)).
			Where(squirrel.Eq{"id": entry.ProductID, "empresa_id": entry.CompanyID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, update, args...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar estoque: %w", translateError(err))
		}
		if err := expectAffected(result); err != nil {
			return err
		}

		insert, args, err := squirrel.
			Insert(stockEntriesTable).
			Columns("empresa_id", "produto_id", "quantidade", "data_entrada", "observacoes").
			Values(entry.CompanyID, entry.ProductID, entry.Quantity, entry.EntryDate, entry.Notes).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, insert, args...).Scan(&entry.ID); err != nil {
			return fmt.Errorf("erro ao inserir entrada de estoque: %w", err)
		}

		return nil
	})
}

func (r *stockEntryRepository) List(ctx context.Context, companyID string) ([]*domain.StockEntry, error) {
	query, args, err := squirrel.
		Select("e.id", "e.empresa_id", "e.produto_id", "p.nome", "e.quantidade", "e.data_entrada", "e.observacoes").
		From(stockEntriesTable + " e").
		Join(productsTable + " p ON p.id = e.produto_id").
		Where(squirrel.Eq{"e.empresa_id": companyID}).
		OrderBy("e.data_entrada DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entradas de estoque: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.StockEntry, 0)
	for rows.Next() {
		var e domain.StockEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.ProductID, &e.ProductName, &e.Quantity, &e.EntryDate, &e.Notes); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de estoque: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

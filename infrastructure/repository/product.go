package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// CreateMany grava todos os produtos ou nenhum
	CreateMany(ctx context.Context, products []*domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, companyID, productID string) error
	GetByID(ctx context.Context, companyID, productID string) (*domain.Product, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Product, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{conn: conn}
}

var productColumns = []string{
	"id", "empresa_id", "nome", "categoria", "preco_custo", "preco_venda", "quantidade_estoque", "created_at",
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := insertProduct(ctx, r.conn, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) CreateMany(ctx context.Context, products []*domain.Product) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, product := range products {
			if err := insertProduct(ctx, tx, product); err != nil {
				return err
			}
		}
		return nil
	})
}

// insertProduct usa o id já atribuído quando houver, para que vendas da mesma
// transação possam referenciar o produto
func insertProduct(ctx context.Context, q postgres.Queryer, product *domain.Product) error {
	columns := []string{"empresa_id", "nome", "categoria", "preco_custo", "preco_venda", "quantidade_estoque"}
	values := []any{product.CompanyID, product.Name, product.Category, product.CostPrice, product.SalePrice, product.StockQuantity}
	if product.ID != "" {
		columns = append([]string{"id"}, columns...)
		values = append([]any{product.ID}, values...)
	}

	query, args, err := squirrel.
		Insert(productsTable).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar produto: %w", translateError(err))
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("nome", product.Name).
		Set("categoria", product.Category).
		Set("preco_custo", product.CostPrice).
		Set("preco_venda", product.SalePrice).
		Set("quantidade_estoque", product.StockQuantity).
		Where(squirrel.Eq{"id": product.ID, "empresa_id": product.CompanyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", translateError(err))
	}

	return expectAffected(result)
}

func (r *productRepository) Delete(ctx context.Context, companyID, productID string) error {
	query, args, err := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": productID, "empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", translateError(err))
	}

	return expectAffected(result)
}

func (r *productRepository) GetByID(ctx context.Context, companyID, productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"id": productID, "empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || errors.Is(translateError(err), ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(row scanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Category, &p.CostPrice, &p.SalePrice, &p.StockQuantity, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

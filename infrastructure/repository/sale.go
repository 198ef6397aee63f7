package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type SaleRepository interface {
	// CreateSales grava as vendas e baixa o estoque numa única transação
	CreateSales(ctx context.Context, sales []*domain.Sale) error
	// ImportSales grava os produtos novos e as vendas históricas numa única
	// transação, sem movimentar estoque
	ImportSales(ctx context.Context, newProducts []*domain.Product, sales []*domain.Sale) error
	List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error)
	DailyTotals(ctx context.Context, companyID string, since time.Time) ([]domain.DailyTotal, error)
	ProductVolumes(ctx context.Context, companyID string, since time.Time) ([]domain.ProductSalesVolume, error)
	SumBetween(ctx context.Context, companyID string, start, end time.Time) (float64, error)
	// Aggregate soma total, quantidade e número de vendas; datas nil não filtram
	Aggregate(ctx context.Context, companyID string, start, end *time.Time) (domain.SalesAggregate, error)
	TopProducts(ctx context.Context, companyID string, start, end time.Time, limit uint64) ([]domain.TopProduct, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{conn: conn}
}

func (r *saleRepository) CreateSales(ctx context.Context, sales []*domain.Sale) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sale := range sales {
			if err := decrementStock(ctx, tx, sale.CompanyID, sale.ProductID, sale.Quantity); err != nil {
				return err
			}
			if err := insertSale(ctx, tx, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) ImportSales(ctx context.Context, newProducts []*domain.Product, sales []*domain.Sale) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, product := range newProducts {
			if err := insertProduct(ctx, tx, product); err != nil {
				return err
			}
		}
		for _, sale := range sales {
			if err := insertSale(ctx, tx, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

// decrementStock só baixa quando há saldo; zero linhas afetadas significa estoque insuficiente
func decrementStock(ctx context.Context, q postgres.Queryer, companyID, productID string, quantity int) error {
	query, args, err := squirrel.
		Update(productsTable).
		Set("quantidade_estoque", squirrel.Expr("quantidade_estoque - ?", quantity)).
		Where(squirrel.Eq{"id": productID, "empresa_id": companyID}).
		Where(squirrel.GtOrEq{"quantidade_estoque": quantity}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao baixar estoque: %w", translateError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInsufficientStock
	}

	return nil
}

func insertSale(ctx context.Context, q postgres.Queryer, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("empresa_id", "produto_id", "quantidade", "data_venda", "preco_unitario", "total").
		Values(sale.CompanyID, sale.ProductID, sale.Quantity, sale.SaleDate, sale.UnitPrice, sale.Total).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&sale.ID); err != nil {
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

func (r *saleRepository) List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	builder := squirrel.
		Select("v.id", "v.empresa_id", "v.produto_id", "p.nome", "v.quantidade", "v.data_venda", "v.preco_unitario", "v.total").
		From(salesTable + " v").
		Join(productsTable + " p ON p.id = v.produto_id").
		Where(squirrel.Eq{"v.empresa_id": filter.CompanyID}).
		OrderBy("v.data_venda DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"v.data_venda": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"v.data_venda": *filter.EndDate})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.ProductID, &s.ProductName, &s.Quantity, &s.SaleDate, &s.UnitPrice, &s.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, &s)
	}

	return sales, rows.Err()
}

// DailyTotals devolve um ponto por dia com vendas, em ordem crescente; dias sem venda não aparecem
func (r *saleRepository) DailyTotals(ctx context.Context, companyID string, since time.Time) ([]domain.DailyTotal, error) {
	query, args, err := squirrel.
		Select("DATE(data_venda) AS dia", "COALESCE(SUM(total), 0)").
		From(salesTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		Where(squirrel.GtOrEq{"data_venda": since}).
		GroupBy("dia").
		OrderBy("dia ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas diárias: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DailyTotal, 0)
	for rows.Next() {
		var total domain.DailyTotal
		if err := rows.Scan(&total.Date, &total.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear total diário: %w", err)
		}
		totals = append(totals, total)
	}

	return totals, rows.Err()
}

// ProductVolumes lista todos os produtos da empresa com a quantidade vendida desde since
func (r *saleRepository) ProductVolumes(ctx context.Context, companyID string, since time.Time) ([]domain.ProductSalesVolume, error) {
	query, args, err := squirrel.
		Select("p.id", "p.nome", "p.quantidade_estoque", "COALESCE(SUM(v.quantidade), 0)", "MAX(v.data_venda)").
		From(productsTable+" p").
		LeftJoin(salesTable+" v ON v.produto_id = p.id AND v.data_venda >= ?", since).
		Where(squirrel.Eq{"p.empresa_id": companyID}).
		GroupBy("p.id", "p.nome", "p.quantidade_estoque").
		OrderBy("p.nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por produto: %w", err)
	}
	defer rows.Close()

	volumes := make([]domain.ProductSalesVolume, 0)
	for rows.Next() {
		var (
			v        domain.ProductSalesVolume
			lastSale sql.NullTime
		)
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.StockQuantity, &v.QuantitySold, &lastSale); err != nil {
			return nil, fmt.Errorf("erro ao escanear volume de produto: %w", err)
		}
		if lastSale.Valid {
			v.LastSaleAt = &lastSale.Time
		}
		volumes = append(volumes, v)
	}

	return volumes, rows.Err()
}

// SumBetween soma o total vendido em [start, end)
func (r *saleRepository) SumBetween(ctx context.Context, companyID string, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(total), 0)").
		From(salesTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		Where(squirrel.GtOrEq{"data_venda": start}).
		Where(squirrel.Lt{"data_venda": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar vendas: %w", err)
	}

	return total, nil
}

func (r *saleRepository) Aggregate(ctx context.Context, companyID string, start, end *time.Time) (domain.SalesAggregate, error) {
	builder := squirrel.
		Select("COALESCE(SUM(total), 0)", "COALESCE(SUM(quantidade), 0)", "COUNT(*)").
		From(salesTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar)

	if start != nil {
		builder = builder.Where(squirrel.GtOrEq{"data_venda": *start})
	}
	if end != nil {
		builder = builder.Where(squirrel.Lt{"data_venda": *end})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.SalesAggregate{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var agg domain.SalesAggregate
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&agg.Total, &agg.Quantity, &agg.Count); err != nil {
		return domain.SalesAggregate{}, fmt.Errorf("erro ao agregar vendas: %w", err)
	}

	return agg, nil
}

// TopProducts ordena os produtos pela receita em [start, end)
func (r *saleRepository) TopProducts(ctx context.Context, companyID string, start, end time.Time, limit uint64) ([]domain.TopProduct, error) {
	query, args, err := squirrel.
		Select("p.nome", "SUM(v.quantidade)", "SUM(v.total) AS receita").
		From(salesTable + " v").
		Join(productsTable + " p ON p.id = v.produto_id").
		Where(squirrel.Eq{"v.empresa_id": companyID}).
		Where(squirrel.GtOrEq{"v.data_venda": start}).
		Where(squirrel.Lt{"v.data_venda": end}).
		GroupBy("p.id", "p.nome").
		OrderBy("receita DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	top := make([]domain.TopProduct, 0)
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.Name, &p.Quantity, &p.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		top = append(top, p)
	}

	return top, rows.Err()
}

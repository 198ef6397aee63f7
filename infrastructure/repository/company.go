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

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Company, error)
	ListAll(ctx context.Context) ([]*domain.Company, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{conn: conn}
}

var companyColumns = []string{"id", "user_id", "nome", "cnpj", "created_at"}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query, args, err := squirrel.
		Insert(companiesTable).
		Columns("user_id", "nome", "cnpj").
		Values(company.UserID, company.Name, company.CNPJ).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&company.ID, &company.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) GetByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company, err := scanCompany(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || errors.Is(translateError(err), ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return company, nil
}

func (r *companyRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Company, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *companyRepository) ListAll(ctx context.Context) ([]*domain.Company, error) {
	return r.list(ctx, nil)
}

func (r *companyRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Company, error) {
	builder := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar empresas: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

func scanCompany(row scanner) (*domain.Company, error) {
	var company domain.Company
	err := row.Scan(&company.ID, &company.UserID, &company.Name, &company.CNPJ, &company.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

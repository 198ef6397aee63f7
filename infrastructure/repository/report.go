package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	List(ctx context.Context, companyID string) ([]*domain.Report, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{conn: conn}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	query, args, err := squirrel.
		Insert(reportsTable).
		Columns("empresa_id", "url_pdf", "periodo_referencia").
		Values(report.CompanyID, report.PDFURL, report.ReferencePeriod).
		Suffix("RETURNING id, criado_em").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&report.ID, &report.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao registrar relatório: %w", err)
	}

	return report, nil
}

func (r *reportRepository) List(ctx context.Context, companyID string) ([]*domain.Report, error) {
	query, args, err := squirrel.
		Select("id", "empresa_id", "url_pdf", "periodo_referencia", "criado_em").
		From(reportsTable).
		Where(squirrel.Eq{"empresa_id": companyID}).
		OrderBy("criado_em DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar relatórios: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		var rp domain.Report
		if err := rows.Scan(&rp.ID, &rp.CompanyID, &rp.PDFURL, &rp.ReferencePeriod, &rp.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		reports = append(reports, &rp)
	}

	return reports, rows.Err()
}

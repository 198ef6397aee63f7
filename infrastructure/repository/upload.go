package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
}

type uploadRepository struct {
	conn *postgres.Connection
}

func NewUploadRepository(conn *postgres.Connection) UploadRepository {
	return &uploadRepository{conn: conn}
}

func (r *uploadRepository) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	query, args, err := squirrel.
		Insert(uploadsTable).
		Columns("empresa_id", "tipo_arquivo", "url").
		Values(upload.CompanyID, upload.FileType, upload.URL).
		Suffix("RETURNING id, data_envio").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&upload.ID, &upload.SentAt); err != nil {
		return nil, fmt.Errorf("erro ao registrar upload: %w", err)
	}

	return upload, nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

func TestProductRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO produtos \(empresa_id,nome,categoria,preco_custo,preco_venda,quantidade_estoque\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING id, created_at`).
		WithArgs("emp-1", "Caneta", "Papelaria", 1.75, 2.5, 100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("prod-1", createdAt))

	repo := NewProductRepository(postgres.Wrap(db))
	product, err := repo.Create(context.Background(), &domain.Product{
		CompanyID: "emp-1", Name: "Caneta", Category: "Papelaria", CostPrice: 1.75, SalePrice: 2.5, StockQuantity: 100,
	})

	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, createdAt, product.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateMany(t *testing.T) {
	createdAt := time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr string
		wantIDs []string
	}{
		{
			name: "grava todos e confirma",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO produtos`).
					WithArgs("emp-1", "Caneta", "Importado", 1.75, 2.5, 0).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("prod-1", createdAt))
				mock.ExpectQuery(`INSERT INTO produtos`).
					WithArgs("emp-1", "Lápis", "Importado", 0.7, 1.0, 0).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("prod-2", createdAt))
				mock.ExpectCommit()
			},
			wantIDs: []string{"prod-1", "prod-2"},
		},
		{
			name: "falha no segundo desfaz o primeiro",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO produtos`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("prod-1", createdAt))
				mock.ExpectQuery(`INSERT INTO produtos`).
					WillReturnError(errors.New("conexão perdida"))
				mock.ExpectRollback()
			},
			wantErr: "conexão perdida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			products := []*domain.Product{
				{CompanyID: "emp-1", Name: "Caneta", Category: "Importado", CostPrice: 1.75, SalePrice: 2.5},
				{CompanyID: "emp-1", Name: "Lápis", Category: "Importado", CostPrice: 0.7, SalePrice: 1.0},
			}

			repo := NewProductRepository(postgres.Wrap(db))
			err = repo.CreateMany(context.Background(), products)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				for i, id := range tt.wantIDs {
					assert.Equal(t, id, products[i].ID)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

type testDeps struct {
	companies *mocks.MockCompanyRepository
	products  *mocks.MockProductRepository
	sales     *mocks.MockSaleRepository
	entries   *mocks.MockStockEntryRepository
	goals     *mocks.MockGoalRepository
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		companies: mocks.NewMockCompanyRepository(ctrl),
		products:  mocks.NewMockProductRepository(ctrl),
		sales:     mocks.NewMockSaleRepository(ctrl),
		entries:   mocks.NewMockStockEntryRepository(ctrl),
		goals:     mocks.NewMockGoalRepository(ctrl),
	}
	service := NewService(deps.companies, deps.products, deps.sales, deps.entries, deps.goals)
	service.now = func() time.Time { return fixedNow }
	return service, deps
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var catalogErr *CatalogError
	require.True(t, errors.As(err, &catalogErr), "esperava CatalogError, veio %v", err)
	assert.Equal(t, code, catalogErr.Code)
}

func TestService_AuthorizeCompany(t *testing.T) {
	company := &domain.Company{ID: "emp-1", UserID: 7, Name: "Loja"}

	tests := []struct {
		name     string
		claims   *domain.Claims
		found    *domain.Company
		wantCode string
	}{
		{name: "dono", claims: &domain.Claims{UserID: 7, UserRoleID: 3}, found: company},
		{name: "admin acessa qualquer empresa", claims: &domain.Claims{UserID: 1, UserRoleID: 1}, found: company},
		{name: "outro usuário", claims: &domain.Claims{UserID: 8, UserRoleID: 3}, found: company, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "empresa inexistente", claims: &domain.Claims{UserID: 7, UserRoleID: 3}, wantCode: apiErrors.ErrResourceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			deps.companies.EXPECT().GetByID(gomock.Any(), "emp-1").Return(tt.found, nil)

			got, err := service.AuthorizeCompany(context.Background(), tt.claims, "emp-1")

			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, company, got)
		})
	}
}

func TestService_CreateCompany(t *testing.T) {
	service, deps := newTestService(t)
	cnpj := "12.345.678/0001-90"

	deps.companies.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.Company) (*domain.Company, error) {
			assert.Equal(t, 7, c.UserID)
			assert.Equal(t, "12345678000190", *c.CNPJ)
			c.ID = "emp-1"
			return c, nil
		})

	created, err := service.CreateCompany(context.Background(), 7, &domain.Company{Name: " Loja Centro ", CNPJ: &cnpj})
	require.NoError(t, err)
	assert.Equal(t, "Loja Centro", created.Name)

	_, err = service.CreateCompany(context.Background(), 7, &domain.Company{Name: "  "})
	requireCode(t, err, apiErrors.ErrInvalidRequest)
}

func TestService_CreateProduct(t *testing.T) {
	tests := []struct {
		name     string
		product  domain.Product
		wantCode string
	}{
		{name: "sem nome", product: domain.Product{SalePrice: 10}, wantCode: apiErrors.ErrInvalidRequest},
		{name: "preço zero", product: domain.Product{Name: "Caneta"}, wantCode: apiErrors.ErrInvalidRequest},
		{name: "custo negativo", product: domain.Product{Name: "Caneta", SalePrice: 2, CostPrice: -1}, wantCode: apiErrors.ErrInvalidRequest},
		{name: "estoque negativo", product: domain.Product{Name: "Caneta", SalePrice: 2, StockQuantity: -1}, wantCode: apiErrors.ErrInvalidRequest},
		{name: "categoria padrão", product: domain.Product{Name: "Caneta", SalePrice: 2.5, CostPrice: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			if tt.wantCode == "" {
				deps.products.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Product) (*domain.Product, error) {
						return p, nil
					})
			}

			product := tt.product
			got, err := service.CreateProduct(context.Background(), "emp-1", &product)

			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultProductCategory, got.Category)
			assert.Equal(t, "emp-1", got.CompanyID)
		})
	}
}

func TestService_DeleteProductNotFound(t *testing.T) {
	service, deps := newTestService(t)
	deps.products.EXPECT().Delete(gomock.Any(), "emp-1", "p-x").Return(repository.ErrNotFound)

	err := service.DeleteProduct(context.Background(), "emp-1", "p-x")
	requireCode(t, err, apiErrors.ErrResourceNotFound)
}

func TestService_RecordSale(t *testing.T) {
	caneta := &domain.Product{ID: "p1", CompanyID: "emp-1", Name: "Caneta", SalePrice: 2.35, StockQuantity: 10}
	lapis := &domain.Product{ID: "p2", CompanyID: "emp-1", Name: "Lápis", SalePrice: 1.1, StockQuantity: 3}
	customPrice := 0.0
	saleDate := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		request  domain.CreateSaleRequest
		setup    func(deps testDeps)
		wantCode string
		validate func(t *testing.T, sales []*domain.Sale)
	}{
		{
			name:     "sem itens",
			request:  domain.CreateSaleRequest{},
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "quantidade zero",
			request:  domain.CreateSaleRequest{Items: []domain.SaleItem{{ProductID: "p1"}}},
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:    "produto de outra empresa",
			request: domain.CreateSaleRequest{Items: []domain.SaleItem{{ProductID: "p9", Quantity: 1}}},
			setup: func(deps testDeps) {
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p9").Return(nil, nil)
			},
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name:    "preço informado zero",
			request: domain.CreateSaleRequest{Items: []domain.SaleItem{{ProductID: "p1", Quantity: 1, UnitPrice: &customPrice}}},
			setup: func(deps testDeps) {
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p1").Return(caneta, nil)
			},
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name: "itens repetidos somam contra o estoque",
			request: domain.CreateSaleRequest{Items: []domain.SaleItem{
				{ProductID: "p2", Quantity: 2},
				{ProductID: "p2", Quantity: 2},
			}},
			setup: func(deps testDeps) {
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p2").Return(lapis, nil).Times(2)
			},
			wantCode: apiErrors.ErrInsufficientStock,
		},
		{
			name:    "estoque consumido por venda concorrente",
			request: domain.CreateSaleRequest{Items: []domain.SaleItem{{ProductID: "p1", Quantity: 5}}},
			setup: func(deps testDeps) {
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p1").Return(caneta, nil)
				deps.sales.EXPECT().CreateSales(gomock.Any(), gomock.Any()).Return(repository.ErrInsufficientStock)
			},
			wantCode: apiErrors.ErrInsufficientStock,
		},
		{
			name: "grava um registro por item com total em centavos",
			request: domain.CreateSaleRequest{SaleDate: &saleDate, Items: []domain.SaleItem{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 3},
			}},
			setup: func(deps testDeps) {
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p1").Return(caneta, nil)
				deps.products.EXPECT().GetByID(gomock.Any(), "emp-1", "p2").Return(lapis, nil)
				deps.sales.EXPECT().CreateSales(gomock.Any(), gomock.Len(2)).Return(nil)
			},
			validate: func(t *testing.T, sales []*domain.Sale) {
				require.Len(t, sales, 2)
				assert.Equal(t, 7.05, sales[0].Total)
				assert.Equal(t, 3.3, sales[1].Total)
				assert.Equal(t, saleDate, sales[0].SaleDate)
				assert.Equal(t, "Caneta", sales[0].ProductName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			if tt.setup != nil {
				tt.setup(deps)
			}

			sales, err := service.RecordSale(context.Background(), "emp-1", tt.request)

			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			tt.validate(t, sales)
		})
	}
}

func TestService_ListSalesRejectsInvertedRange(t *testing.T) {
	service, _ := newTestService(t)
	start := fixedNow
	end := fixedNow.AddDate(0, 0, -1)

	_, err := service.ListSales(context.Background(), domain.SalesFilter{CompanyID: "emp-1", StartDate: &start, EndDate: &end})
	requireCode(t, err, apiErrors.ErrInvalidDateRange)
}

func TestService_RecordStockEntry(t *testing.T) {
	t.Run("quantidade zero", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.RecordStockEntry(context.Background(), "emp-1", &domain.StockEntry{ProductID: "p1"})
		requireCode(t, err, apiErrors.ErrInvalidRequest)
	})

	t.Run("data padrão e produto inexistente", func(t *testing.T) {
		service, deps := newTestService(t)
		deps.entries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.StockEntry) error {
				assert.Equal(t, fixedNow, e.EntryDate)
				assert.Equal(t, "emp-1", e.CompanyID)
				return repository.ErrNotFound
			})

		_, err := service.RecordStockEntry(context.Background(), "emp-1", &domain.StockEntry{ProductID: "p1", Quantity: 4})
		requireCode(t, err, apiErrors.ErrResourceNotFound)
	})
}

func TestService_Goals(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endOfMarch := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("fim antes do início", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.CreateGoal(context.Background(), "emp-1", &domain.Goal{Value: 100, StartDate: endOfMarch, EndDate: march})
		requireCode(t, err, apiErrors.ErrInvalidDateRange)
	})

	t.Run("valor zero", func(t *testing.T) {
		service, _ := newTestService(t)
		_, err := service.CreateGoal(context.Background(), "emp-1", &domain.Goal{StartDate: march, EndDate: endOfMarch})
		requireCode(t, err, apiErrors.ErrInvalidRequest)
	})

	t.Run("progresso acima de cem por cento", func(t *testing.T) {
		service, deps := newTestService(t)
		goal := &domain.Goal{ID: "m1", CompanyID: "emp-1", Value: 1000, StartDate: march, EndDate: endOfMarch}
		deps.goals.EXPECT().List(gomock.Any(), "emp-1").Return([]*domain.Goal{goal}, nil)
		deps.sales.EXPECT().SumBetween(gomock.Any(), "emp-1", march, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).Return(1200.0, nil)

		progress, err := service.GoalProgress(context.Background(), "emp-1")
		require.NoError(t, err)
		require.Len(t, progress, 1)
		assert.InDelta(t, 120, progress[0].Progress, 1e-9)
		assert.Equal(t, 100.0, progress[0].DisplayProgress)
		assert.True(t, progress[0].Reached)
	})
}

func TestService_Dashboard(t *testing.T) {
	service, deps := newTestService(t)
	products := []*domain.Product{
		{ID: "a", Name: "A", SalePrice: 10, CostPrice: 2, StockQuantity: 50},
		{ID: "b", Name: "B", SalePrice: 10, CostPrice: 9, StockQuantity: 3},
		{ID: "c", Name: "C", SalePrice: 20, CostPrice: 5, StockQuantity: 40},
	}
	trendStart := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	deps.sales.EXPECT().Aggregate(gomock.Any(), "emp-1", nil, nil).Return(domain.SalesAggregate{Total: 300, Quantity: 12, Count: 4}, nil)
	deps.products.EXPECT().ListByCompany(gomock.Any(), "emp-1").Return(products, nil)
	deps.sales.EXPECT().ProductVolumes(gomock.Any(), "emp-1", time.Time{}).Return([]domain.ProductSalesVolume{
		{ProductID: "a", QuantitySold: 10},
		{ProductID: "b", QuantitySold: 2},
	}, nil)
	deps.sales.EXPECT().DailyTotals(gomock.Any(), "emp-1", trendStart).Return([]domain.DailyTotal{
		{Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Total: 120},
		{Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Total: 80},
	}, nil)
	deps.goals.EXPECT().List(gomock.Any(), "emp-1").Return(nil, nil)

	dashboard, err := service.Dashboard(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 300.0, dashboard.TotalSales)
	assert.Equal(t, 75.0, dashboard.AverageTicket)
	assert.Equal(t, "C", dashboard.MostProfitable[0].Name)
	assert.Equal(t, "B", dashboard.LeastProfitable[0].Name)

	require.Len(t, dashboard.StagnantProducts, 2)
	assert.Equal(t, "B", dashboard.StagnantProducts[0].Name)
	assert.Equal(t, "C", dashboard.StagnantProducts[1].Name)

	require.Len(t, dashboard.LastWeekSales, 7)
	assert.Equal(t, trendStart, dashboard.LastWeekSales[0].Date)
	assert.Equal(t, 0.0, dashboard.LastWeekSales[0].Total)
	assert.Equal(t, 120.0, dashboard.LastWeekSales[1].Total)
	assert.Equal(t, 80.0, dashboard.LastWeekSales[6].Total)
}

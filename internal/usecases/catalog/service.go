package catalog

import (
	"context"
	"time"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
)

const adminRoleID = 1

type Cataloger interface {
	AuthorizeCompany(ctx context.Context, claims *domain.Claims, companyID string) (*domain.Company, error)

	CreateCompany(ctx context.Context, userID int, company *domain.Company) (*domain.Company, error)
	ListCompanies(ctx context.Context, userID int) ([]*domain.Company, error)

	CreateProduct(ctx context.Context, companyID string, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, companyID string, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, companyID, productID string) error
	ListProducts(ctx context.Context, companyID string) ([]*domain.Product, error)

	RecordSale(ctx context.Context, companyID string, request domain.CreateSaleRequest) ([]*domain.Sale, error)
	ListSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error)

	RecordStockEntry(ctx context.Context, companyID string, entry *domain.StockEntry) (*domain.StockEntry, error)
	ListStockEntries(ctx context.Context, companyID string) ([]*domain.StockEntry, error)

	CreateGoal(ctx context.Context, companyID string, goal *domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, companyID string, goal *domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, companyID, goalID string) error
	ListGoals(ctx context.Context, companyID string) ([]*domain.Goal, error)
	GoalProgress(ctx context.Context, companyID string) ([]domain.GoalProgress, error)

	Dashboard(ctx context.Context, companyID string) (*domain.Dashboard, error)
}

type Service struct {
	companyRepo    repository.CompanyRepository
	productRepo    repository.ProductRepository
	saleRepo       repository.SaleRepository
	stockEntryRepo repository.StockEntryRepository
	goalRepo       repository.GoalRepository
	now            func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	stockEntryRepo repository.StockEntryRepository,
	goalRepo repository.GoalRepository,
) *Service {
	return &Service{
		companyRepo:    companyRepo,
		productRepo:    productRepo,
		saleRepo:       saleRepo,
		stockEntryRepo: stockEntryRepo,
		goalRepo:       goalRepo,
		now:            time.Now,
	}
}

// AuthorizeCompany garante que a empresa existe e pertence ao usuário; admins acessam todas
func (s *Service) AuthorizeCompany(ctx context.Context, claims *domain.Claims, companyID string) (*domain.Company, error) {
	if companyID == "" {
		return nil, NewCatalogError(ErrInvalidData, apiErrors.ErrMissingRequiredData, "ID da empresa é obrigatório")
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("catalog: erro ao buscar empresa")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa")
	}
	if company == nil {
		return nil, NewCatalogErrorWithID(ErrCompanyNotFound, apiErrors.ErrResourceNotFound, companyID, "Empresa não encontrada")
	}

	if claims == nil || (company.UserID != claims.UserID && claims.UserRoleID != adminRoleID) {
		return nil, NewCatalogErrorWithID(ErrForbidden, apiErrors.ErrInsufficientPrivilege, companyID, "Você não tem acesso a esta empresa")
	}

	return company, nil
}

func databaseError(ctx context.Context, err error, details string) *CatalogError {
	log.ForContext(ctx).WithError(err).Error("catalog: " + details)
	return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, details)
}

func validationError(details string) *CatalogError {
	return NewCatalogError(ErrInvalidData, apiErrors.ErrInvalidRequest, details)
}

package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

func validateProduct(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)

	switch {
	case p.Name == "":
		return validationError("Nome do produto é obrigatório")
	case p.SalePrice <= 0:
		return validationError("Preço de venda deve ser maior que zero")
	case p.CostPrice < 0:
		return validationError("Preço de custo não pode ser negativo")
	case p.StockQuantity < 0:
		return validationError("Quantidade em estoque não pode ser negativa")
	}

	if p.Category == "" {
		p.Category = domain.DefaultProductCategory
	}
	p.SalePrice = utils.RoundWithTwoDecimalPlace(p.SalePrice)
	p.CostPrice = utils.RoundWithTwoDecimalPlace(p.CostPrice)

	return nil
}

func (s *Service) CreateProduct(ctx context.Context, companyID string, product *domain.Product) (*domain.Product, error) {
	product.CompanyID = companyID
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao criar produto")
	}

	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, companyID string, product *domain.Product) (*domain.Product, error) {
	product.CompanyID = companyID
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrResourceNotFound, product.ID, "Produto não encontrado")
		}
		return nil, databaseError(ctx, err, "Erro ao atualizar produto")
	}

	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, companyID, productID string) error {
	if err := s.productRepo.Delete(ctx, companyID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrResourceNotFound, productID, "Produto não encontrado")
		}
		return databaseError(ctx, err, "Erro ao remover produto")
	}
	return nil
}

func (s *Service) ListProducts(ctx context.Context, companyID string) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar produtos")
	}
	return products, nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
)

// SaleTotal multiplica em decimal e arredonda para centavos
func SaleTotal(quantity int, unitPrice float64) float64 {
	return decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// RecordSale grava um item de venda por linha. A baixa de estoque acontece na
// mesma transação, então ou todos os itens entram ou nenhum.
func (s *Service) RecordSale(ctx context.Context, companyID string, request domain.CreateSaleRequest) ([]*domain.Sale, error) {
	if len(request.Items) == 0 {
		return nil, validationError("A venda precisa de pelo menos um item")
	}

	saleDate := s.now()
	if request.SaleDate != nil && !request.SaleDate.IsZero() {
		saleDate = *request.SaleDate
	}

	requested := make(map[string]int)
	sales := make([]*domain.Sale, 0, len(request.Items))

	for i, item := range request.Items {
		if item.ProductID == "" {
			return nil, validationError(fmt.Sprintf("Item %d: produto é obrigatório", i+1))
		}
		if item.Quantity <= 0 {
			return nil, validationError(fmt.Sprintf("Item %d: quantidade deve ser maior que zero", i+1))
		}

		product, err := s.productRepo.GetByID(ctx, companyID, item.ProductID)
		if err != nil {
			return nil, databaseError(ctx, err, "Erro ao buscar produto")
		}
		if product == nil {
			return nil, NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrResourceNotFound, item.ProductID, fmt.Sprintf("Item %d: produto não encontrado", i+1))
		}

		unitPrice := product.SalePrice
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		if unitPrice <= 0 {
			return nil, validationError(fmt.Sprintf("Item %d: preço unitário deve ser maior que zero", i+1))
		}

		requested[product.ID] += item.Quantity
		if requested[product.ID] > product.StockQuantity {
			return nil, NewCatalogErrorWithID(ErrInsufficientStock, apiErrors.ErrInsufficientStock, product.ID,
				fmt.Sprintf("%s tem apenas %d unidades em estoque", product.Name, product.StockQuantity))
		}

		sales = append(sales, &domain.Sale{
			CompanyID:   companyID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			SaleDate:    saleDate,
			UnitPrice:   unitPrice,
			Total:       SaleTotal(item.Quantity, unitPrice),
		})
	}

	if err := s.saleRepo.CreateSales(ctx, sales); err != nil {
		// outra venda pode ter consumido o estoque entre a leitura e a transação
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, NewCatalogError(ErrInsufficientStock, apiErrors.ErrInsufficientStock, "Estoque insuficiente para concluir a venda")
		}
		return nil, databaseError(ctx, err, "Erro ao registrar venda")
	}

	log.ForContext(ctx).WithField("company_id", companyID).Infof("catalog: venda registrada com %d itens", len(sales))
	return sales, nil
}

func (s *Service) ListSales(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error) {
	if filter.StartDate != nil && filter.EndDate != nil && !filter.StartDate.Before(*filter.EndDate) {
		return nil, NewCatalogError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, "Data inicial deve ser anterior à final")
	}

	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar vendas")
	}
	return sales, nil
}

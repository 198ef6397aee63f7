package catalog

import (
	"context"
	"errors"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

func (s *Service) RecordStockEntry(ctx context.Context, companyID string, entry *domain.StockEntry) (*domain.StockEntry, error) {
	if entry.ProductID == "" {
		return nil, validationError("Produto é obrigatório")
	}
	if entry.Quantity <= 0 {
		return nil, validationError("Quantidade deve ser maior que zero")
	}

	entry.CompanyID = companyID
	if entry.EntryDate.IsZero() {
		entry.EntryDate = s.now()
	}

	if err := s.stockEntryRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogErrorWithID(ErrProductNotFound, apiErrors.ErrResourceNotFound, entry.ProductID, "Produto não encontrado")
		}
		return nil, databaseError(ctx, err, "Erro ao registrar entrada de estoque")
	}

	return entry, nil
}

func (s *Service) ListStockEntries(ctx context.Context, companyID string) ([]*domain.StockEntry, error) {
	entries, err := s.stockEntryRepo.List(ctx, companyID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar entradas de estoque")
	}
	return entries, nil
}

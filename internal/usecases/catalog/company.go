package catalog

import (
	"context"
	"strings"
	"unicode"

	"github.com/vfg2006/analytico-api/internal/domain"
)

func (s *Service) CreateCompany(ctx context.Context, userID int, company *domain.Company) (*domain.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return nil, validationError("Nome da empresa é obrigatório")
	}

	if company.CNPJ != nil {
		digits := onlyDigits(*company.CNPJ)
		if digits == "" {
			company.CNPJ = nil
		} else {
			company.CNPJ = &digits
		}
	}

	company.UserID = userID

	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao criar empresa")
	}

	return created, nil
}

func (s *Service) ListCompanies(ctx context.Context, userID int) ([]*domain.Company, error) {
	companies, err := s.companyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar empresas")
	}
	return companies, nil
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

package catalog

import (
	"context"
	"errors"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

func validateGoal(goal *domain.Goal) error {
	if goal.Value <= 0 {
		return validationError("Valor da meta deve ser maior que zero")
	}
	if goal.StartDate.IsZero() || goal.EndDate.IsZero() {
		return validationError("Início e fim da meta são obrigatórios")
	}
	if !goal.StartDate.Before(goal.EndDate) {
		return NewCatalogError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, "Início da meta deve ser anterior ao fim")
	}

	if goal.Type == "" {
		goal.Type = domain.DefaultGoalType
	}
	if goal.Period == "" {
		goal.Period = domain.DefaultGoalPeriod
	}
	return nil
}

func (s *Service) CreateGoal(ctx context.Context, companyID string, goal *domain.Goal) (*domain.Goal, error) {
	goal.CompanyID = companyID
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	created, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao criar meta")
	}
	return created, nil
}

func (s *Service) UpdateGoal(ctx context.Context, companyID string, goal *domain.Goal) (*domain.Goal, error) {
	goal.CompanyID = companyID
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogErrorWithID(ErrGoalNotFound, apiErrors.ErrResourceNotFound, goal.ID, "Meta não encontrada")
		}
		return nil, databaseError(ctx, err, "Erro ao atualizar meta")
	}
	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, companyID, goalID string) error {
	if err := s.goalRepo.Delete(ctx, companyID, goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewCatalogErrorWithID(ErrGoalNotFound, apiErrors.ErrResourceNotFound, goalID, "Meta não encontrada")
		}
		return databaseError(ctx, err, "Erro ao remover meta")
	}
	return nil
}

func (s *Service) ListGoals(ctx context.Context, companyID string) ([]*domain.Goal, error) {
	goals, err := s.goalRepo.List(ctx, companyID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar metas")
	}
	return goals, nil
}

// GoalProgress soma as vendas dentro da janela de cada meta
func (s *Service) GoalProgress(ctx context.Context, companyID string) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.List(ctx, companyID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar metas")
	}

	progress := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		achieved, err := s.saleRepo.SumBetween(ctx, companyID, goal.StartDate, goal.SalesWindowEnd())
		if err != nil {
			return nil, databaseError(ctx, err, "Erro ao somar vendas da meta")
		}
		progress = append(progress, domain.NewGoalProgress(*goal, achieved))
	}

	return progress, nil
}

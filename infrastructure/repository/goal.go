package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, companyID, goalID string) error
	List(ctx context.Context, companyID string) ([]*domain.Goal, error)
	ListActive(ctx context.Context, companyID string, at time.Time) ([]*domain.Goal, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{conn: conn}
}

var goalColumns = []string{"id", "empresa_id", "tipo", "valor", "periodo", "inicio", "fim"}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("empresa_id", "tipo", "valor", "periodo", "inicio", "fim").
		Values(goal.CompanyID, goal.Type, goal.Value, goal.Period, goal.StartDate, goal.EndDate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&goal.ID); err != nil {
		return nil, fmt.Errorf("erro ao criar meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query, args, err := squirrel.
		Update(goalsTable).
		Set("tipo", goal.Type).
		Set("valor", goal.Value).
		Set("periodo", goal.Period).
		Set("inicio", goal.StartDate).
		Set("fim", goal.EndDate).
		Where(squirrel.Eq{"id": goal.ID, "empresa_id": goal.CompanyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", translateError(err))
	}

	return expectAffected(result)
}

func (r *goalRepository) Delete(ctx context.Context, companyID, goalID string) error {
	query, args, err := squirrel.
		Delete(goalsTable).
		Where(squirrel.Eq{"id": goalID, "empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover meta: %w", translateError(err))
	}

	return expectAffected(result)
}

func (r *goalRepository) List(ctx context.Context, companyID string) ([]*domain.Goal, error) {
	return r.list(ctx, squirrel.Eq{"empresa_id": companyID})
}

// ListActive devolve as metas com inicio <= at <= fim
func (r *goalRepository) ListActive(ctx context.Context, companyID string, at time.Time) ([]*domain.Goal, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"empresa_id": companyID},
		squirrel.LtOrEq{"inicio": at},
		squirrel.GtOrEq{"fim": at.Format(time.DateOnly)},
	})
}

func (r *goalRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalsTable).
		Where(where).
		OrderBy("inicio DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar metas: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.ID, &g.CompanyID, &g.Type, &g.Value, &g.Period, &g.StartDate, &g.EndDate); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/analytico-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytico-api/internal/domain"
)

type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *domain.Subscription) error
	UpdateByStripeID(ctx context.Context, sub *domain.Subscription) error
	MarkCanceled(ctx context.Context, stripeSubscriptionID string) error
	GetLatestByUser(ctx context.Context, userID int) (*domain.Subscription, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{conn: conn}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *domain.Subscription) error {
	query, args, err := squirrel.
		Insert(subscriptionsTable).
		Columns(
			"user_id", "stripe_customer_id", "stripe_subscription_id", "status", "plan_id", "plan_name",
			"current_period_start", "current_period_end", "cancel_at_period_end",
		).
		Values(
			sub.UserID, sub.StripeCustomerID, sub.StripeSubscriptionID, sub.Status, sub.PlanID, sub.PlanName,
			sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.CancelAtPeriodEnd,
		).
		Suffix(`ON CONFLICT (stripe_subscription_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			stripe_customer_id = EXCLUDED.stripe_customer_id,
			status = EXCLUDED.status,
			plan_id = EXCLUDED.plan_id,
			plan_name = EXCLUDED.plan_name,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar assinatura: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) UpdateByStripeID(ctx context.Context, sub *domain.Subscription) error {
	query, args, err := squirrel.
		Update(subscriptionsTable).
		Set("status", sub.Status).
		Set("current_period_start", sub.CurrentPeriodStart).
		Set("current_period_end", sub.CurrentPeriodEnd).
		Set("cancel_at_period_end", sub.CancelAtPeriodEnd).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"stripe_subscription_id": sub.StripeSubscriptionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar assinatura: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) MarkCanceled(ctx context.Context, stripeSubscriptionID string) error {
	query, args, err := squirrel.
		Update(subscriptionsTable).
		Set("status", domain.SubscriptionCanceled).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"stripe_subscription_id": stripeSubscriptionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao cancelar assinatura: %w", err)
	}

	return nil
}

func (r *subscriptionRepository) GetLatestByUser(ctx context.Context, userID int) (*domain.Subscription, error) {
	query, args, err := squirrel.
		Select(
			"id", "user_id", "stripe_customer_id", "stripe_subscription_id", "status",
			"COALESCE(plan_id, '')", "COALESCE(plan_name, '')",
			"current_period_start", "current_period_end", "cancel_at_period_end", "created_at", "updated_at",
		).
		From(subscriptionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		sub        domain.Subscription
		start, end sql.NullTime
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID, &sub.UserID, &sub.StripeCustomerID, &sub.StripeSubscriptionID, &sub.Status,
		&sub.PlanID, &sub.PlanName, &start, &end, &sub.CancelAtPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar assinatura: %w", err)
	}

	if start.Valid {
		sub.CurrentPeriodStart = &start.Time
	}
	if end.Valid {
		sub.CurrentPeriodEnd = &end.Time
	}

	return &sub, nil
}

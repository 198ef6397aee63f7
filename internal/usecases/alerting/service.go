package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

type Alerter interface {
	List(ctx context.Context, companyID, alertType string) ([]domain.Alert, error)
}

type Service struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	goalRepo    repository.GoalRepository
	now         func() time.Time
}

func NewService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, goalRepo repository.GoalRepository) *Service {
	return &Service{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		goalRepo:    goalRepo,
		now:         time.Now,
	}
}

// List recalcula os alertas da empresa. Nada é persistido entre chamadas.
func (s *Service) List(ctx context.Context, companyID, alertType string) ([]domain.Alert, error) {
	now := s.now()

	snapshot, err := s.load(ctx, companyID, now)
	if err != nil {
		log.ForContext(ctx).WithField("company_id", companyID).WithError(err).Error("alerts: erro ao carregar dados")
		return nil, err
	}

	alerts := Filter(Generate(snapshot, now), alertType)
	for _, a := range alerts {
		metrics.AlertsProduced.WithLabelValues(string(a.Type)).Inc()
	}

	return alerts, nil
}

func (s *Service) load(ctx context.Context, companyID string, now time.Time) (Snapshot, error) {
	var snapshot Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := s.productRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return fmt.Errorf("produtos: %w", err)
		}
		snapshot.Products = products
		return nil
	})

	g.Go(func() error {
		sales, err := s.saleRepo.List(gctx, domain.SalesFilter{CompanyID: companyID, Limit: recentSalesLimit})
		if err != nil {
			return fmt.Errorf("vendas recentes: %w", err)
		}
		snapshot.RecentSales = sales
		return nil
	})

	g.Go(func() error {
		goals, err := s.goalRepo.ListActive(gctx, companyID, now)
		if err != nil {
			return fmt.Errorf("metas: %w", err)
		}

		progress := make([]domain.GoalProgress, 0, len(goals))
		for _, goal := range goals {
			if goal.Value <= 0 {
				continue
			}
			achieved, err := s.saleRepo.SumBetween(gctx, companyID, goal.StartDate, goal.SalesWindowEnd())
			if err != nil {
				return fmt.Errorf("vendas da meta %s: %w", goal.ID, err)
			}
			progress = append(progress, domain.NewGoalProgress(*goal, achieved))
		}
		snapshot.Goals = progress
		return nil
	})

	g.Go(func() error {
		volumes, err := s.saleRepo.ProductVolumes(gctx, companyID, now.AddDate(0, 0, -staleWindowDays))
		if err != nil {
			return fmt.Errorf("volume por produto: %w", err)
		}
		snapshot.Volumes = volumes
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

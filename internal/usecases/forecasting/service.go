package forecasting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

type Forecaster interface {
	Generate(ctx context.Context, companyID string) (*domain.ForecastResult, error)
	List(ctx context.Context, companyID string) ([]*domain.Forecast, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	forecastRepo repository.ForecastRepository
	cfg          config.Forecast
	now          func() time.Time
}

func NewService(saleRepo repository.SaleRepository, forecastRepo repository.ForecastRepository, cfg config.Forecast) *Service {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 30
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultWindowSize
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.ReorderThreshold <= 0 {
		cfg.ReorderThreshold = DefaultThresholdDays
	}
	if cfg.ReorderAverageDays <= 0 {
		cfg.ReorderAverageDays = DefaultAverageDays
	}

	return &Service{
		saleRepo:     saleRepo,
		forecastRepo: forecastRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Generate recalcula a previsão da empresa a partir das vendas recentes e
// substitui as previsões gravadas.
func (s *Service) Generate(ctx context.Context, companyID string) (*domain.ForecastResult, error) {
	if companyID == "" {
		return nil, newForecastError(ErrMissingCompany, apiErrors.ErrMissingRequiredData, "")
	}

	logger := log.ForContext(ctx).WithField("company_id", companyID)
	now := s.now()
	since := now.AddDate(0, 0, -s.cfg.LookbackDays)

	daily, err := s.saleRepo.DailyTotals(ctx, companyID, since)
	if err != nil {
		logger.WithError(err).Error("forecast: erro ao agregar vendas diárias")
		return nil, newForecastError(fmt.Errorf("%w: %v", ErrLoadSales, err), apiErrors.ErrDatabaseOperation, companyID)
	}

	volumes, err := s.saleRepo.ProductVolumes(ctx, companyID, since)
	if err != nil {
		logger.WithError(err).Error("forecast: erro ao agregar vendas por produto")
		return nil, newForecastError(fmt.Errorf("%w: %v", ErrLoadSales, err), apiErrors.ErrDatabaseOperation, companyID)
	}

	movingAverage := MovingAverage(daily, s.cfg.WindowSize)
	slope, intercept := LinearTrend(movingAverage)

	// a projeção começa sempre amanhã, mesmo sem vendas recentes
	projection := Project(now, slope, intercept, len(movingAverage), s.cfg.HorizonDays)

	forecasts := make([]*domain.Forecast, 0, len(projection))
	for _, p := range projection {
		forecasts = append(forecasts, &domain.Forecast{
			CompanyID:      companyID,
			ForecastDate:   p.Date,
			EstimatedValue: utils.RoundWithTwoDecimalPlace(p.PredictedValue),
			Type:           domain.ForecastTypeSales,
			Method:         domain.ForecastMethodMAOLS,
		})
	}

	if err := s.forecastRepo.Replace(ctx, companyID, forecasts); err != nil {
		logger.WithError(err).Error("forecast: erro ao gravar previsões")
		return nil, newForecastError(fmt.Errorf("%w: %v", ErrSaveForecast, err), apiErrors.ErrDatabaseOperation, companyID)
	}

	metrics.ForecastsGenerated.Inc()
	logger.Infof("forecast: %d pontos diários, %d médias, inclinação %.2f", len(daily), len(movingAverage), slope)

	return &domain.ForecastResult{
		Success:            true,
		Forecast:           roundProjection(projection),
		Trend:              Summarize(slope, intercept),
		ReorderSuggestions: ReorderSuggestions(volumes, s.cfg.ReorderAverageDays, s.cfg.ReorderThreshold),
		MovingAverage:      roundMovingAverage(movingAverage),
	}, nil
}

func (s *Service) List(ctx context.Context, companyID string) ([]*domain.Forecast, error) {
	forecasts, err := s.forecastRepo.List(ctx, companyID)
	if err != nil {
		return nil, newForecastError(err, apiErrors.ErrDatabaseOperation, companyID)
	}
	return forecasts, nil
}

func roundProjection(points []domain.ForecastPoint) []domain.ForecastPoint {
	out := make([]domain.ForecastPoint, len(points))
	for i, p := range points {
		out[i] = domain.ForecastPoint{Date: p.Date, PredictedValue: utils.RoundWithTwoDecimalPlace(p.PredictedValue)}
	}
	return out
}

func roundMovingAverage(points []domain.MovingAveragePoint) []domain.MovingAveragePoint {
	out := make([]domain.MovingAveragePoint, len(points))
	for i, p := range points {
		out[i] = domain.MovingAveragePoint{Date: p.Date, AverageValue: utils.RoundWithTwoDecimalPlace(p.AverageValue)}
	}
	return out
}

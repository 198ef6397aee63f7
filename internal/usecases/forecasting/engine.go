package forecasting

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const (
	DefaultWindowSize  = 7
	DefaultHorizonDays = 7
)

// MovingAverage calcula a média simples de cada janela terminada em i, para
// i >= window-1. Com menos pontos que a janela o resultado é vazio.
func MovingAverage(points []domain.DailyTotal, window int) []domain.MovingAveragePoint {
	if window <= 0 || len(points) < window {
		return []domain.MovingAveragePoint{}
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Total
	}

	result := make([]domain.MovingAveragePoint, 0, len(points)-window+1)
	for i := window - 1; i < len(points); i++ {
		mean, err := stats.Mean(values[i-window+1 : i+1])
		if err != nil {
			continue
		}
		result = append(result, domain.MovingAveragePoint{
			Date:         points[i].Date,
			AverageValue: mean,
		})
	}

	return result
}

// LinearTrend ajusta y = intercept + slope*x por mínimos quadrados com x = índice.
// Séries vazias ou de um ponto nunca produzem NaN.
func LinearTrend(points []domain.MovingAveragePoint) (slope, intercept float64) {
	n := float64(len(points))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range points {
		x := float64(i)
		sumX += x
		sumY += p.AverageValue
		sumXY += x * p.AverageValue
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return 0, sumY / n
	}

	slope = (n*sumXY - sumX*sumY) / denominator
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// Project gera horizon pontos diários após anchor. O x do ponto i é n+i, com n
// o tamanho da série ajustada; valores negativos viram zero.
func Project(anchor time.Time, slope, intercept float64, n, horizon int) []domain.ForecastPoint {
	base := utils.StartOfDay(anchor)

	points := make([]domain.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		value := intercept + slope*float64(n+i)
		if value < 0 {
			value = 0
		}
		points = append(points, domain.ForecastPoint{
			Date:           base.AddDate(0, 0, i),
			PredictedValue: value,
		})
	}

	return points
}

func Summarize(slope, intercept float64) domain.Trend {
	label := domain.TrendDecline
	if slope > 0 {
		label = domain.TrendGrowth
	}

	return domain.Trend{
		Slope:     utils.RoundWithTwoDecimalPlace(slope),
		Intercept: intercept,
		Label:     label,
	}
}

package forecasting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/internal/domain"
)

func dailySeries(start time.Time, totals ...float64) []domain.DailyTotal {
	points := make([]domain.DailyTotal, len(totals))
	for i, total := range totals {
		points[i] = domain.DailyTotal{Date: start.AddDate(0, 0, i), Total: total}
	}
	return points
}

func TestMovingAverage(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		points   []domain.DailyTotal
		wantLen  int
		validate func(t *testing.T, got []domain.MovingAveragePoint)
	}{
		{
			name:    "menos de sete pontos",
			points:  dailySeries(start, 10, 20, 30, 40, 50, 60),
			wantLen: 0,
		},
		{
			name:    "exatamente sete pontos",
			points:  dailySeries(start, 1, 2, 3, 4, 5, 6, 7),
			wantLen: 1,
			validate: func(t *testing.T, got []domain.MovingAveragePoint) {
				assert.Equal(t, 4.0, got[0].AverageValue)
				assert.Equal(t, start.AddDate(0, 0, 6), got[0].Date)
			},
		},
		{
			name:    "pico no oitavo dia",
			points:  dailySeries(start, 10, 10, 10, 10, 10, 10, 10, 70),
			wantLen: 2,
			validate: func(t *testing.T, got []domain.MovingAveragePoint) {
				assert.Equal(t, 10.0, got[0].AverageValue)
				assert.InDelta(t, 18.57, got[1].AverageValue, 0.005)
			},
		},
		{
			name:    "trinta dias",
			points:  dailySeries(start, make([]float64, 30)...),
			wantLen: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(tt.points, DefaultWindowSize)

			require.Len(t, got, tt.wantLen)
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestLinearTrend(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ma := func(values ...float64) []domain.MovingAveragePoint {
		points := make([]domain.MovingAveragePoint, len(values))
		for i, v := range values {
			points[i] = domain.MovingAveragePoint{Date: day.AddDate(0, 0, i), AverageValue: v}
		}
		return points
	}

	tests := []struct {
		name          string
		points        []domain.MovingAveragePoint
		wantSlope     float64
		wantIntercept float64
	}{
		{name: "série vazia", points: nil, wantSlope: 0, wantIntercept: 0},
		{name: "um ponto", points: ma(42), wantSlope: 0, wantIntercept: 42},
		{name: "reta perfeita", points: ma(5, 7, 9, 11), wantSlope: 2, wantIntercept: 5},
		{name: "constante", points: ma(10, 10, 10), wantSlope: 0, wantIntercept: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept := LinearTrend(tt.points)

			assert.False(t, math.IsNaN(slope) || math.IsInf(slope, 0))
			assert.False(t, math.IsNaN(intercept) || math.IsInf(intercept, 0))
			assert.InDelta(t, tt.wantSlope, slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, intercept, 1e-9)
		})
	}
}

func TestProject(t *testing.T) {
	anchor := time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)

	t.Run("sete datas crescentes a partir do dia seguinte", func(t *testing.T) {
		points := Project(anchor, 1, 100, 5, DefaultHorizonDays)

		require.Len(t, points, 7)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), points[0].Date)
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i].Date.After(points[i-1].Date))
		}
		assert.Equal(t, 106.0, points[0].PredictedValue)
		assert.Equal(t, 112.0, points[6].PredictedValue)
	})

	t.Run("tendência de queda nunca fica negativa", func(t *testing.T) {
		points := Project(anchor, -10, 30, 2, DefaultHorizonDays)

		for _, p := range points {
			assert.GreaterOrEqual(t, p.PredictedValue, 0.0)
		}
		assert.Equal(t, 0.0, points[6].PredictedValue)
	})
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, domain.TrendGrowth, Summarize(0.004, 1).Label)
	assert.Equal(t, domain.TrendDecline, Summarize(0, 1).Label)
	assert.Equal(t, domain.TrendDecline, Summarize(-1.236, 1).Label)
	assert.Equal(t, -1.24, Summarize(-1.236, 1).Slope)
}

package domain

import "time"

const (
	ForecastTypeSales   = "vendas"
	ForecastMethodMAOLS = "media_movel_regressao_linear"

	TrendGrowth  = "crescimento"
	TrendDecline = "declínio"
)

// Forecast é uma linha persistida em previsoes
type Forecast struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"empresa_id"`
	ProductID      *string   `json:"produto_id,omitempty"`
	ForecastDate   time.Time `json:"data_previsao"`
	EstimatedValue float64   `json:"valor_estimado"`
	Type           string    `json:"tipo"`
	Method         string    `json:"metodo"`
}

type MovingAveragePoint struct {
	Date         time.Time `json:"data"`
	AverageValue float64   `json:"media"`
}

type ForecastPoint struct {
	Date           time.Time `json:"data"`
	PredictedValue float64   `json:"valor_previsto"`
}

type Trend struct {
	Slope     float64 `json:"inclinacao"`
	Intercept float64 `json:"-"`
	Label     string  `json:"crescimento"`
}

type ReorderSuggestion struct {
	ProductID         string  `json:"produto_id"`
	ProductName       string  `json:"produto"`
	CurrentStock      int     `json:"estoque_atual"`
	AverageDailySales float64 `json:"media_vendas_dia"`
	DaysRemaining     float64 `json:"dias_restantes"`
	NeedsReorder      bool    `json:"necessita_reposicao"`
}

type ForecastResult struct {
	Success            bool                 `json:"success"`
	Forecast           []ForecastPoint      `json:"previsao_vendas"`
	Trend              Trend                `json:"tendencia"`
	ReorderSuggestions []ReorderSuggestion  `json:"sugestoes_reposicao"`
	MovingAverage      []MovingAveragePoint `json:"media_movel"`
}

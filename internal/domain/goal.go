package domain

import "time"

const (
	DefaultGoalType   = "vendas"
	DefaultGoalPeriod = "mensal"
)

type Goal struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"empresa_id"`
	Type      string    `json:"tipo"`
	Value     float64   `json:"valor"`
	Period    string    `json:"periodo"`
	StartDate time.Time `json:"inicio"`
	EndDate   time.Time `json:"fim"`
}

// IsActive indica se now está entre inicio e o fim do dia de fim
func (g Goal) IsActive(now time.Time) bool {
	return !now.Before(g.StartDate) && now.Before(g.SalesWindowEnd())
}

// GoalProgress guarda o percentual bruto e o valor limitado a 100 para exibição
type GoalProgress struct {
	Goal            Goal    `json:"meta"`
	Achieved        float64 `json:"realizado"`
	Progress        float64 `json:"progresso"`
	DisplayProgress float64 `json:"progresso_exibicao"`
	Reached         bool    `json:"atingida"`
}

// NewGoalProgress calcula o percentual atingido. Metas com valor <= 0 ficam em zero.
func NewGoalProgress(goal Goal, achieved float64) GoalProgress {
	progress := GoalProgress{Goal: goal, Achieved: achieved}
	if goal.Value <= 0 {
		return progress
	}

	progress.Progress = achieved / goal.Value * 100
	progress.DisplayProgress = min(progress.Progress, 100)
	progress.Reached = progress.Progress >= 100
	return progress
}

// SalesWindowEnd é o limite exclusivo usado para somar vendas até o fim do último dia
func (g Goal) SalesWindowEnd() time.Time {
	y, m, d := g.EndDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.EndDate.Location()).AddDate(0, 0, 1)
}

package domain

type ProductMargin struct {
	ProductID string  `json:"produto_id"`
	Name      string  `json:"nome"`
	Margin    float64 `json:"margem"`
	Stock     int     `json:"estoque"`
}

type Dashboard struct {
	TotalSales       float64         `json:"vendas_totais"`
	AverageTicket    float64         `json:"ticket_medio"`
	SalesCount       int             `json:"numero_vendas"`
	MostProfitable   []ProductMargin `json:"produtos_mais_lucrativos"`
	LeastProfitable  []ProductMargin `json:"produtos_menos_lucrativos"`
	StagnantProducts []ProductMargin `json:"produtos_parados"`
	LastWeekSales    []DailyTotal    `json:"vendas_ultimos_7_dias"`
	Goals            []GoalProgress  `json:"metas"`
}

package domain

import "time"

const DefaultProductCategory = "Geral"

type Product struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"empresa_id"`
	Name          string    `json:"nome"`
	Category      string    `json:"categoria"`
	CostPrice     float64   `json:"preco_custo"`
	SalePrice     float64   `json:"preco_venda"`
	StockQuantity int       `json:"quantidade_estoque"`
	CreatedAt     time.Time `json:"created_at"`
}

// Margin é a margem unitária usada no ranking de lucratividade
func (p Product) Margin() float64 {
	return p.SalePrice - p.CostPrice
}

package domain

import "time"

// Sale é imutável depois de gravada
type Sale struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"empresa_id"`
	ProductID   string    `json:"produto_id"`
	ProductName string    `json:"produto_nome,omitempty"`
	Quantity    int       `json:"quantidade"`
	SaleDate    time.Time `json:"data_venda"`
	UnitPrice   float64   `json:"preco_unitario"`
	Total       float64   `json:"total"`
}

type SaleItem struct {
	ProductID string   `json:"produto_id"`
	Quantity  int      `json:"quantidade"`
	UnitPrice *float64 `json:"preco_unitario,omitempty"`
}

type CreateSaleRequest struct {
	SaleDate *time.Time `json:"data_venda,omitempty"`
	Items    []SaleItem `json:"itens"`
}

type SalesFilter struct {
	CompanyID string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
}

// DailyTotal é a soma das vendas de um dia de calendário
type DailyTotal struct {
	Date  time.Time `json:"data"`
	Total float64   `json:"total"`
}

// ProductSalesVolume agrega estoque e quantidade vendida de um produto numa janela
type ProductSalesVolume struct {
	ProductID     string
	ProductName   string
	StockQuantity int
	QuantitySold  int
	LastSaleAt    *time.Time
}

// SalesAggregate resume as vendas de um período
type SalesAggregate struct {
	Total    float64
	Quantity int
	Count    int
}

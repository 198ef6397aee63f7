package domain

import "time"

type StockEntry struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"empresa_id"`
	ProductID   string    `json:"produto_id"`
	ProductName string    `json:"produto_nome,omitempty"`
	Quantity    int       `json:"quantidade"`
	EntryDate   time.Time `json:"data_entrada"`
	Notes       *string   `json:"observacoes,omitempty"`
}

package domain

import "time"

// Company é o tenant: todo dado operacional pertence a uma empresa
type Company struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"nome"`
	CNPJ      *string   `json:"cnpj,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

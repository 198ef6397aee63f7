package domain

import "time"

type AlertType string

const (
	AlertLowStock     AlertType = "estoque_baixo"
	AlertTicketSwing  AlertType = "ticket_medio"
	AlertGoalReached  AlertType = "meta_atingida"
	AlertStaleProduct AlertType = "produto_parado"
)

type AlertPriority string

const (
	PriorityHigh   AlertPriority = "alta"
	PriorityMedium AlertPriority = "media"
	PriorityLow    AlertPriority = "baixa"
)

// Alert é recalculado a cada consulta e nunca persistido
type Alert struct {
	ID          string         `json:"id"`
	Type        AlertType      `json:"tipo"`
	Title       string         `json:"titulo"`
	Description string         `json:"descricao"`
	Priority    AlertPriority  `json:"prioridade"`
	Date        time.Time      `json:"data"`
	Data        map[string]any `json:"dados,omitempty"`
}

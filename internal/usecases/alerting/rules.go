package alerting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const (
	lowStockThreshold      = 10
	criticalStockThreshold = 5

	recentSalesLimit      = 50
	ticketSampleSize      = 10
	ticketSwingPercent    = 15.0
	ticketCriticalPercent = 25.0

	staleWindowDays = 30
)

// Snapshot reúne os dados já carregados sobre os quais as regras rodam
type Snapshot struct {
	Products    []*domain.Product
	RecentSales []*domain.Sale
	Goals       []domain.GoalProgress
	Volumes     []domain.ProductSalesVolume
}

// Generate aplica as quatro regras na ordem estoque, ticket, metas, parados
func Generate(s Snapshot, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	alerts = append(alerts, LowStock(s.Products, now)...)
	if alert, ok := TicketSwing(s.RecentSales, now); ok {
		alerts = append(alerts, alert)
	}
	alerts = append(alerts, GoalsReached(s.Goals, now)...)
	alerts = append(alerts, StaleProducts(s.Volumes, now)...)
	return alerts
}

func LowStock(products []*domain.Product, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	for _, p := range products {
		if p.StockQuantity >= lowStockThreshold {
			continue
		}

		priority := domain.PriorityMedium
		if p.StockQuantity < criticalStockThreshold {
			priority = domain.PriorityHigh
		}

		alerts = append(alerts, domain.Alert{
			ID:          "estoque_" + p.ID,
			Type:        domain.AlertLowStock,
			Title:       "Estoque Baixo",
			Description: fmt.Sprintf("%s está com apenas %d unidades em estoque", p.Name, p.StockQuantity),
			Priority:    priority,
			Date:        now,
			Data:        map[string]any{"produto": p},
		})
	}
	return alerts
}

// TicketSwing compara o ticket médio das 10 vendas mais recentes com as 10
// anteriores. sales deve vir da mais nova para a mais antiga.
func TicketSwing(sales []*domain.Sale, now time.Time) (domain.Alert, bool) {
	if len(sales) <= ticketSampleSize {
		return domain.Alert{}, false
	}

	recent := sales[:ticketSampleSize]
	previous := sales[ticketSampleSize:min(len(sales), 2*ticketSampleSize)]

	recentMean := meanTotal(recent)
	previousMean := meanTotal(previous)
	if previousMean == 0 {
		return domain.Alert{}, false
	}

	variation := (recentMean - previousMean) * 100 / previousMean
	if math.Abs(variation) <= ticketSwingPercent {
		return domain.Alert{}, false
	}

	title, verb := "Ticket Médio Diminuiu", "diminuiu"
	if variation > 0 {
		title, verb = "Ticket Médio Aumentou", "aumentou"
	}

	priority := domain.PriorityMedium
	if math.Abs(variation) > ticketCriticalPercent {
		priority = domain.PriorityHigh
	}

	return domain.Alert{
		ID:          string(domain.AlertTicketSwing),
		Type:        domain.AlertTicketSwing,
		Title:       title,
		Description: fmt.Sprintf("O ticket médio %s %.1f%% nas últimas vendas", verb, math.Abs(variation)),
		Priority:    priority,
		Date:        now,
		Data: map[string]any{
			"variacao":              utils.RoundWithTwoDecimalPlace(variation),
			"ticket_medio_recente":  utils.RoundWithTwoDecimalPlace(recentMean),
			"ticket_medio_anterior": utils.RoundWithTwoDecimalPlace(previousMean),
		},
	}, true
}

func meanTotal(sales []*domain.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sales {
		sum += s.Total
	}
	return sum / float64(len(sales))
}

func GoalsReached(goals []domain.GoalProgress, now time.Time) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	for _, g := range goals {
		if g.Goal.Value <= 0 || !g.Reached {
			continue
		}

		alerts = append(alerts, domain.Alert{
			ID:          "meta_" + g.Goal.ID,
			Type:        domain.AlertGoalReached,
			Title:       "Meta Atingida!",
			Description: fmt.Sprintf("Parabéns! A meta de %s foi atingida com %.1f%%", g.Goal.Type, g.Progress),
			Priority:    domain.PriorityLow,
			Date:        now,
			Data:        map[string]any{"meta": g.Goal, "progresso": utils.RoundWithTwoDecimalPlace(g.Progress)},
		})
	}
	return alerts
}

// StaleProducts aponta produtos com estoque e sem venda na janela. volumes
// precisa ter sido agregado desde now-30 dias.
func StaleProducts(volumes []domain.ProductSalesVolume, now time.Time) []domain.Alert {
	cutoff := now.AddDate(0, 0, -staleWindowDays)

	alerts := make([]domain.Alert, 0)
	for _, v := range volumes {
		if v.StockQuantity <= 0 {
			continue
		}
		if v.LastSaleAt != nil && v.LastSaleAt.After(cutoff) {
			continue
		}

		alerts = append(alerts, domain.Alert{
			ID:          "parado_" + v.ProductID,
			Type:        domain.AlertStaleProduct,
			Title:       "Produto Parado",
			Description: fmt.Sprintf("%s não teve vendas nos últimos %d dias", v.ProductName, staleWindowDays),
			Priority:    domain.PriorityMedium,
			Date:        now,
			Data: map[string]any{
				"produto_id":         v.ProductID,
				"quantidade_estoque": v.StockQuantity,
			},
		})
	}
	return alerts
}

// Filter mantém só os alertas do tipo pedido; tipo vazio ou "todos" devolve tudo
func Filter(alerts []domain.Alert, alertType string) []domain.Alert {
	if alertType == "" || alertType == "todos" {
		return alerts
	}

	filtered := make([]domain.Alert, 0, len(alerts))
	for _, a := range alerts {
		if string(a.Type) == alertType {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

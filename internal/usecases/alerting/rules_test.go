package alerting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/internal/domain"
)

var now = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func salesWithTotals(totals ...float64) []*domain.Sale {
	sales := make([]*domain.Sale, len(totals))
	for i, total := range totals {
		sales[i] = &domain.Sale{ID: "v", Total: total}
	}
	return sales
}

func repeat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func TestLowStock(t *testing.T) {
	products := []*domain.Product{
		{ID: "a", Name: "Caneta", StockQuantity: 3},
		{ID: "b", Name: "Lápis", StockQuantity: 7},
		{ID: "c", Name: "Caderno", StockQuantity: 10},
	}

	alerts := LowStock(products, now)

	require.Len(t, alerts, 2)
	assert.Equal(t, "estoque_a", alerts[0].ID)
	assert.Equal(t, domain.PriorityHigh, alerts[0].Priority)
	assert.Equal(t, "Caneta está com apenas 3 unidades em estoque", alerts[0].Description)
	assert.Equal(t, domain.PriorityMedium, alerts[1].Priority)
}

func TestTicketSwing(t *testing.T) {
	tests := []struct {
		name         string
		totals       []float64
		wantAlert    bool
		wantPriority domain.AlertPriority
		wantTitle    string
	}{
		{name: "dez vendas não bastam", totals: repeat(100, 10)},
		{
			name:         "alta de trinta por cento",
			totals:       append(repeat(130, 10), repeat(100, 10)...),
			wantAlert:    true,
			wantPriority: domain.PriorityHigh,
			wantTitle:    "Ticket Médio Aumentou",
		},
		{
			name:         "queda de vinte por cento",
			totals:       append(repeat(80, 10), repeat(100, 10)...),
			wantAlert:    true,
			wantPriority: domain.PriorityMedium,
			wantTitle:    "Ticket Médio Diminuiu",
		},
		{name: "variação de quinze por cento exatos", totals: append(repeat(115, 10), repeat(100, 10)...)},
		{name: "média anterior zero", totals: append(repeat(50, 10), repeat(0, 5)...)},
		{
			name:         "onze vendas comparam com uma",
			totals:       append(repeat(200, 10), 100),
			wantAlert:    true,
			wantPriority: domain.PriorityHigh,
			wantTitle:    "Ticket Médio Aumentou",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, ok := TicketSwing(salesWithTotals(tt.totals...), now)

			require.Equal(t, tt.wantAlert, ok)
			if !tt.wantAlert {
				return
			}
			assert.Equal(t, "ticket_medio", alert.ID)
			assert.Equal(t, tt.wantPriority, alert.Priority)
			assert.Equal(t, tt.wantTitle, alert.Title)
		})
	}
}

func TestGoalsReached(t *testing.T) {
	goal := domain.Goal{ID: "m1", Type: "vendas", Value: 1000}
	goals := []domain.GoalProgress{
		domain.NewGoalProgress(goal, 1200),
		domain.NewGoalProgress(domain.Goal{ID: "m2", Type: "vendas", Value: 1000}, 999),
		domain.NewGoalProgress(domain.Goal{ID: "m3", Type: "vendas", Value: 0}, 50),
	}

	alerts := GoalsReached(goals, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, "meta_m1", alerts[0].ID)
	assert.Equal(t, domain.PriorityLow, alerts[0].Priority)
	assert.Equal(t, "Parabéns! A meta de vendas foi atingida com 120.0%", alerts[0].Description)
}

func TestStaleProducts(t *testing.T) {
	recent := now.AddDate(0, 0, -3)
	old := now.AddDate(0, 0, -45)

	volumes := []domain.ProductSalesVolume{
		{ProductID: "a", ProductName: "Caneta", StockQuantity: 5, LastSaleAt: &recent},
		{ProductID: "b", ProductName: "Lápis", StockQuantity: 5},
		{ProductID: "c", ProductName: "Régua", StockQuantity: 0},
		{ProductID: "d", ProductName: "Cola", StockQuantity: 2, LastSaleAt: &old},
	}

	alerts := StaleProducts(volumes, now)

	require.Len(t, alerts, 2)
	assert.Equal(t, "parado_b", alerts[0].ID)
	assert.Equal(t, "parado_d", alerts[1].ID)
	assert.Equal(t, domain.PriorityMedium, alerts[1].Priority)
}

func TestGenerateAndFilter(t *testing.T) {
	snapshot := Snapshot{
		Products:    []*domain.Product{{ID: "a", Name: "Caneta", StockQuantity: 1}},
		RecentSales: salesWithTotals(append(repeat(200, 10), repeat(100, 10)...)...),
		Goals:       []domain.GoalProgress{domain.NewGoalProgress(domain.Goal{ID: "m", Type: "vendas", Value: 10}, 20)},
		Volumes:     []domain.ProductSalesVolume{{ProductID: "a", ProductName: "Caneta", StockQuantity: 1}},
	}

	alerts := Generate(snapshot, now)

	require.Len(t, alerts, 4)
	assert.Equal(t, domain.AlertLowStock, alerts[0].Type)
	assert.Equal(t, domain.AlertTicketSwing, alerts[1].Type)
	assert.Equal(t, domain.AlertGoalReached, alerts[2].Type)
	assert.Equal(t, domain.AlertStaleProduct, alerts[3].Type)

	assert.Len(t, Filter(alerts, "todos"), 4)
	filtered := Filter(alerts, "meta_atingida")
	require.Len(t, filtered, 1)
	assert.Equal(t, "meta_m", filtered[0].ID)
}

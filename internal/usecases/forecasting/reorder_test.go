package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/internal/domain"
)

func TestReorderSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		volumes  []domain.ProductSalesVolume
		validate func(t *testing.T, got []domain.ReorderSuggestion)
	}{
		{
			name:    "estoque para sessenta dias",
			volumes: []domain.ProductSalesVolume{{ProductID: "a", ProductName: "Caneta", StockQuantity: 100, QuantitySold: 50}},
			validate: func(t *testing.T, got []domain.ReorderSuggestion) {
				assert.Empty(t, got)
			},
		},
		{
			name:    "sete dias e meio não entra",
			volumes: []domain.ProductSalesVolume{{ProductID: "b", ProductName: "Lápis", StockQuantity: 5, QuantitySold: 20}},
			validate: func(t *testing.T, got []domain.ReorderSuggestion) {
				assert.Empty(t, got)
			},
		},
		{
			name:    "produto sem vendas não é candidato",
			volumes: []domain.ProductSalesVolume{{ProductID: "c", ProductName: "Borracha", StockQuantity: 0, QuantitySold: 0}},
			validate: func(t *testing.T, got []domain.ReorderSuggestion) {
				assert.Empty(t, got)
			},
		},
		{
			name: "ordena pelo menor número de dias",
			volumes: []domain.ProductSalesVolume{
				{ProductID: "d", ProductName: "Caderno", StockQuantity: 10, QuantitySold: 60},
				{ProductID: "e", ProductName: "Mochila", StockQuantity: 0, QuantitySold: 3},
				{ProductID: "f", ProductName: "Régua", StockQuantity: 2, QuantitySold: 30},
			},
			validate: func(t *testing.T, got []domain.ReorderSuggestion) {
				require.Len(t, got, 3)
				assert.Equal(t, "Mochila", got[0].ProductName)
				assert.Equal(t, 0.0, got[0].DaysRemaining)
				assert.Equal(t, "Régua", got[1].ProductName)
				assert.Equal(t, 2.0, got[1].DaysRemaining)
				assert.Equal(t, "Caderno", got[2].ProductName)
				assert.Equal(t, 5.0, got[2].DaysRemaining)
				assert.Equal(t, 2.0, got[2].AverageDailySales)
				assert.True(t, got[2].NeedsReorder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ReorderSuggestions(tt.volumes, DefaultAverageDays, DefaultThresholdDays))
		})
	}
}

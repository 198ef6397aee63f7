package forecasting

import (
	"sort"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const (
	DefaultAverageDays   = 30
	DefaultThresholdDays = 7
)

// ReorderSuggestions devolve os produtos cujo estoque acaba em menos de
// thresholdDays mantida a média diária de vendas. A média divide sempre por
// averageDays, mesmo que o produto exista há menos tempo. Produtos sem venda
// não entram na lista.
func ReorderSuggestions(volumes []domain.ProductSalesVolume, averageDays, thresholdDays int) []domain.ReorderSuggestion {
	if averageDays <= 0 {
		averageDays = DefaultAverageDays
	}

	suggestions := make([]domain.ReorderSuggestion, 0)
	for _, v := range volumes {
		avg := float64(v.QuantitySold) / float64(averageDays)
		if avg <= 0 {
			continue
		}

		daysRemaining := float64(v.StockQuantity) / avg
		if daysRemaining >= float64(thresholdDays) {
			continue
		}

		suggestions = append(suggestions, domain.ReorderSuggestion{
			ProductID:         v.ProductID,
			ProductName:       v.ProductName,
			CurrentStock:      v.StockQuantity,
			AverageDailySales: avg,
			DaysRemaining:     daysRemaining,
			NeedsReorder:      true,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].DaysRemaining < suggestions[j].DaysRemaining
	})

	for i := range suggestions {
		suggestions[i].AverageDailySales = utils.RoundWithTwoDecimalPlace(suggestions[i].AverageDailySales)
		suggestions[i].DaysRemaining = utils.RoundWithTwoDecimalPlace(suggestions[i].DaysRemaining)
	}

	return suggestions
}

package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/utils"
)

const (
	dashboardRankSize  = 5
	dashboardTrendDays = 7
	stagnantStockLimit = 10
)

func (s *Service) Dashboard(ctx context.Context, companyID string) (*domain.Dashboard, error) {
	agg, err := s.saleRepo.Aggregate(ctx, companyID, nil, nil)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao agregar vendas")
	}

	products, err := s.productRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao listar produtos")
	}

	// Sem janela: interessa se o produto já vendeu alguma vez
	volumes, err := s.saleRepo.ProductVolumes(ctx, companyID, time.Time{})
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao agregar vendas por produto")
	}

	today := utils.StartOfDay(s.now())
	trendStart := today.AddDate(0, 0, -(dashboardTrendDays - 1))
	daily, err := s.saleRepo.DailyTotals(ctx, companyID, trendStart)
	if err != nil {
		return nil, databaseError(ctx, err, "Erro ao agregar vendas diárias")
	}

	goals, err := s.GoalProgress(ctx, companyID)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		TotalSales:       utils.RoundWithTwoDecimalPlace(agg.Total),
		SalesCount:       agg.Count,
		MostProfitable:   rankByMargin(products, true),
		LeastProfitable:  rankByMargin(products, false),
		StagnantProducts: stagnantProducts(products, volumes),
		LastWeekSales:    fillDays(daily, trendStart, dashboardTrendDays),
		Goals:            goals,
	}
	if agg.Count > 0 {
		dashboard.AverageTicket = utils.RoundWithTwoDecimalPlace(agg.Total / float64(agg.Count))
	}

	return dashboard, nil
}

func toMargin(p *domain.Product) domain.ProductMargin {
	return domain.ProductMargin{
		ProductID: p.ID,
		Name:      p.Name,
		Margin:    utils.RoundWithTwoDecimalPlace(p.Margin()),
		Stock:     p.StockQuantity,
	}
}

func rankByMargin(products []*domain.Product, descending bool) []domain.ProductMargin {
	sorted := make([]*domain.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Margin() > sorted[j].Margin()
		}
		return sorted[i].Margin() < sorted[j].Margin()
	})

	ranked := make([]domain.ProductMargin, 0, dashboardRankSize)
	for _, p := range sorted[:min(len(sorted), dashboardRankSize)] {
		ranked = append(ranked, toMargin(p))
	}
	return ranked
}

// stagnantProducts lista produtos com estoque baixo ou que nunca venderam
func stagnantProducts(products []*domain.Product, volumes []domain.ProductSalesVolume) []domain.ProductMargin {
	sold := make(map[string]int, len(volumes))
	for _, v := range volumes {
		sold[v.ProductID] = v.QuantitySold
	}

	stagnant := make([]domain.ProductMargin, 0, dashboardRankSize)
	for _, p := range products {
		if len(stagnant) == dashboardRankSize {
			break
		}
		if p.StockQuantity < stagnantStockLimit || sold[p.ID] == 0 {
			stagnant = append(stagnant, toMargin(p))
		}
	}
	return stagnant
}

// fillDays devolve um ponto por dia a partir de start, com zero nos dias sem venda
func fillDays(daily []domain.DailyTotal, start time.Time, days int) []domain.DailyTotal {
	byDay := make(map[string]float64, len(daily))
	for _, d := range daily {
		byDay[d.Date.Format(utils.DateLayout)] += d.Total
	}

	filled := make([]domain.DailyTotal, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		filled = append(filled, domain.DailyTotal{
			Date:  day,
			Total: utils.RoundWithTwoDecimalPlace(byDay[day.Format(utils.DateLayout)]),
		})
	}
	return filled
}

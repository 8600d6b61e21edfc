package output

import (
	"sort"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	EndingBalance decimal.Decimal
	TotalInterest decimal.Decimal
	RunnerUp      string
	Lead          decimal.Decimal // ending balance gap to the runner-up
}

// AnalyzeScenarios picks the scenario with the highest ending balance. Ties keep
// configuration order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Result.EndingBalance.GreaterThan(ranks[j].Result.EndingBalance)
	})
	best := ranks[0]
	rec := Recommendation{
		ScenarioName:  best.Name,
		EndingBalance: best.Result.EndingBalance,
		TotalInterest: best.Result.TotalInterest,
	}
	if len(ranks) > 1 {
		rec.RunnerUp = ranks[1].Name
		rec.Lead = best.Result.EndingBalance.Sub(ranks[1].Result.EndingBalance)
	}
	return rec
}

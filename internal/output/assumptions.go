package output

import "github.com/rpgo/compound-interest/internal/domain"

// DefaultAssumptions lists the modelling rules rendered when a comparison carries none.
var DefaultAssumptions = []string{
	"Annual contribution is added once per year, right after the first compounding step",
	"Reported amounts are rounded to whole units (ties away from zero); the running balance is not rounded",
	"Rates are nominal annual percentages split evenly across compounding periods",
}

// assumptionsFor returns the comparison's assumptions, falling back to the defaults.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}

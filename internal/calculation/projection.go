package calculation

import (
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
	money "github.com/rpgo/compound-interest/pkg/decimal"
)

// Project runs the year-by-year compound interest simulation.
//
// Each year the balance grows once per compounding period; the full annual
// contribution is added right after the first period's growth and compounds from the
// second period on. Interest is the residual balance - start - contribution.
//
// Reported amounts are rounded to whole units (ties away from zero) independently, while
// the unrounded balance carries into the next year. Summary totals come from the
// unrounded running totals and are rounded once.
//
// Project does not validate ranges: Years <= 0 yields an empty schedule and any rate is
// applied as given. It fails only for an unknown compounding frequency or when a value
// leaves the finite range and can no longer be reported.
func (pe *ProjectionEngine) Project(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	compounds, err := input.CompoundingFrequency.CompoundsPerYear()
	if err != nil {
		return nil, err
	}
	if err := checkFinite(input); err != nil {
		return nil, err
	}

	periodRate := (input.AnnualRatePercent / 100) / float64(compounds)
	growth := 1 + periodRate
	contribution := input.AnnualContribution

	balance := input.InitialInvestment
	cumulative := input.InitialInvestment

	yearly := make([]domain.YearRecord, 0, min(max(input.Years, 0), DefaultMaxYears))
	for year := 1; year <= input.Years; year++ {
		start := balance
		for i := 0; i < compounds; i++ {
			// explicit conversions keep each step individually rounded (no fused multiply-add)
			balance = float64(balance * growth)
			if i == 0 {
				balance = float64(balance + contribution)
			}
		}
		cumulative += contribution
		interest := balance - start - contribution

		if !money.IsFinite(balance) || !money.IsFinite(interest) || !money.IsFinite(cumulative) {
			return nil, &domain.ValidationError{
				Kind:    domain.InvalidNumber,
				Field:   "balance",
				Value:   balance,
				Message: fmt.Sprintf("overflowed during year %d", year),
			}
		}

		yearly = append(yearly, domain.YearRecord{
			Year:                    year,
			StartBalance:            money.RoundWhole(start),
			Contribution:            money.RoundWhole(contribution),
			Interest:                money.RoundWhole(interest),
			EndBalance:              money.RoundWhole(balance),
			CumulativeContributions: money.RoundWhole(cumulative),
			CumulativeInterest:      money.RoundWhole(balance - cumulative),
		})

		pe.Logger.Debugf("year %d: start=%.6f contribution=%.6f interest=%.6f end=%.6f", year, start, contribution, interest, balance)
	}

	return &domain.ProjectionResult{
		EndingBalance:      money.RoundWhole(balance),
		TotalContributions: money.RoundWhole(cumulative),
		TotalInterest:      money.RoundWhole(balance - cumulative),
		YearlyData:         yearly,
	}, nil
}

func checkFinite(input domain.ProjectionInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial_investment", input.InitialInvestment},
		{"annual_contribution", input.AnnualContribution},
		{"annual_rate_percent", input.AnnualRatePercent},
	}
	for _, f := range fields {
		if !money.IsFinite(f.value) {
			return &domain.ValidationError{Kind: domain.InvalidNumber, Field: f.name, Value: f.value, Message: "must be a finite number"}
		}
	}
	return nil
}

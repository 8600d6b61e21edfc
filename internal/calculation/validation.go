package calculation

import (
	"fmt"

	"github.com/rpgo/compound-interest/internal/domain"
)

// MinRatePercent is the lowest meaningful annual rate: -100% wipes the balance out.
const MinRatePercent = -100.0

// ValidateInput checks a projection input before any simulation work.
// Failures are *domain.ValidationError values, checked in this order: non-finite
// amounts, years, rate, compounding frequency.
func (pe *ProjectionEngine) ValidateInput(input domain.ProjectionInput) error {
	if err := checkFinite(input); err != nil {
		return err
	}

	maxYears := pe.MaxYears
	if maxYears <= 0 {
		maxYears = DefaultMaxYears
	}
	if input.Years < 1 {
		return &domain.ValidationError{Kind: domain.InvalidYears, Field: "years", Value: input.Years, Message: "must be at least 1"}
	}
	if input.Years > maxYears {
		return &domain.ValidationError{Kind: domain.InvalidYears, Field: "years", Value: input.Years, Message: fmt.Sprintf("must be at most %d", maxYears)}
	}

	if input.AnnualRatePercent < MinRatePercent {
		return &domain.ValidationError{Kind: domain.InvalidRate, Field: "annual_rate_percent", Value: input.AnnualRatePercent, Message: "must not be below -100"}
	}

	if _, err := input.CompoundingFrequency.CompoundsPerYear(); err != nil {
		return err
	}
	return nil
}

// ValidateInput validates with the default engine's limits.
func ValidateInput(input domain.ProjectionInput) error {
	return defaultEngine.ValidateInput(input)
}

package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CompoundingFrequency controls how many growth steps are applied per year.
type CompoundingFrequency string

const (
	Annually CompoundingFrequency = "annually"
	Monthly  CompoundingFrequency = "monthly"
)

// CompoundingFrequencies lists the supported frequencies in display order.
var CompoundingFrequencies = []CompoundingFrequency{Annually, Monthly}

// ParseCompoundingFrequency resolves a user-supplied name. Matching ignores case and
// surrounding whitespace; unknown names are an InvalidFrequency error, never a default.
func ParseCompoundingFrequency(s string) (CompoundingFrequency, error) {
	f := CompoundingFrequency(strings.ToLower(strings.TrimSpace(s)))
	if _, err := f.CompoundsPerYear(); err != nil {
		return "", err
	}
	return f, nil
}

// CompoundsPerYear returns 1 for Annually and 12 for Monthly.
func (f CompoundingFrequency) CompoundsPerYear() (int, error) {
	switch f {
	case Annually:
		return 1, nil
	case Monthly:
		return 12, nil
	default:
		return 0, &ValidationError{
			Kind:    InvalidFrequency,
			Field:   "compounding_frequency",
			Value:   string(f),
			Message: `must be "annually" or "monthly"`,
		}
	}
}

func (f CompoundingFrequency) String() string { return string(f) }

// UnmarshalText lets YAML and JSON decoding reject unknown frequencies.
func (f *CompoundingFrequency) UnmarshalText(text []byte) error {
	parsed, err := ParseCompoundingFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f CompoundingFrequency) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

// ProjectionInput is the parameter set for a single projection.
// Amounts are raw user-entered numbers; ValidateInput rejects non-finite values.
type ProjectionInput struct {
	InitialInvestment    float64              `yaml:"initial_investment" json:"initial_investment"`
	AnnualContribution   float64              `yaml:"annual_contribution" json:"annual_contribution"`
	AnnualRatePercent    float64              `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	Years                int                  `yaml:"years" json:"years"`
	CompoundingFrequency CompoundingFrequency `yaml:"compounding_frequency" json:"compounding_frequency"`
}

// DefaultProjectionInput returns the calculator's starting form values.
func DefaultProjectionInput() ProjectionInput {
	return ProjectionInput{
		InitialInvestment:    20000,
		AnnualContribution:   5000,
		AnnualRatePercent:    5,
		Years:                5,
		CompoundingFrequency: Annually,
	}
}

// YearRecord is one row of the yearly breakdown. Every amount is rounded to whole
// currency units independently of the others.
type YearRecord struct {
	Year                    int             `yaml:"year" json:"year"`
	StartBalance            decimal.Decimal `yaml:"start_balance" json:"start_balance"`
	Contribution            decimal.Decimal `yaml:"contribution" json:"contribution"`
	Interest                decimal.Decimal `yaml:"interest" json:"interest"`
	EndBalance              decimal.Decimal `yaml:"end_balance" json:"end_balance"`
	CumulativeContributions decimal.Decimal `yaml:"cumulative_contributions" json:"cumulative_contributions"`
	CumulativeInterest      decimal.Decimal `yaml:"cumulative_interest" json:"cumulative_interest"`
}

// RoundingDrift is EndBalance minus its rounded components. Independent rounding keeps
// it within [-1, 1].
func (yr YearRecord) RoundingDrift() decimal.Decimal {
	return yr.EndBalance.Sub(yr.StartBalance).Sub(yr.Contribution).Sub(yr.Interest)
}

// ProjectionResult holds the summary totals and the yearly breakdown.
type ProjectionResult struct {
	EndingBalance      decimal.Decimal `yaml:"ending_balance" json:"ending_balance"`
	TotalContributions decimal.Decimal `yaml:"total_contributions" json:"total_contributions"`
	TotalInterest      decimal.Decimal `yaml:"total_interest" json:"total_interest"`
	YearlyData         []YearRecord    `yaml:"yearly_data" json:"yearly_data"`
}

// FinalYear returns the last yearly record, or false for an empty projection.
func (r *ProjectionResult) FinalYear() (YearRecord, bool) {
	if len(r.YearlyData) == 0 {
		return YearRecord{}, false
	}
	return r.YearlyData[len(r.YearlyData)-1], true
}

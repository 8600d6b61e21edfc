package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectedYear struct {
	year, start, contribution, interest, end, cumContrib, cumInterest int64
}

func assertYears(t *testing.T, want []expectedYear, got []domain.YearRecord) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		g := got[i]
		assert.Equal(t, int(w.year), g.Year)
		assert.True(t, g.StartBalance.Equal(decimal.NewFromInt(w.start)), "year %d start: got %s want %d", w.year, g.StartBalance, w.start)
		assert.True(t, g.Contribution.Equal(decimal.NewFromInt(w.contribution)), "year %d contribution: got %s want %d", w.year, g.Contribution, w.contribution)
		assert.True(t, g.Interest.Equal(decimal.NewFromInt(w.interest)), "year %d interest: got %s want %d", w.year, g.Interest, w.interest)
		assert.True(t, g.EndBalance.Equal(decimal.NewFromInt(w.end)), "year %d end: got %s want %d", w.year, g.EndBalance, w.end)
		assert.True(t, g.CumulativeContributions.Equal(decimal.NewFromInt(w.cumContrib)), "year %d cumulative contributions: got %s want %d", w.year, g.CumulativeContributions, w.cumContrib)
		assert.True(t, g.CumulativeInterest.Equal(decimal.NewFromInt(w.cumInterest)), "year %d cumulative interest: got %s want %d", w.year, g.CumulativeInterest, w.cumInterest)
	}
}

func assertTotals(t *testing.T, r *domain.ProjectionResult, ending, contributions, interest int64) {
	t.Helper()
	assert.True(t, r.EndingBalance.Equal(decimal.NewFromInt(ending)), "ending balance: got %s want %d", r.EndingBalance, ending)
	assert.True(t, r.TotalContributions.Equal(decimal.NewFromInt(contributions)), "total contributions: got %s want %d", r.TotalContributions, contributions)
	assert.True(t, r.TotalInterest.Equal(decimal.NewFromInt(interest)), "total interest: got %s want %d", r.TotalInterest, interest)
}

// recompute runs the same loop with plain float64 and math.Round (ties away from zero)
// as an independent reference.
func recompute(in domain.ProjectionInput, compounds int) float64 {
	balance := in.InitialInvestment
	for y := 0; y < in.Years; y++ {
		for i := 0; i < compounds; i++ {
			balance = float64(balance * (1 + in.AnnualRatePercent/100/float64(compounds)))
			if i == 0 {
				balance = float64(balance + in.AnnualContribution)
			}
		}
	}
	return math.Round(balance)
}

func TestProject_DefaultFormScenario(t *testing.T) {
	in := domain.DefaultProjectionInput()
	r, err := Project(in)
	require.NoError(t, err)

	assertYears(t, []expectedYear{
		{1, 20000, 5000, 1000, 26000, 25000, 1000},
		{2, 26000, 5000, 1300, 32300, 30000, 2300},
		{3, 32300, 5000, 1615, 38915, 35000, 3915},
		{4, 38915, 5000, 1946, 45861, 40000, 5861},
		{5, 45861, 5000, 2293, 53154, 45000, 8154},
	}, r.YearlyData)
	assertTotals(t, r, 53154, 45000, 8154)
	assert.Equal(t, recompute(in, 1), r.EndingBalance.InexactFloat64())
}

func TestProject_DefaultFormScenarioMonthly(t *testing.T) {
	in := domain.DefaultProjectionInput()
	in.CompoundingFrequency = domain.Monthly
	r, err := Project(in)
	require.NoError(t, err)

	assertYears(t, []expectedYear{
		{1, 20000, 5000, 1257, 26257, 25000, 1257},
		{2, 26257, 5000, 1577, 32835, 30000, 2835},
		{3, 32835, 5000, 1914, 39748, 35000, 4748},
		{4, 39748, 5000, 2268, 47016, 40000, 7016},
		{5, 47016, 5000, 2639, 54656, 45000, 9656},
	}, r.YearlyData)
	assertTotals(t, r, 54656, 45000, 9656)
	assert.Equal(t, recompute(in, 12), r.EndingBalance.InexactFloat64())
}

func TestProject_OneYearMonthlyAddsContributionAtFirstStepOnly(t *testing.T) {
	in := domain.ProjectionInput{
		InitialInvestment:    12000,
		AnnualContribution:   1200,
		AnnualRatePercent:    12,
		Years:                1,
		CompoundingFrequency: domain.Monthly,
	}
	r, err := Project(in)
	require.NoError(t, err)

	// (12000 * 1.01 + 1200) * 1.01^11 = 14860.70
	assertYears(t, []expectedYear{{1, 12000, 1200, 1661, 14861, 13200, 1661}}, r.YearlyData)
	assertTotals(t, r, 14861, 13200, 1661)

	spreadEvenly := 12000 * math.Pow(1.01, 12)
	for m := 0; m < 12; m++ {
		spreadEvenly += 100 * math.Pow(1.01, float64(12-m))
	}
	assert.NotEqual(t, math.Round(spreadEvenly), r.EndingBalance.InexactFloat64())

	endOfYear := 12000*math.Pow(1.01, 12) + 1200
	assert.NotEqual(t, math.Round(endOfYear), r.EndingBalance.InexactFloat64())
}

func TestProject_ZeroYears(t *testing.T) {
	in := domain.DefaultProjectionInput()
	in.Years = 0
	r, err := Project(in)
	require.NoError(t, err)

	assert.NotNil(t, r.YearlyData)
	assert.Empty(t, r.YearlyData)
	assertTotals(t, r, 20000, 20000, 0)
}

func TestProject_NegativeYearsDegradesToEmptySchedule(t *testing.T) {
	in := domain.DefaultProjectionInput()
	in.Years = -3
	r, err := Project(in)
	require.NoError(t, err)
	assert.Empty(t, r.YearlyData)
	assertTotals(t, r, 20000, 20000, 0)
}

func TestProject_ZeroRate(t *testing.T) {
	for _, freq := range domain.CompoundingFrequencies {
		in := domain.ProjectionInput{InitialInvestment: 1500, AnnualContribution: 250.4, AnnualRatePercent: 0, Years: 7, CompoundingFrequency: freq}
		r, err := Project(in)
		require.NoError(t, err)

		for _, yr := range r.YearlyData {
			assert.True(t, yr.Interest.IsZero(), "%s year %d interest %s", freq, yr.Year, yr.Interest)
		}
		want := decimal.NewFromFloat(in.InitialInvestment + in.AnnualContribution*float64(in.Years))
		diff := r.EndingBalance.Sub(want).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(int64(in.Years))), "%s: ending %s want ~%s", freq, r.EndingBalance, want)
	}
}

func TestProject_ZeroContributionAnnualIsPureCompounding(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: 10000, AnnualRatePercent: 6, Years: 10, CompoundingFrequency: domain.Annually}
	r, err := Project(in)
	require.NoError(t, err)

	assertTotals(t, r, 17908, 10000, 7908)
	closedForm := 10000 * math.Pow(1.06, 10)
	assert.InDelta(t, closedForm, r.EndingBalance.InexactFloat64(), 1)
	for _, yr := range r.YearlyData {
		assert.True(t, yr.Contribution.IsZero())
		assert.True(t, yr.CumulativeContributions.Equal(decimal.NewFromInt(10000)))
	}
}

func TestProject_MinusHundredPercentWipesBalance(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: 10000, AnnualContribution: 1000, AnnualRatePercent: -100, Years: 2, CompoundingFrequency: domain.Annually}
	r, err := Project(in)
	require.NoError(t, err)

	assertYears(t, []expectedYear{
		{1, 10000, 1000, -10000, 1000, 11000, -10000},
		{2, 1000, 1000, -1000, 1000, 12000, -11000},
	}, r.YearlyData)
	assertTotals(t, r, 1000, 12000, -11000)
}

func TestProject_Properties(t *testing.T) {
	inputs := []domain.ProjectionInput{
		domain.DefaultProjectionInput(),
		{InitialInvestment: 1000, AnnualContribution: 100, AnnualRatePercent: 5, Years: 3, CompoundingFrequency: domain.Monthly},
		{InitialInvestment: 0, AnnualContribution: 6500, AnnualRatePercent: 7.25, Years: 40, CompoundingFrequency: domain.Monthly},
		{InitialInvestment: 123456.78, AnnualContribution: 0.5, AnnualRatePercent: 3.333, Years: 25, CompoundingFrequency: domain.Annually},
		{InitialInvestment: 999.99, AnnualContribution: 1234.56, AnnualRatePercent: 0.1, Years: 60, CompoundingFrequency: domain.Monthly},
	}
	one := decimal.NewFromInt(1)

	for _, in := range inputs {
		r, err := Project(in)
		require.NoError(t, err)
		require.Len(t, r.YearlyData, in.Years)

		last, ok := r.FinalYear()
		require.True(t, ok)
		assert.True(t, r.EndingBalance.Equal(last.EndBalance), "ending balance must equal final year's end balance")
		assert.True(t, r.TotalContributions.Equal(last.CumulativeContributions))
		assert.True(t, r.TotalInterest.Equal(last.CumulativeInterest))

		for i, yr := range r.YearlyData {
			assert.Equal(t, i+1, yr.Year)
			assert.True(t, yr.RoundingDrift().Abs().LessThanOrEqual(one), "year %d drift %s", yr.Year, yr.RoundingDrift())
			if i > 0 {
				prev := r.YearlyData[i-1]
				assert.True(t, yr.EndBalance.GreaterThanOrEqual(prev.EndBalance), "end balance decreased in year %d", yr.Year)
				assert.True(t, yr.CumulativeContributions.GreaterThanOrEqual(prev.CumulativeContributions), "cumulative contributions decreased in year %d", yr.Year)
			}
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: 3141.59, AnnualContribution: 271.82, AnnualRatePercent: 6.02, Years: 30, CompoundingFrequency: domain.Monthly}
	first, err := Project(in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Project(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProject_UnknownFrequencyFails(t *testing.T) {
	in := domain.DefaultProjectionInput()
	in.CompoundingFrequency = "weekly"
	r, err := Project(in)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)

	in.CompoundingFrequency = ""
	_, err = Project(in)
	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestProject_NonFiniteInputFails(t *testing.T) {
	in := domain.DefaultProjectionInput()
	in.AnnualContribution = math.NaN()
	_, err := Project(in)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestProject_OverflowFails(t *testing.T) {
	in := domain.ProjectionInput{InitialInvestment: 1e300, AnnualRatePercent: 1e10, Years: 5, CompoundingFrequency: domain.Annually}
	r, err := Project(in)
	assert.Nil(t, r)
	require.ErrorIs(t, err, domain.ErrInvalidNumber)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "balance", ve.Field)
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/compound-interest/internal/domain"
)

// ConsoleFormatter prints the results summary and the yearly breakdown table per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "COMPOUND INTEREST PROJECTION")
	fmt.Fprintln(&buf, "================================")

	for _, sc := range sortedScenarios(results) {
		in := sc.Input
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s\n", sc.Name)
		fmt.Fprintf(&buf, "  Initial %s, contributing %s per year at %s compounded %s for %d years\n",
			FormatCurrency(decimalFromFloat(in.InitialInvestment)),
			FormatCurrency(decimalFromFloat(in.AnnualContribution)),
			FormatPercentage(decimalFromFloat(in.AnnualRatePercent)),
			in.CompoundingFrequency, in.Years)
		fmt.Fprintf(&buf, "  Ending Balance:      %s\n", FormatCurrency(sc.Result.EndingBalance))
		fmt.Fprintf(&buf, "  Total Contributions: %s\n", FormatCurrency(sc.Result.TotalContributions))
		fmt.Fprintf(&buf, "  Total Interest:      %s\n", FormatCurrency(sc.Result.TotalInterest))

		if len(sc.Result.YearlyData) == 0 {
			continue
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "  %-6s %16s %14s %14s %16s\n", "Year", "Starting Balance", "Contribution", "Interest", "Ending Balance")
		fmt.Fprintf(&buf, "  %s\n", strings.Repeat("-", 70))
		for _, yr := range sc.Result.YearlyData {
			fmt.Fprintf(&buf, "  %-6d %16s %14s %14s %16s\n",
				yr.Year,
				FormatCurrency(yr.StartBalance),
				FormatCurrency(yr.Contribution),
				FormatCurrency(yr.Interest),
				FormatCurrency(yr.EndBalance))
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (ending balance %s, %s ahead of %s)\n",
			rec.ScenarioName, FormatCurrency(rec.EndingBalance), FormatCurrency(rec.Lead), rec.RunnerUp)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}

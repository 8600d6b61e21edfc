package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/compound-interest/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "InitialInvestment", "AnnualContribution", "AnnualRatePercent", "Years", "CompoundingFrequency", "EndingBalance", "TotalContributions", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		row := []string{
			sc.Name,
			floatToString(sc.Input.InitialInvestment),
			floatToString(sc.Input.AnnualContribution),
			floatToString(sc.Input.AnnualRatePercent),
			intToString(sc.Input.Years),
			sc.Input.CompoundingFrequency.String(),
			sc.Result.EndingBalance.StringFixed(0),
			sc.Result.TotalContributions.StringFixed(0),
			sc.Result.TotalInterest.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/compound-interest/internal/domain"
)

// CSVDetailedExporter writes the yearly breakdown, one row per scenario and year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "StartBalance", "Contribution", "Interest", "EndBalance", "CumulativeContributions", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for _, yr := range sc.Result.YearlyData {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				yr.StartBalance.StringFixed(0),
				yr.Contribution.StringFixed(0),
				yr.Interest.StringFixed(0),
				yr.EndBalance.StringFixed(0),
				yr.CumulativeContributions.StringFixed(0),
				yr.CumulativeInterest.StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

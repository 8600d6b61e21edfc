package output

import (
	"encoding/json"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartSeries is one stacked bar series: a value per projected year.
type ChartSeries struct {
	Key   string            `json:"key"`
	Label string            `json:"label"`
	Color string            `json:"color"`
	Stack string            `json:"stack"`
	Data  []decimal.Decimal `json:"data"`
}

// ScenarioChart carries the stacked bar data for one scenario.
type ScenarioChart struct {
	Name   string        `json:"name"`
	Years  []int         `json:"years"`
	Series []ChartSeries `json:"series"`
}

// ChartSeriesFormatter exports the three stacked series a front-end draws per year:
// starting balance, that year's contribution and that year's interest.
type ChartSeriesFormatter struct{}

func (c ChartSeriesFormatter) Name() string      { return "chart-json" }
func (c ChartSeriesFormatter) Extension() string { return "json" }

func (c ChartSeriesFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	charts := make([]ScenarioChart, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		charts = append(charts, BuildScenarioChart(sc))
	}
	return json.MarshalIndent(struct {
		Scenarios []ScenarioChart `json:"scenarios"`
	}{charts}, "", "  ")
}

// BuildScenarioChart splits a scenario's yearly data into stacked series.
func BuildScenarioChart(sc domain.ScenarioSummary) ScenarioChart {
	n := len(sc.Result.YearlyData)
	chart := ScenarioChart{
		Name:  sc.Name,
		Years: make([]int, 0, n),
		Series: []ChartSeries{
			{Key: "startBalance", Label: "Principal", Color: "#4A4A4A", Stack: "a", Data: make([]decimal.Decimal, 0, n)},
			{Key: "contribution", Label: "Contributions", Color: "#6B8EB8", Stack: "a", Data: make([]decimal.Decimal, 0, n)},
			{Key: "interest", Label: "Interest", Color: "#B86B6B", Stack: "a", Data: make([]decimal.Decimal, 0, n)},
		},
	}
	for _, yr := range sc.Result.YearlyData {
		chart.Years = append(chart.Years, yr.Year)
		chart.Series[0].Data = append(chart.Series[0].Data, yr.StartBalance)
		chart.Series[1].Data = append(chart.Series[1].Data, yr.Contribution)
		chart.Series[2].Data = append(chart.Series[2].Data, yr.Interest)
	}
	return chart
}

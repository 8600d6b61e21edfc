package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/compound-interest/internal/domain"
)

func newCalculateCmd(a *app) *cobra.Command {
	defaults := domain.DefaultProjectionInput()
	var (
		input     = defaults
		frequency string
		name      string
		format    string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project a single investment from flags",
		Example: `  compound calculate
  compound calculate --initial 12000 --contribution 1200 --rate 12 --years 1 --frequency monthly
  compound calculate --format detailed-csv --output-dir ./reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := domain.ParseCompoundingFrequency(frequency)
			if err != nil {
				return err
			}
			input.CompoundingFrequency = freq

			cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: name, Input: input}}}
			results, err := a.engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return emit(cmd, results, format, outputDir)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&input.InitialInvestment, "initial", defaults.InitialInvestment, "initial investment")
	f.Float64Var(&input.AnnualContribution, "contribution", defaults.AnnualContribution, "contribution added once per year")
	f.Float64Var(&input.AnnualRatePercent, "rate", defaults.AnnualRatePercent, "nominal annual interest rate in percent (>= -100)")
	f.IntVar(&input.Years, "years", defaults.Years, "number of years to project (1-1000)")
	f.StringVar(&frequency, "frequency", defaults.CompoundingFrequency.String(), "compounding frequency: annually or monthly")
	f.StringVar(&name, "name", "Projection", "scenario name shown in reports")
	f.StringVarP(&format, "format", "f", "console", "output format (see 'compound formats')")
	f.StringVarP(&outputDir, "output-dir", "o", "", "write a timestamped report file into this directory instead of stdout")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
)

// exampleConfiguration pairs the default inputs under both compounding frequencies.
func exampleConfiguration() *domain.Configuration {
	annual := domain.DefaultProjectionInput()
	monthly := annual
	monthly.CompoundingFrequency = domain.Monthly
	return &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Annual compounding", Input: annual},
		{Name: "Monthly compounding", Input: monthly},
	}}
}

func newExampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Print or write an example scenario configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := exampleConfiguration()
			if len(args) == 1 {
				if err := output.SaveConfiguration(cfg, args[0]); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			return writeAll(cmd.OutOrStdout(), data)
		},
	}
}

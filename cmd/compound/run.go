package main

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/compound-interest/internal/config"
)

func newRunCmd(a *app) *cobra.Command {
	var format, outputDir string

	cmd := &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run every scenario in a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			parser.Validate = a.engine.ValidateInput
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.log.Info().Str("config", args[0]).Int("scenarios", len(cfg.Scenarios)).Msg("loaded configuration")

			results, err := a.engine.RunScenarios(cfg)
			if err != nil {
				return err
			}
			return emit(cmd, results, format, outputDir)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format, or \"all\" with --output-dir")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write timestamped report files into this directory")
	return cmd
}

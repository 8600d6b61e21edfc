package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/domain"
	"github.com/rpgo/compound-interest/internal/output"
	"github.com/rpgo/compound-interest/pkg/logger"
)

// app carries the state shared by every subcommand.
type app struct {
	logLevel  string
	prettyLog bool

	log    zerolog.Logger
	engine *calculation.ProjectionEngine
}

func newRootCmd() *cobra.Command {
	a := &app{engine: calculation.NewProjectionEngine()}

	root := &cobra.Command{
		Use:           "compound",
		Short:         "Compound interest projection calculator",
		Long:          "Project the growth of an initial investment with a fixed yearly contribution, compounded annually or monthly.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.New(logger.Config{
				Level:  a.logLevel,
				Pretty: a.prettyLog,
				Out:    cmd.ErrOrStderr(),
			})
			a.engine.SetLogger(logger.NewEngineLogger(a.log))
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error, disabled")
	root.PersistentFlags().BoolVar(&a.prettyLog, "pretty-log", false, "human-readable console logs")

	root.AddCommand(
		newCalculateCmd(a),
		newRunCmd(a),
		newExampleConfigCmd(),
		newFormatsCmd(),
		newServeCmd(a),
	)
	return root
}

// emit renders results to stdout, or writes report files when dir is set.
func emit(cmd *cobra.Command, results *domain.ScenarioComparison, format, dir string) error {
	if dir != "" {
		files, err := output.GenerateReport(results, format, dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", f)
		}
		return nil
	}
	if output.NormalizeFormatName(format) == "all" {
		return fmt.Errorf("format \"all\" requires --output-dir")
	}
	data, err := output.Render(results, format)
	if err != nil {
		return err
	}
	return writeAll(cmd.OutOrStdout(), data)
}

func writeAll(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

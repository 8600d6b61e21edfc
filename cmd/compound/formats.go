package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/compound-interest/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

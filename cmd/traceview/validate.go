package main

import (
	"github.com/spf13/cobra"

	"github.com/eumech/traceview/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a trace file without drawing it",
	Long:  `Loads and validates the trace document, reporting the state count or the first problem found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.Options{}
		opts.TracePath, _ = cmd.Flags().GetString("trace")
		cmd.SilenceUsage = true
		return cli.Validate(opts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eumech/traceview"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of traceview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("traceview version %s\n", traceview.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

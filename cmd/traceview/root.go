package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traceview",
	Short: "Traceview replays EuMech engine traces with turtle-style drawing",
	Long: `Traceview loads a JSON trace produced by the EuMech simulation engine and
replays the recorded path: in a window, as a PNG image, or as an animated
ASCII rendering in the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("trace", "t", "", "Path to the EuMech trace JSON file")
	rootCmd.PersistentFlags().String("style", "", "Path to an optional YAML style file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

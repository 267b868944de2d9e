package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eumech/traceview/internal/cli"
)

// asciiCmd represents the ascii command
var asciiCmd = &cobra.Command{
	Use:   "ascii",
	Short: "Replay a trace as characters in the terminal",
	Long: `Animates the recorded path as an ASCII rendering sized to the current
terminal. No display required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.Options{}
		opts.TracePath, _ = cmd.Flags().GetString("trace")
		opts.StylePath, _ = cmd.Flags().GetString("style")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Scale, _ = cmd.Flags().GetFloat64("scale")
		opts.PenSize = 1
		opts.DotEvery, _ = cmd.Flags().GetInt("dot-every")
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
		opts.Static, _ = cmd.Flags().GetBool("static")
		opts.Skip, _ = cmd.Flags().GetInt("skip")
		opts.MaxWidth, _ = cmd.Flags().GetInt("max-width")
		opts.MaxHeight, _ = cmd.Flags().GetInt("max-height")
		cmd.SilenceUsage = true
		return cli.Ascii(opts)
	},
}

func init() {
	rootCmd.AddCommand(asciiCmd)

	asciiCmd.Flags().Float64P("scale", "s", 1.0, "Coordinate multiplier applied before drawing")
	asciiCmd.Flags().DurationP("delay", "d", 50*time.Millisecond, "Delay between animation frames")
	asciiCmd.Flags().Bool("static", false, "Render the final result only")
	asciiCmd.Flags().Int("skip", 1, "Plot only every Nth state")
	asciiCmd.Flags().Int("dot-every", 0, "Stamp a marker every N steps (0 = never)")
	asciiCmd.Flags().Int("max-width", 80, "Maximum grid width")
	asciiCmd.Flags().Int("max-height", 24, "Maximum grid height")
}

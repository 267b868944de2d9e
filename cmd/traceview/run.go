package main

import (
	"github.com/spf13/cobra"

	"github.com/eumech/traceview/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a trace in a window",
	Long: `Opens a window and replays the recorded path with turtle-style line
drawing. The window stays open after the replay completes until you close it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.Options{}
		opts.TracePath, _ = cmd.Flags().GetString("trace")
		opts.StylePath, _ = cmd.Flags().GetString("style")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Scale, _ = cmd.Flags().GetFloat64("scale")
		opts.Speed, _ = cmd.Flags().GetInt("speed")
		opts.PenSize, _ = cmd.Flags().GetInt("pen-size")
		opts.DotEvery, _ = cmd.Flags().GetInt("dot-every")
		opts.Width, _ = cmd.Flags().GetInt("width")
		opts.Height, _ = cmd.Flags().GetInt("height")
		cmd.SilenceUsage = true
		return cli.Run(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64P("scale", "s", 1.0, "Coordinate multiplier applied before drawing")
	runCmd.Flags().Int("speed", 0, "Animation speed 0-10 (0 = fastest, no delay)")
	runCmd.Flags().Int("pen-size", 1, "Line width in pixels")
	runCmd.Flags().Int("dot-every", 0, "Stamp a marker dot every N steps (0 = never)")
	runCmd.Flags().Int("width", 800, "Window width")
	runCmd.Flags().Int("height", 600, "Window height")

	// Replaying is what the bare binary does.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/eumech/traceview/internal/cli"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Replay a trace offscreen and write a PNG",
	Long: `Replays the trace without opening a window and writes the result as a PNG
image, centered on the path's bounding box. Useful on headless machines and
in CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.Options{}
		opts.TracePath, _ = cmd.Flags().GetString("trace")
		opts.StylePath, _ = cmd.Flags().GetString("style")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Scale, _ = cmd.Flags().GetFloat64("scale")
		opts.PenSize, _ = cmd.Flags().GetInt("pen-size")
		opts.DotEvery, _ = cmd.Flags().GetInt("dot-every")
		opts.Width, _ = cmd.Flags().GetInt("width")
		opts.Height, _ = cmd.Flags().GetInt("height")
		opts.OutPath, _ = cmd.Flags().GetString("out")
		cmd.SilenceUsage = true
		return cli.Render(opts)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "trace.png", "Output PNG path")
	renderCmd.Flags().Float64P("scale", "s", 1.0, "Coordinate multiplier applied before drawing")
	renderCmd.Flags().Int("pen-size", 1, "Line width in pixels")
	renderCmd.Flags().Int("dot-every", 0, "Stamp a marker dot every N steps (0 = never)")
	renderCmd.Flags().Int("width", 1024, "Image width")
	renderCmd.Flags().Int("height", 768, "Image height")
}

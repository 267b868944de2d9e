// Package cli implements the command logic behind the traceview binary:
// flag validation, trace and style loading, and dispatch into the viewer,
// renderer and terminal adapters.
package cli

import "time"

// Options carries the configuration for the viewer commands. Each command
// reads the subset it cares about.
type Options struct {
	TracePath string
	Scale     float64
	Speed     int
	PenSize   int
	DotEvery  int
	StylePath string
	Debug     bool

	// Window and offscreen dimensions.
	Width  int
	Height int

	// Offscreen render target.
	OutPath string

	// Terminal mode.
	Delay     time.Duration
	Static    bool
	Skip      int
	MaxWidth  int
	MaxHeight int
}

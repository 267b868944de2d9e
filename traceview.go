package traceview

import (
	"context"

	"github.com/eumech/traceview/pkg/replay"
	"github.com/eumech/traceview/pkg/trace"
)

// Version is the traceview release version.
const Version = "0.3.1"

// Load reads and normalizes a trace document from disk. See trace.Load.
func Load(path string) (*trace.Trace, error) {
	return trace.Load(path)
}

// Parse decodes an in-memory trace document. See trace.Parse.
func Parse(data []byte) (*trace.Trace, error) {
	return trace.Parse(data)
}

// Replay drives canvas through the states of tr with the given options.
func Replay(ctx context.Context, tr *trace.Trace, canvas replay.Canvas, opts ...replay.Option) error {
	return replay.New(tr.States, opts...).Run(ctx, canvas)
}

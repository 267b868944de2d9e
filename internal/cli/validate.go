package cli

import (
	"fmt"

	"github.com/eumech/traceview/pkg/trace"
)

// Validate loads a trace without drawing it and prints a short summary.
func Validate(opts Options) error {
	if opts.TracePath == "" {
		return fmt.Errorf("a trace file is required (--trace)")
	}

	tr, err := trace.Load(opts.TracePath)
	if err != nil {
		return err
	}

	if tr.Engine != "" {
		fmt.Printf("trace is valid: %d states (engine %q, version %q)\n", len(tr.States), tr.Engine, tr.Version)
	} else {
		fmt.Printf("trace is valid: %d states\n", len(tr.States))
	}
	return nil
}

/*
Package traceview replays EuMech engine traces with turtle-style line drawing.

A trace is a JSON document recorded by the external EuMech simulation engine:
an ordered sequence of states, each with a step label and a coordinate
vector. Traceview consumes such documents and replays the recorded path onto
a drawing canvas. It never produces traces.

# Concept

The replay contract is deliberately small: parse, normalize, iterate, draw.
The cursor starts pen-up at the first state's scaled position; every later
state is a pen-down move tracing a line; optionally a marker dot is stamped
at a fixed interval of steps. Drawing strictly follows document order; the
step labels are informational.

Rasterization sits behind the replay.Canvas port, so the same replay drives
a GPU-backed window, an offscreen PNG, a terminal grid, or an in-memory
recorder.

# Usage

	tr, err := traceview.Load("trace.json")
	if err != nil {
		log.Fatal(err)
	}

	rec := replay.NewRecorder()
	err = traceview.Replay(context.Background(), tr, rec,
		replay.WithScale(2.0),
		replay.WithDotEvery(10),
	)

The traceview binary under cmd/traceview wraps the same pieces as a CLI.
*/
package traceview

package retrace

import (
	"fmt"
	"io"
)

// SearchPosition describes where the engine stands at the moment a
// branch is abandoned: the states still on the current path and the
// states proven to be dead ends so far.
type SearchPosition interface {
	Path() []State
	DeadEnds() []Identifier
}

// Tracer receives the engine's position after every backtrack.
type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nPath:\n")
	for _, s := range p.Path() {
		fmt.Fprintf(t.Writer, "- %s\n", s.Identifier())
	}
	fmt.Fprintf(t.Writer, "Dead ends:\n")
	for _, id := range p.DeadEnds() {
		fmt.Fprintf(t.Writer, "- %s\n", id)
	}
}

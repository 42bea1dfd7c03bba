package solver

import (
	"fmt"
	"io"
	"os"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

// Solver drives an explicit-stack depth-first search with dead-end
// memoization. A Solver is stateless between calls: each call to
// Solve owns its own attempt stack and dead-end set, so independent
// calls may run concurrently.
type Solver struct {
	verbosity retrace.Verbosity
	out       io.Writer
	tracer    retrace.Tracer
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

// WithVerbosity selects the diagnostic level. The default is Quiet.
func WithVerbosity(v retrace.Verbosity) Option {
	return func(s *Solver) error {
		if v < retrace.Quiet || v > retrace.Trace {
			return fmt.Errorf("invalid verbosity %q", v)
		}
		s.verbosity = v
		return nil
	}
}

// WithOutput sets the sink for diagnostic output. The default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Solver) error {
		if w == nil {
			return fmt.Errorf("output writer must not be nil")
		}
		s.out = w
		return nil
	}
}

func WithTracer(t retrace.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.out == nil {
			s.out = os.Stdout
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = retrace.DefaultTracer{}
		}
		return nil
	},
}

package retrace

import (
	"fmt"
	"strings"
)

// Identifier values uniquely identify particular States within
// the input to a single call to Solve. They double as the
// human-readable label used in diagnostic output, so two states
// with equal Identifiers are fungible: the engine treats a visit
// to one as a visit to the other.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// IdentifierFromString returns an Identifier based on a provided
// string.
func IdentifierFromString(s string) Identifier {
	return Identifier(s)
}

// State values are the basic unit of problems and solutions
// understood by this package. A State is one node of the search
// graph; the engine makes no assumption about its size, shape, or
// domain meaning beyond these three operations.
type State interface {
	// Identifier returns the Identifier that uniquely identifies
	// this State among all other States in a given problem.
	Identifier() Identifier
	// Terminal reports whether this State satisfies the stopping
	// predicate. Search ends upon the first terminal state found.
	Terminal() bool
	// Successors returns the states reachable in one step, in the
	// consumer's chosen order. It may return no successors; a
	// consumer wanting a search budget encodes it here. The engine
	// pops candidates from the end of the returned slice, so the
	// last successor's branch is explored first.
	Successors() []State
}

// Verbosity selects how much diagnostic output Solve produces. It
// never affects the search result.
type Verbosity int

const (
	Quiet Verbosity = iota
	Info
	Trace
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Info:
		return "info"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("verbosity(%d)", int(v))
}

// ParseVerbosity returns the Verbosity named by s.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return Quiet, nil
	case "info":
		return Info, nil
	case "trace":
		return Trace, nil
	}
	return Quiet, fmt.Errorf("unknown verbosity level %q (expected quiet, info or trace)", s)
}

// SpaceExhausted is an error reporting that every state reachable
// from the initial state was explored without finding a terminal
// state. It is a recoverable signal meaning "no path exists under
// the given successor rule", not an engine failure.
type SpaceExhausted struct {
	// Initial identifies the state the search started from.
	Initial Identifier
	// Expanded is the number of distinct states whose successors
	// were generated before the space ran out.
	Expanded int
}

func (e SpaceExhausted) Error() string {
	const msg = "no chain of states leads to a terminal state; all possibilities exhausted"
	if e.Initial == "" {
		return msg
	}
	return fmt.Sprintf("%s (started from %s, expanded %d states)", msg, e.Initial, e.Expanded)
}

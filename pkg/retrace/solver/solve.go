package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

// attempt is one frame of the search: a state that has been entered
// plus the successors of that state not yet tried. pending shrinks
// as candidates are popped from its end; when it runs out the
// attempt is abandoned and its state becomes a dead end.
type attempt struct {
	state   retrace.State
	pending []retrace.State
}

// position is the SearchPosition snapshot handed to the tracer.
type position struct {
	path     []retrace.State
	deadEnds []retrace.Identifier
}

func (p position) Path() []retrace.State {
	return p.path
}

func (p position) DeadEnds() []retrace.Identifier {
	return p.deadEnds
}

// Solve searches for a sequence of states from initial to any
// terminal state and returns it in root-to-terminal order. The
// first terminal state found wins; the result is the first
// successful depth-first path, not a shortest one. If the entire
// reachable space is explored without finding a terminal state,
// a retrace.SpaceExhausted error is returned.
//
// Candidates are popped from the end of each state's Successors
// slice, so the last successor's branch is explored first. This
// tie-break is a hard contract: it decides which path is returned
// when several exist.
func (s *Solver) Solve(initial retrace.State) ([]retrace.State, error) {
	if initial.Terminal() {
		return []retrace.State{initial}, nil
	}

	// The live attempts form the current path from the initial
	// state to the search frontier.
	attempts := []attempt{{
		state:   initial,
		pending: initial.Successors(),
	}}
	// States fully explored with no terminal reachable; never
	// re-entered, even via a different path prefix.
	deadEnds := map[retrace.Identifier]struct{}{}
	expanded := 1

	for len(attempts) > 0 {
		top := &attempts[len(attempts)-1]

		if len(top.pending) == 0 {
			// No successors left to try at this depth; abandon the
			// state and back up to its parent.
			abandoned := top.state
			attempts = attempts[:len(attempts)-1]
			deadEnds[abandoned.Identifier()] = struct{}{}
			if s.verbosity >= retrace.Info {
				fmt.Fprintf(s.out, "backtracking from %s\n", abandoned.Identifier())
			}
			if s.verbosity >= retrace.Trace {
				fmt.Fprintf(s.out, "  known dead ends: %s\n", joinSorted(deadEnds))
			}
			s.tracer.Trace(snapshot(attempts, deadEnds))
			continue
		}

		candidate := top.pending[len(top.pending)-1]
		top.pending = top.pending[:len(top.pending)-1]

		if s.verbosity >= retrace.Trace {
			fmt.Fprintf(s.out, "going to evaluate successors of %s\n", candidate.Identifier())
		}

		if candidate.Terminal() {
			attempts = append(attempts, attempt{state: candidate})
			path := make([]retrace.State, len(attempts))
			for i := range attempts {
				path[i] = attempts[i].state
			}
			return path, nil
		}

		if onPath(attempts, candidate) || isDeadEnd(deadEnds, candidate) {
			// Either being explored on the current path already, or
			// proven to lead nowhere. Never re-entered.
			if s.verbosity >= retrace.Trace {
				fmt.Fprintf(s.out, "%s has been tried before, not considering it\n", candidate.Identifier())
			}
			continue
		}

		attempts = append(attempts, attempt{
			state:   candidate,
			pending: candidate.Successors(),
		})
		expanded++
	}

	return nil, retrace.SpaceExhausted{Initial: initial.Identifier(), Expanded: expanded}
}

func onPath(attempts []attempt, candidate retrace.State) bool {
	for i := range attempts {
		if attempts[i].state.Identifier() == candidate.Identifier() {
			return true
		}
	}
	return false
}

func isDeadEnd(deadEnds map[retrace.Identifier]struct{}, candidate retrace.State) bool {
	_, ok := deadEnds[candidate.Identifier()]
	return ok
}

func snapshot(attempts []attempt, deadEnds map[retrace.Identifier]struct{}) retrace.SearchPosition {
	p := position{
		path:     make([]retrace.State, len(attempts)),
		deadEnds: sortedIdentifiers(deadEnds),
	}
	for i := range attempts {
		p.path[i] = attempts[i].state
	}
	return p
}

func sortedIdentifiers(deadEnds map[retrace.Identifier]struct{}) []retrace.Identifier {
	ids := make([]retrace.Identifier, 0, len(deadEnds))
	for id := range deadEnds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

func joinSorted(deadEnds map[retrace.Identifier]struct{}) string {
	ids := sortedIdentifiers(deadEnds)
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	return strings.Join(ss, ", ")
}

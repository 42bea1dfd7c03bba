package input

import (
	"github.com/retrace-framework/retrace/pkg/retrace"
)

var _ retrace.State = &SimpleState{}

// SimpleState is a State with an explicit successor list. It is a
// convenience for consumers and tests that want to describe a search
// graph directly instead of defining a new state type.
type SimpleState struct {
	id         retrace.Identifier
	terminal   bool
	successors []retrace.State
}

func (s *SimpleState) Identifier() retrace.Identifier {
	return s.id
}

func (s *SimpleState) Terminal() bool {
	return s.terminal
}

func (s *SimpleState) Successors() []retrace.State {
	return s.successors
}

// AddSuccessor appends a successor; later additions are explored
// first by the engine.
func (s *SimpleState) AddSuccessor(successor retrace.State) {
	s.successors = append(s.successors, successor)
}

func NewSimpleState(id retrace.Identifier, successors ...retrace.State) *SimpleState {
	return &SimpleState{
		id:         id,
		successors: successors,
	}
}

// NewTerminalState returns a SimpleState that satisfies the stopping
// predicate.
func NewTerminalState(id retrace.Identifier) *SimpleState {
	return &SimpleState{
		id:       id,
		terminal: true,
	}
}

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

func TestSimpleState(t *testing.T) {
	goal := NewTerminalState("goal")
	start := NewSimpleState("start", goal)

	assert.Equal(t, retrace.Identifier("start"), start.Identifier())
	assert.False(t, start.Terminal())
	assert.True(t, goal.Terminal())
	assert.Empty(t, goal.Successors())

	other := NewSimpleState("other")
	start.AddSuccessor(other)
	successors := start.Successors()
	assert.Len(t, successors, 2)
	assert.Equal(t, retrace.Identifier("goal"), successors[0].Identifier())
	assert.Equal(t, retrace.Identifier("other"), successors[1].Identifier())
}

package retrace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeState struct {
	id Identifier
}

func (s fakeState) Identifier() Identifier { return s.id }
func (s fakeState) Terminal() bool         { return false }
func (s fakeState) Successors() []State    { return nil }

type fakePosition struct {
	path     []State
	deadEnds []Identifier
}

func (p fakePosition) Path() []State          { return p.path }
func (p fakePosition) DeadEnds() []Identifier { return p.deadEnds }

func TestLoggingTracer(t *testing.T) {
	var out bytes.Buffer
	tracer := LoggingTracer{Writer: &out}
	tracer.Trace(fakePosition{
		path:     []State{fakeState{id: "a"}, fakeState{id: "b"}},
		deadEnds: []Identifier{"c", "d"},
	})

	assert.Equal(t, "---\nPath:\n- a\n- b\nDead ends:\n- c\n- d\n", out.String())
}

func TestDefaultTracerIsSilent(t *testing.T) {
	assert.NotPanics(t, func() {
		DefaultTracer{}.Trace(fakePosition{})
	})
}

package counter

import (
	"strconv"

	"github.com/retrace-framework/retrace/pkg/retrace"
)

var _ retrace.State = Counter{}
var _ retrace.State = JumpingCounter{}

// Counter counts up by one until it reaches its target. The state
// space is a single unbranched chain, so the search degenerates to
// walking it.
type Counter struct {
	Value  int
	Target int
}

func (c Counter) Identifier() retrace.Identifier {
	return retrace.Identifier(strconv.Itoa(c.Value))
}

func (c Counter) Terminal() bool {
	return c.Value == c.Target
}

func (c Counter) Successors() []retrace.State {
	return []retrace.State{Counter{Value: c.Value + 1, Target: c.Target}}
}

// JumpingCounter counts up by one or two until it reaches its
// target. Values outside [0, Limit] produce no successors; without
// that bound, a search that misses the target would count up
// forever.
type JumpingCounter struct {
	Value  int
	Target int
	Limit  int
}

func (c JumpingCounter) Identifier() retrace.Identifier {
	return retrace.Identifier(strconv.Itoa(c.Value))
}

func (c JumpingCounter) Terminal() bool {
	return c.Value == c.Target
}

func (c JumpingCounter) Successors() []retrace.State {
	if c.Value < 0 || c.Value > c.Limit {
		return nil
	}
	return []retrace.State{
		JumpingCounter{Value: c.Value + 1, Target: c.Target, Limit: c.Limit},
		JumpingCounter{Value: c.Value + 2, Target: c.Target, Limit: c.Limit},
	}
}

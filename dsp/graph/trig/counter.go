package trig

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// CounterDir selects how the counter advances through [min, max].
type CounterDir int

const (
	// CounterUp counts upward and wraps from max to min.
	CounterUp CounterDir = iota
	// CounterDown counts downward and wraps from min to max.
	CounterDown
	// CounterUpDown bounces between the bounds, turning exactly at min
	// and max.
	CounterUpDown
)

// Counter emits an integer count advanced on every trigger.
type Counter struct {
	graph.Stream

	input graph.SignalSource
	min   int
	max   int
	dir   CounterDir

	next      int
	direction int
	value     float64
}

// NewCounter creates a triggered counter over [0, 100] counting upward.
// Package options do not apply; the counter is deterministic.
func NewCounter(cfg core.ProcessorConfig, input graph.SignalSource) *Counter {
	c := &Counter{
		Stream:    graph.NewStream(cfg),
		input:     input,
		min:       0,
		max:       100,
		direction: 1,
	}

	return c
}

// SetMin sets the lower bound and restarts the count from it.
func (c *Counter) SetMin(min int) error {
	if min > c.max {
		return fmt.Errorf("trig: counter min %d exceeds max %d", min, c.max)
	}

	c.min = min
	c.next = min

	return nil
}

// SetMax sets the upper bound.
func (c *Counter) SetMax(max int) error {
	if max < c.min {
		return fmt.Errorf("trig: counter max %d below min %d", max, c.min)
	}

	c.max = max

	return nil
}

// SetDir sets the counting direction and restarts the count: upward and
// bouncing counters restart from min, downward counters from max.
func (c *Counter) SetDir(dir CounterDir) error {
	if dir < CounterUp || dir > CounterUpDown {
		return fmt.Errorf("trig: invalid counter direction %d", dir)
	}

	c.dir = dir
	c.direction = 1
	if dir == CounterDown {
		c.next = c.max
	} else {
		c.next = c.min
	}

	return nil
}

// ComputeNextBlock advances the counter by one block.
func (c *Counter) ComputeNextBlock() {
	if !c.Active() {
		return
	}

	in := c.input.Block()
	out := c.Block()

	for i := range out {
		if in[i] == 1 {
			c.advance()
		}
		out[i] = c.value
	}

	c.PostProcess()
}

func (c *Counter) advance() {
	c.value = float64(c.next)

	switch c.dir {
	case CounterUp:
		c.next++
		if c.next > c.max {
			c.next = c.min
		}

	case CounterDown:
		c.next--
		if c.next < c.min {
			c.next = c.max
		}

	case CounterUpDown:
		c.next += c.direction
		if c.next >= c.max {
			c.next = c.max
			c.direction = -1
		} else if c.next <= c.min {
			c.next = c.min
			c.direction = 1
		}
	}
}

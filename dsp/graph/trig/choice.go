package trig

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Choice picks uniformly from a fixed list of candidate values on every
// trigger.
type Choice struct {
	graph.Stream

	input  graph.SignalSource
	values []float64

	rng *rand.Rand
	g   glide
}

// NewChoice creates a triggered list picker. The list must be non-empty.
// All package options apply.
func NewChoice(cfg core.ProcessorConfig, input graph.SignalSource, values []float64, opts ...Option) (*Choice, error) {
	o := applyOptions(opts)

	c := &Choice{
		Stream: graph.NewStream(cfg),
		input:  input,
		rng:    newRNG(o.seed),
	}
	if err := c.SetValues(values); err != nil {
		return nil, err
	}

	c.g.setRamp(o.port, c.SampleRate())
	c.g.target = o.initial
	c.g.current = o.initial

	return c, nil
}

// SetValues replaces the candidate list. Empty lists are rejected and the
// node keeps its previous list.
func (c *Choice) SetValues(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("trig: choice list must not be empty")
	}

	c.values = append(c.values[:0], values...)

	return nil
}

// Values returns a copy of the candidate list.
func (c *Choice) Values() []float64 {
	out := make([]float64, len(c.values))
	copy(out, c.values)

	return out
}

// SetPort sets the portamento ramp time in seconds.
func (c *Choice) SetPort(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("trig: port must be >= 0, got %v", seconds)
	}

	c.g.setRamp(seconds, c.SampleRate())

	return nil
}

// ComputeNextBlock advances the generator by one block.
func (c *Choice) ComputeNextBlock() {
	if !c.Active() {
		return
	}

	in := c.input.Block()
	out := c.Block()

	for i := range out {
		if in[i] == 1 {
			c.g.retarget(c.values[c.rng.Intn(len(c.values))])
		}
		out[i] = c.g.next()
	}

	c.PostProcess()
}

package trig

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Rand draws a uniform random value in [min, max) on every trigger. Both
// bounds are polymorphic parameters; the kernel variant is re-resolved
// whenever a bound's binding changes.
type Rand struct {
	graph.Stream

	input graph.SignalSource
	min   graph.Param
	max   graph.Param
	rate  graph.Rate

	rng *rand.Rand
	g   glide
}

// NewRand creates a triggered uniform random generator over [0, 1) with no
// portamento. All package options apply.
func NewRand(cfg core.ProcessorConfig, input graph.SignalSource, opts ...Option) *Rand {
	o := applyOptions(opts)

	r := &Rand{
		Stream: graph.NewStream(cfg),
		input:  input,
		min:    graph.C(0),
		max:    graph.C(1),
		rng:    newRNG(o.seed),
	}
	r.g.setRamp(o.port, r.SampleRate())
	r.g.target = o.initial
	r.g.current = o.initial
	r.resolveKernel()

	return r
}

func (r *Rand) resolveKernel() {
	r.rate = graph.ResolveRate(r.min, r.max)
}

// SetMin rebinds the lower bound.
func (r *Rand) SetMin(p graph.Param) {
	r.min = p
	r.resolveKernel()
}

// SetMax rebinds the upper bound.
func (r *Rand) SetMax(p graph.Param) {
	r.max = p
	r.resolveKernel()
}

// SetPort sets the portamento ramp time in seconds.
func (r *Rand) SetPort(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("trig: port must be >= 0, got %v", seconds)
	}

	r.g.setRamp(seconds, r.SampleRate())

	return nil
}

// ComputeNextBlock advances the generator by one block.
func (r *Rand) ComputeNextBlock() {
	if !r.Active() {
		return
	}

	in := r.input.Block()
	out := r.Block()

	switch r.rate {
	case graph.RateII:
		mi, ma := r.min.Scalar(), r.max.Scalar()
		span := ma - mi
		for i := range out {
			if in[i] == 1 {
				r.g.retarget(span*r.rng.Float64() + mi)
			}
			out[i] = r.g.next()
		}

	case graph.RateAI:
		mi, ma := r.min.Block(), r.max.Scalar()
		for i := range out {
			if in[i] == 1 {
				r.g.retarget((ma-mi[i])*r.rng.Float64() + mi[i])
			}
			out[i] = r.g.next()
		}

	case graph.RateIA:
		mi, ma := r.min.Scalar(), r.max.Block()
		for i := range out {
			if in[i] == 1 {
				r.g.retarget((ma[i]-mi)*r.rng.Float64() + mi)
			}
			out[i] = r.g.next()
		}

	case graph.RateAA:
		mi, ma := r.min.Block(), r.max.Block()
		for i := range out {
			if in[i] == 1 {
				r.g.retarget((ma[i]-mi[i])*r.rng.Float64() + mi[i])
			}
			out[i] = r.g.next()
		}

	default:
		panic("trig: unreachable kernel variant")
	}

	r.PostProcess()
}

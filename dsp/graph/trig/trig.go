// Package trig implements trigger-driven utility nodes.
//
// Every node in this package consumes a trigger signal: a block in which
// each sample is either 0 or exactly 1, a 1 marking the sample index at
// which a discrete event occurred. On a triggered sample the node draws or
// advances a new target value; between triggers it holds the last value or,
// where portamento is supported, glides toward the target linearly.
package trig

import (
	"math/rand"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

const defaultSeed = 1

type options struct {
	seed    int64
	port    float64
	initial float64
}

// Option configures a trigger node at construction. Options that do not
// apply to a node type are documented on its constructor.
type Option func(*options)

// WithSeed sets the deterministic seed of the node's random generator.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithPort sets the portamento ramp time in seconds applied between the
// current output value and a freshly drawn target.
func WithPort(seconds float64) Option {
	return func(o *options) {
		if seconds >= 0 {
			o.port = seconds
		}
	}
}

// WithInitialValue sets the value held on the output before the first
// trigger arrives.
func WithInitialValue(value float64) Option {
	return func(o *options) {
		o.initial = value
	}
}

func applyOptions(opts []Option) options {
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// glide tracks a target value and linearly interpolates the output toward
// it over a fixed number of samples. A zero ramp makes retargeting
// immediate.
type glide struct {
	target  float64
	current float64
	steps   int
	stepVal float64
	count   int
}

func (g *glide) setRamp(seconds, sampleRate float64) {
	g.steps = core.SecondsToSamples(seconds, sampleRate)
}

func (g *glide) retarget(value float64) {
	g.count = 0
	g.target = value

	if g.steps <= 0 {
		g.current = value
		return
	}

	g.stepVal = (value - g.current) / float64(g.steps)
}

func (g *glide) next() float64 {
	if g.count == g.steps-1 {
		g.current = g.target
		g.count++
	} else if g.count < g.steps {
		g.current += g.stepVal
		g.count++
	}

	return g.current
}

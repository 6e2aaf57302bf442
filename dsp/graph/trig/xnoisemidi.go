package trig

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// MidiScale selects the output mapping of an XnoiseMidi node.
type MidiScale int

const (
	// ScaleMidi emits the integer note number as a float.
	ScaleMidi MidiScale = iota
	// ScaleHertz converts the note number to a frequency in Hz.
	ScaleHertz
	// ScaleTranspo emits a playback-speed ratio relative to the
	// central key of the configured range.
	ScaleTranspo
)

const semitoneRatio = 1.0594633

// XnoiseMidi draws from the same distributions as Xnoise but maps each
// clamped draw onto a MIDI note range, optionally converted to a
// frequency or a transposition ratio.
type XnoiseMidi struct {
	graph.Stream

	input graph.SignalSource
	x1    graph.Param
	x2    graph.Param
	dist  Distribution
	rate  graph.Rate

	rangeMin   int
	rangeMax   int
	centralKey int
	scale      MidiScale

	d     xdist
	value float64
}

// NewXnoiseMidi creates a triggered MIDI noise generator. The note
// range defaults to the full 0..127 span with central key 64.
func NewXnoiseMidi(cfg core.ProcessorConfig, input graph.SignalSource, dist Distribution, opts ...Option) (*XnoiseMidi, error) {
	if err := validDistribution(dist); err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	x := &XnoiseMidi{
		Stream: graph.NewStream(cfg),
		input:  input,
		x1:     graph.C(0.5),
		x2:     graph.C(0.5),
		dist:   dist,

		rangeMin:   0,
		rangeMax:   127,
		centralKey: 64,

		d: newXdist(newRNG(o.seed)),
	}
	x.resolveKernel()

	return x, nil
}

func (x *XnoiseMidi) resolveKernel() {
	x.rate = graph.ResolveRate(x.x1, x.x2)
}

// SetX1 rebinds the first distribution parameter.
func (x *XnoiseMidi) SetX1(p graph.Param) {
	x.x1 = p
	x.resolveKernel()
}

// SetX2 rebinds the second distribution parameter.
func (x *XnoiseMidi) SetX2(p graph.Param) {
	x.x2 = p
	x.resolveKernel()
}

// SetDist switches the distribution.
func (x *XnoiseMidi) SetDist(dist Distribution) error {
	if err := validDistribution(dist); err != nil {
		return err
	}

	x.dist = dist

	return nil
}

// SetRange sets the note range in MIDI numbers and recenters the
// central key on its midpoint.
func (x *XnoiseMidi) SetRange(min, max int) error {
	if min > max {
		return fmt.Errorf("trig: midi range min %d > max %d", min, max)
	}

	x.rangeMin = min
	x.rangeMax = max
	x.centralKey = (min + max) / 2

	return nil
}

// SetScale selects the output mapping.
func (x *XnoiseMidi) SetScale(scale MidiScale) error {
	if scale < ScaleMidi || scale > ScaleTranspo {
		return fmt.Errorf("trig: invalid midi scale %d", scale)
	}

	x.scale = scale

	return nil
}

func (x *XnoiseMidi) convert(v float64) float64 {
	midival := int(v*float64(x.rangeMax-x.rangeMin)) + x.rangeMin
	midival = int(core.Clamp(float64(midival), 0, 127))

	switch x.scale {
	case ScaleHertz:
		return 8.175798 * math.Pow(semitoneRatio, float64(midival))
	case ScaleTranspo:
		return math.Pow(semitoneRatio, float64(midival-x.centralKey))
	default:
		return float64(midival)
	}
}

// ComputeNextBlock advances the generator by one block.
func (x *XnoiseMidi) ComputeNextBlock() {
	if !x.Active() {
		return
	}

	in := x.input.Block()
	out := x.Block()

	switch x.rate {
	case graph.RateII:
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x.x1.Scalar()
				x.d.xx2 = x.x2.Scalar()
				x.value = x.convert(x.d.draw(x.dist))
			}
			out[i] = x.value
		}

	case graph.RateAI:
		x1 := x.x1.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x1[i]
				x.d.xx2 = x.x2.Scalar()
				x.value = x.convert(x.d.draw(x.dist))
			}
			out[i] = x.value
		}

	case graph.RateIA:
		x2 := x.x2.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x.x1.Scalar()
				x.d.xx2 = x2[i]
				x.value = x.convert(x.d.draw(x.dist))
			}
			out[i] = x.value
		}

	case graph.RateAA:
		x1 := x.x1.Block()
		x2 := x.x2.Block()
		for i := range out {
			if in[i] == 1 {
				x.d.xx1 = x1[i]
				x.d.xx2 = x2[i]
				x.value = x.convert(x.d.draw(x.dist))
			}
			out[i] = x.value
		}

	default:
		panic("trig: unreachable parameter rate")
	}

	x.PostProcess()
}

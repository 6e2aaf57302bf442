package trig

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// ThreshDir selects which threshold crossings fire a trigger.
type ThreshDir int

const (
	// ThreshRising fires when the input moves above the threshold.
	ThreshRising ThreshDir = iota
	// ThreshFalling fires when the input moves below the threshold.
	ThreshFalling
	// ThreshBoth fires once on every side change.
	ThreshBoth
)

// Thresh is an edge detector: it emits a single-sample 1 when its input
// crosses the threshold in the configured direction, then re-arms only
// after the input returns past the threshold.
type Thresh struct {
	graph.Stream

	input     graph.SignalSource
	threshold graph.Param
	dir       ThreshDir

	ready     bool
	lastAbove bool
}

// NewThresh creates an edge detector. Package options do not apply.
func NewThresh(cfg core.ProcessorConfig, input graph.SignalSource, threshold graph.Param, dir ThreshDir) (*Thresh, error) {
	if dir < ThreshRising || dir > ThreshBoth {
		return nil, fmt.Errorf("trig: invalid threshold direction %d", dir)
	}

	t := &Thresh{
		Stream:    graph.NewStream(cfg),
		input:     input,
		threshold: threshold,
		dir:       dir,
		ready:     true,
	}

	return t, nil
}

// SetThreshold rebinds the threshold parameter.
func (t *Thresh) SetThreshold(p graph.Param) {
	t.threshold = p
}

// SetDir sets the crossing direction.
func (t *Thresh) SetDir(dir ThreshDir) error {
	if dir < ThreshRising || dir > ThreshBoth {
		return fmt.Errorf("trig: invalid threshold direction %d", dir)
	}

	t.dir = dir

	return nil
}

// ComputeNextBlock advances the detector by one block.
func (t *Thresh) ComputeNextBlock() {
	if !t.Active() {
		return
	}

	in := t.input.Block()
	out := t.Block()

	if t.threshold.IsSignal() {
		th := t.threshold.Block()
		for i := range out {
			out[i] = t.detect(in[i], th[i])
		}
	} else {
		th := t.threshold.Scalar()
		for i := range out {
			out[i] = t.detect(in[i], th)
		}
	}

	t.PostProcess()
}

func (t *Thresh) detect(x, th float64) float64 {
	switch t.dir {
	case ThreshRising:
		if x > th && t.ready {
			t.ready = false
			return 1
		}
		if x <= th && !t.ready {
			t.ready = true
		}

	case ThreshFalling:
		if x < th && t.ready {
			t.ready = false
			return 1
		}
		if x >= th && !t.ready {
			t.ready = true
		}

	case ThreshBoth:
		above := x > th
		if above != t.lastAbove {
			t.lastAbove = above
			return 1
		}
	}

	return 0
}

package trig

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Env reads a table from start to end once per trigger, linearly
// interpolated, over a configurable duration. Between runs the output
// is silent. Each completed run raises a single-sample 1 on the
// node's trigger buffer, exposed through EnvTrig.
type Env struct {
	graph.Stream

	input graph.SignalSource
	table graph.TableSource
	dur   graph.Param

	inc        float64
	pointerPos float64
	playing    bool
	trigs      []float64
}

// NewEnv creates a triggered table reader. Duration defaults to one
// second per run.
func NewEnv(cfg core.ProcessorConfig, input graph.SignalSource, table graph.TableSource) (*Env, error) {
	if table == nil {
		return nil, fmt.Errorf("trig: env table must not be nil")
	}

	e := &Env{
		Stream: graph.NewStream(cfg),
		input:  input,
		table:  table,
		dur:    graph.C(1),
	}
	e.trigs = make([]float64, e.BlockSize())

	return e, nil
}

// SetDur rebinds the run duration in seconds. The duration is sampled
// at trigger time; a running reader keeps its pace.
func (e *Env) SetDur(p graph.Param) error {
	if !p.IsSignal() && p.Scalar() <= 0 {
		return fmt.Errorf("trig: env duration must be > 0, got %v", p.Scalar())
	}

	e.dur = p

	return nil
}

// SetTable replaces the table for subsequent runs.
func (e *Env) SetTable(table graph.TableSource) error {
	if table == nil {
		return fmt.Errorf("trig: env table must not be nil")
	}

	e.table = table

	return nil
}

func (e *Env) start(dur float64) {
	size := float64(e.table.Size())
	e.inc = size / (dur * e.SampleRate())
	e.pointerPos = 0
	e.playing = true
}

// ComputeNextBlock advances the reader by one block.
func (e *Env) ComputeNextBlock() {
	if !e.Active() {
		return
	}

	in := e.input.Block()
	out := e.Block()
	data := e.table.Data()
	size := float64(e.table.Size())

	core.Zero(e.trigs)

	durSig := e.dur.IsSignal()
	var durBlock []float64
	if durSig {
		durBlock = e.dur.Block()
	}

	for i := range out {
		if in[i] == 1 {
			d := e.dur.Scalar()
			if durSig {
				d = durBlock[i]
			}
			if d > 0 {
				e.start(d)
			}
		}

		if e.playing {
			ipart := int(e.pointerPos)
			fpart := e.pointerPos - float64(ipart)
			if ipart >= len(data)-1 {
				ipart = len(data) - 2
				fpart = 1
			}
			out[i] = data[ipart] + (data[ipart+1]-data[ipart])*fpart
			e.pointerPos += e.inc
		} else {
			out[i] = 0
		}

		if e.pointerPos > size {
			e.trigs[i] = 1
			e.playing = false
			e.pointerPos = 0
		}
	}

	e.PostProcess()
}

// Trigs exposes the end-of-run trigger buffer for the current tick.
func (e *Env) Trigs() []float64 { return e.trigs }

// EnvTrig exposes an Env's end-of-run triggers as a signal source, so
// other trigger consumers can chain off a completed run. It holds a
// non-owning reference and must tick after its Env.
type EnvTrig struct {
	graph.Stream

	env *Env
}

// NewEnvTrig creates a trigger mirror for env.
func NewEnvTrig(cfg core.ProcessorConfig, env *Env) (*EnvTrig, error) {
	if env == nil {
		return nil, fmt.Errorf("trig: env reference must not be nil")
	}

	t := &EnvTrig{
		Stream: graph.NewStream(cfg),
		env:    env,
	}

	return t, nil
}

// ComputeNextBlock copies the source envelope's trigger buffer.
func (t *EnvTrig) ComputeNextBlock() {
	if !t.Active() {
		return
	}

	core.CopyInto(t.Block(), t.env.Trigs())
}

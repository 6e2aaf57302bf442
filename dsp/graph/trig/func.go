package trig

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Func invokes a host callback for each triggered input sample. Its
// output stays silent; the node exists purely for its side effect.
type Func struct {
	graph.Stream

	input graph.SignalSource
	fn    func()
}

// NewFunc creates a trigger-to-callback bridge.
func NewFunc(cfg core.ProcessorConfig, input graph.SignalSource, fn func()) (*Func, error) {
	if fn == nil {
		return nil, fmt.Errorf("trig: callback must not be nil")
	}

	f := &Func{
		Stream: graph.NewStream(cfg),
		input:  input,
		fn:     fn,
	}

	return f, nil
}

// SetFunction replaces the callback.
func (f *Func) SetFunction(fn func()) error {
	if fn == nil {
		return fmt.Errorf("trig: callback must not be nil")
	}

	f.fn = fn

	return nil
}

// ComputeNextBlock fires the callback once per trigger sample.
func (f *Func) ComputeNextBlock() {
	if !f.Active() {
		return
	}

	in := f.input.Block()
	for i := range in {
		if in[i] == 1 {
			f.fn()
		}
	}
}

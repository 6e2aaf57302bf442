package graph

import (
	"fmt"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// SignalSource is anything that produces one block of samples per tick.
// The returned slice must stay valid and fresh for the current tick; callers
// must not mutate it.
type SignalSource interface {
	Block() []float64
}

// TableSource provides immutable sample data for table readers.
//
// Data must contain at least Size+1 samples: the sample at index Size is a
// guard point that interpolating readers may touch when the read position
// lands inside the last segment.
type TableSource interface {
	Data() []float64
	Size() int
}

// Table is an in-memory TableSource.
type Table struct {
	data []float64
}

// NewTable wraps data as a TableSource. The last sample acts as the guard
// point, so the usable table size is len(data)-1.
func NewTable(data []float64) (*Table, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("graph: table needs at least 2 samples, got %d", len(data))
	}

	t := &Table{data: make([]float64, len(data))}
	copy(t.data, data)

	return t, nil
}

// Data returns the table samples, including the guard point.
func (t *Table) Data() []float64 { return t.data }

// Size returns the usable table size, excluding the guard point.
func (t *Table) Size() int { return len(t.data) - 1 }

// Feed is a source node whose block content is supplied by the host between
// ticks. It is the entry point for signals produced outside the graph.
type Feed struct {
	Stream
}

// NewFeed creates a host-fed source node.
func NewFeed(cfg core.ProcessorConfig) *Feed {
	f := &Feed{Stream: NewStream(cfg)}
	f.Play()

	return f
}

// SetBlock copies samples into the node's output buffer. Shorter input
// leaves the remainder of the block untouched.
func (f *Feed) SetBlock(samples []float64) {
	core.CopyInto(f.out, samples)
}

// ComputeNextBlock is a no-op: the host owns the block content.
func (f *Feed) ComputeNextBlock() {}

package graph

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

// Node is one generator in a pull-based signal graph. The scheduler calls
// ComputeNextBlock once per tick on every active node, producers before
// consumers; the runtime itself never reorders or retries.
type Node interface {
	SignalSource
	ComputeNextBlock()
	Play()
	Stop()
	Active() bool
}

// Stream is the per-node base state shared by every generator: the
// negotiated sample rate and block size, the owned output buffer, the
// active flag and the multiply/add post-processing stage. Concrete nodes
// embed it and fill the output buffer from their compute kernels.
type Stream struct {
	sr        float64
	blockSize int
	out       []float64
	active    bool

	mul      Param
	add      Param
	reversed bool
	post     postOp
}

// NewStream initializes node base state for the given configuration. The
// post-processing stage starts neutral (mul 1, add 0).
func NewStream(cfg core.ProcessorConfig) Stream {
	cfg = normalize(cfg)

	s := Stream{
		sr:        cfg.SampleRate,
		blockSize: cfg.BlockSize,
		out:       make([]float64, cfg.BlockSize),
		mul:       C(1),
		add:       C(0),
	}
	s.resolvePost()

	return s
}

func normalize(cfg core.ProcessorConfig) core.ProcessorConfig {
	def := core.DefaultProcessorConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}

	if cfg.BlockSize <= 0 {
		cfg.BlockSize = def.BlockSize
	}

	return cfg
}

// SampleRate returns the sample rate negotiated at construction.
func (s *Stream) SampleRate() float64 { return s.sr }

// BlockSize returns the number of samples produced per tick.
func (s *Stream) BlockSize() int { return s.blockSize }

// Block returns the most recently computed output block. Consumers must
// treat it as read-only.
func (s *Stream) Block() []float64 { return s.out }

// Active reports whether the node participates in the current tick.
func (s *Stream) Active() bool { return s.active }

// Play activates the node.
func (s *Stream) Play() { s.active = true }

// Stop deactivates the node and zeroes its output. Envelope nodes shadow
// this with their mode-dependent release behavior.
func (s *Stream) Stop() { s.Deactivate() }

// Deactivate clears the active flag and zeroes the output buffer. Nodes
// whose envelope completed naturally call this from their own kernels.
func (s *Stream) Deactivate() {
	s.active = false
	core.Zero(s.out)
}

// SetMul rebinds the multiply factor and re-resolves the post-processing
// variant.
func (s *Stream) SetMul(p Param) {
	s.mul = p
	s.resolvePost()
}

// SetAdd rebinds the add factor and re-resolves the post-processing
// variant.
func (s *Stream) SetAdd(p Param) {
	s.add = p
	s.resolvePost()
}

// SetReversed selects the reversed operator composition (x+a)*m instead of
// x*m+a.
func (s *Stream) SetReversed(reversed bool) {
	s.reversed = reversed
	s.resolvePost()
}

// postOp enumerates the resolved post-processing variants: the four
// constant/signal combinations, their reversed equivalents, and the neutral
// no-op.
type postOp int

const (
	postNone postOp = iota
	postII
	postAI
	postIA
	postAA
	postRevII
	postRevAI
	postRevIA
	postRevAA
)

// resolvePost derives the post-processing variant from the current mul/add
// binding tags. Pure function of the tags; calling it again without a
// binding change yields the same selection.
func (s *Stream) resolvePost() {
	s.post = resolvePostOp(s.mul, s.add, s.reversed)
}

func resolvePostOp(mul, add Param, reversed bool) postOp {
	rate := ResolveRate(mul, add)

	if rate == RateII && mul.Scalar() == 1 && add.Scalar() == 0 {
		return postNone
	}

	if reversed {
		switch rate {
		case RateII:
			return postRevII
		case RateAI:
			return postRevAI
		case RateIA:
			return postRevIA
		case RateAA:
			return postRevAA
		}
	}

	switch rate {
	case RateII:
		return postII
	case RateAI:
		return postAI
	case RateIA:
		return postIA
	case RateAA:
		return postAA
	}

	panic("graph: unreachable post-processing mode")
}

// PostProcess applies the resolved multiply/add variant to the output
// buffer. Kernels call it after generating a block, before publication.
func (s *Stream) PostProcess() {
	out := s.out

	switch s.post {
	case postNone:

	case postII:
		m, a := s.mul.Scalar(), s.add.Scalar()
		for i := range out {
			out[i] = out[i]*m + a
		}

	case postAI:
		a := s.add.Scalar()
		vecmath.MulBlockInPlace(out, s.mul.Block())
		for i := range out {
			out[i] += a
		}

	case postIA:
		vecmath.ScaleBlock(out, out, s.mul.Scalar())
		vecmath.AddBlockInPlace(out, s.add.Block())

	case postAA:
		vecmath.MulBlockInPlace(out, s.mul.Block())
		vecmath.AddBlockInPlace(out, s.add.Block())

	case postRevII:
		m, a := s.mul.Scalar(), s.add.Scalar()
		for i := range out {
			out[i] = (out[i] + a) * m
		}

	case postRevAI:
		a := s.add.Scalar()
		for i := range out {
			out[i] += a
		}
		vecmath.MulBlockInPlace(out, s.mul.Block())

	case postRevIA:
		vecmath.AddBlockInPlace(out, s.add.Block())
		vecmath.ScaleBlock(out, out, s.mul.Scalar())

	case postRevAA:
		vecmath.AddBlockInPlace(out, s.add.Block())
		vecmath.MulBlockInPlace(out, s.mul.Block())

	default:
		panic("graph: unreachable post-processing mode")
	}
}

// Package hilbert implements a phase quadrature splitter built from two
// parallel cascades of first-order allpass sections. The splitter feeds a
// pair of reader nodes exposing the in-phase and quadrature bands.
package hilbert

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nodes/dsp/core"
	"github.com/cwbudde/algo-nodes/dsp/graph"
)

// Band identifies one of the splitter's two outputs.
type Band int

const (
	// BandReal is the in-phase output.
	BandReal Band = iota
	// BandImag is the quadrature output, about 90 degrees behind the
	// real band across the audio range.
	BandImag
)

const numStages = 12

// Hand-tuned allpass pole frequencies, scaled by 15 at coefficient time.
// The first six form the in-phase cascade, the last six the quadrature
// cascade.
var poles = [numStages]float64{
	0.3609, 2.7412, 11.1573, 44.7581, 179.6242, 798.4578,
	1.2524, 5.5671, 22.3423, 89.6271, 364.7914, 2770.1114,
}

// Splitter runs the two allpass cascades over its input and exposes both
// bands for the same tick. It must compute before any of its readers.
type Splitter struct {
	input graph.SignalSource

	sampleRate float64
	blockSize  int
	active     bool

	coefs [numStages]float64
	x1    [numStages]float64
	y1    [numStages]float64

	// real band in [0, blockSize), imaginary band in [blockSize, 2*blockSize)
	bands []float64
}

// NewSplitter creates a quadrature splitter. Coefficients are derived from
// the sample rate once, at construction.
func NewSplitter(cfg core.ProcessorConfig, input graph.SignalSource) *Splitter {
	def := core.DefaultProcessorConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = def.BlockSize
	}

	s := &Splitter{
		input:      input,
		sampleRate: cfg.SampleRate,
		blockSize:  cfg.BlockSize,
		bands:      make([]float64, 2*cfg.BlockSize),
	}
	s.computeCoefs()

	return s
}

func (s *Splitter) computeCoefs() {
	for i, p := range poles {
		a := 2 * math.Pi * p * 15
		s.coefs[i] = -(1 - a/(2*s.sampleRate)) / (1 + a/(2*s.sampleRate))
	}
}

// SampleRate returns the sample rate in Hz.
func (s *Splitter) SampleRate() float64 { return s.sampleRate }

// BlockSize returns the number of samples per block.
func (s *Splitter) BlockSize() int { return s.blockSize }

// Active reports whether the splitter is computing.
func (s *Splitter) Active() bool { return s.active }

// Play starts the splitter from cleared filter state.
func (s *Splitter) Play() {
	s.x1 = [numStages]float64{}
	s.y1 = [numStages]float64{}
	s.active = true
}

// Stop halts computation and silences both bands.
func (s *Splitter) Stop() {
	s.active = false
	core.Zero(s.bands)
}

// Band returns the samples of one band for the current tick.
func (s *Splitter) Band(b Band) []float64 {
	if b == BandImag {
		return s.bands[s.blockSize:]
	}

	return s.bands[:s.blockSize]
}

// ComputeNextBlock runs both cascades over the next input block.
func (s *Splitter) ComputeNextBlock() {
	if !s.active {
		return
	}

	in := s.input.Block()

	for i := 0; i < s.blockSize; i++ {
		x := in[i]
		for j := 0; j < 6; j++ {
			y := s.coefs[j]*(x-s.y1[j]) + s.x1[j]
			s.x1[j] = x
			s.y1[j] = y
			x = y
		}
		s.bands[i] = x

		x = in[i]
		for j := 6; j < numStages; j++ {
			y := s.coefs[j]*(x-s.y1[j]) + s.x1[j]
			s.x1[j] = x
			s.y1[j] = y
			x = y
		}
		s.bands[i+s.blockSize] = x
	}
}

// Reader exposes one band of a shared splitter as a regular node output.
// The splitter is owned by the caller and must tick first; the reader only
// copies its band and applies the post-processing stage.
type Reader struct {
	graph.Stream

	splitter *Splitter
	band     Band
}

// NewReader creates a band reader over splitter.
func NewReader(cfg core.ProcessorConfig, splitter *Splitter, band Band) (*Reader, error) {
	if splitter == nil {
		return nil, fmt.Errorf("hilbert: splitter reference must not be nil")
	}
	if band != BandReal && band != BandImag {
		return nil, fmt.Errorf("hilbert: invalid band %d", band)
	}

	r := &Reader{
		Stream:   graph.NewStream(cfg),
		splitter: splitter,
		band:     band,
	}

	return r, nil
}

// ComputeNextBlock copies the reader's band for the current tick.
func (r *Reader) ComputeNextBlock() {
	if !r.Active() {
		return
	}

	core.CopyInto(r.Block(), r.splitter.Band(r.band))
	r.PostProcess()
}

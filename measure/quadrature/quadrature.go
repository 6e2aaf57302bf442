// Package quadrature measures the phase and amplitude relationship
// between two signals at a single probe frequency, via the cross
// spectrum of their FFTs.
package quadrature

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Config holds analysis parameters. The probe frequency should be
// bin-aligned (an integer number of cycles per FFT frame) for an exact
// reading; no window is applied.
type Config struct {
	SampleRate float64
	FFTSize    int
	Freq       float64
}

// Result holds the relationship of signal A relative to signal B at the
// probe bin.
type Result struct {
	// PhaseDiff is phase(A) - phase(B) in radians, wrapped to (-pi, pi].
	PhaseDiff float64
	// AmpRatio is |A| / |B|.
	AmpRatio float64
}

// PhaseDiffDegrees returns the phase difference in degrees.
func (r Result) PhaseDiffDegrees() float64 {
	return r.PhaseDiff * 180 / math.Pi
}

// Analyze compares two equally long signals at the configured probe
// frequency.
func Analyze(a, b []float64, cfg Config) (Result, error) {
	if len(a) == 0 || len(a) != len(b) {
		return Result{}, fmt.Errorf("quadrature: signals must be non-empty and equally long, got %d and %d", len(a), len(b))
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("quadrature: sample rate must be > 0, got %v", cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(a))
	}
	if len(a) > fftSize {
		a = a[:fftSize]
		b = b[:fftSize]
	}

	specA, err := spectrum(a, fftSize)
	if err != nil {
		return Result{}, err
	}

	specB, err := spectrum(b, fftSize)
	if err != nil {
		return Result{}, err
	}

	bin := int(math.Round(cfg.Freq / cfg.SampleRate * float64(fftSize)))
	if bin < 0 || bin > fftSize/2 {
		return Result{}, fmt.Errorf("quadrature: probe frequency %v Hz outside spectrum", cfg.Freq)
	}

	magA := cmplx.Abs(specA[bin])
	magB := cmplx.Abs(specB[bin])
	if magB == 0 {
		return Result{}, fmt.Errorf("quadrature: no energy at probe bin %d in reference signal", bin)
	}

	cross := specA[bin] * cmplx.Conj(specB[bin])

	return Result{
		PhaseDiff: cmplx.Phase(cross),
		AmpRatio:  magA / magB,
	}, nil
}

func spectrum(signal []float64, fftSize int) ([]complex128, error) {
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("quadrature: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("quadrature: %w", err)
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

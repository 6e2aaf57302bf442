package quadrature

import (
	"math"
	"testing"
)

func probe(n int, cycles float64, phase, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*cycles*float64(i)/float64(n)+phase)
	}
	return out
}

func TestAnalyzeQuadraturePair(t *testing.T) {
	const (
		n    = 1024
		bins = 16.0
	)
	cfg := Config{SampleRate: float64(n), FFTSize: n, Freq: bins}

	sin := probe(n, bins, 0, 1)
	cos := probe(n, bins, math.Pi/2, 1)

	res, err := Analyze(sin, cos, cfg)
	if err != nil {
		t.Fatalf("Analyze returned %v, want nil", err)
	}

	if math.Abs(res.PhaseDiffDegrees()+90) > 1e-6 {
		t.Fatalf("phase difference is %v degrees, want -90", res.PhaseDiffDegrees())
	}
	if math.Abs(res.AmpRatio-1) > 1e-9 {
		t.Fatalf("amplitude ratio is %v, want 1", res.AmpRatio)
	}
}

func TestAnalyzeAmplitudeRatio(t *testing.T) {
	const n = 512
	cfg := Config{SampleRate: float64(n), FFTSize: n, Freq: 8}

	a := probe(n, 8, 0, 2)
	b := probe(n, 8, 0, 0.5)

	res, err := Analyze(a, b, cfg)
	if err != nil {
		t.Fatalf("Analyze returned %v, want nil", err)
	}

	if math.Abs(res.AmpRatio-4) > 1e-9 {
		t.Fatalf("amplitude ratio is %v, want 4", res.AmpRatio)
	}
	if math.Abs(res.PhaseDiff) > 1e-9 {
		t.Fatalf("phase difference is %v, want 0", res.PhaseDiff)
	}
}

func TestAnalyzeDefaultsFFTSize(t *testing.T) {
	const n = 300
	// 300 samples round up to a 512 point FFT; 8 cycles of 300 samples do
	// not land on a bin, but the reading still identifies the leader.
	a := probe(n, 8, math.Pi/4, 1)
	b := probe(n, 8, 0, 1)

	res, err := Analyze(a, b, Config{SampleRate: float64(n), Freq: 8})
	if err != nil {
		t.Fatalf("Analyze returned %v, want nil", err)
	}

	if res.PhaseDiff <= 0 {
		t.Fatalf("phase difference is %v, want positive for a leading signal", res.PhaseDiff)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	good := Config{SampleRate: 1000, FFTSize: 64, Freq: 100}

	if _, err := Analyze(nil, nil, good); err == nil {
		t.Fatal("Analyze of empty signals accepted, want error")
	}
	if _, err := Analyze([]float64{1, 2}, []float64{1}, good); err == nil {
		t.Fatal("Analyze of mismatched lengths accepted, want error")
	}
	if _, err := Analyze([]float64{1}, []float64{1}, Config{FFTSize: 64, Freq: 1}); err == nil {
		t.Fatal("Analyze without sample rate accepted, want error")
	}
	if _, err := Analyze(probe(64, 4, 0, 1), probe(64, 4, 0, 1), Config{SampleRate: 64, FFTSize: 64, Freq: 60}); err == nil {
		t.Fatal("Analyze with out-of-spectrum probe accepted, want error")
	}

	silent := make([]float64, 64)
	if _, err := Analyze(probe(64, 4, 0, 1), silent, Config{SampleRate: 64, FFTSize: 64, Freq: 4}); err == nil {
		t.Fatal("Analyze with silent reference accepted, want error")
	}
}

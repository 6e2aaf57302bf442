package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

func TestSineQuarterCycle(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	x, err := g.Sine(250, 1, 5)
	if err != nil {
		t.Fatalf("Sine returned %v, want nil", err)
	}

	want := []float64{0, 1, 0, -1, 0}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Fatalf("sample %d is %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSineRejectsBadArgs(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	if _, err := g.Sine(100, 1, 0); err == nil {
		t.Fatal("Sine with 0 samples accepted, want error")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(7))

	a, err := g.WhiteNoise(0.5, 100)
	if err != nil {
		t.Fatalf("WhiteNoise returned %v, want nil", err)
	}
	b, err := g.WhiteNoise(0.5, 100)
	if err != nil {
		t.Fatalf("WhiteNoise returned %v, want nil", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same-seed noise differs at %d: %v vs %v", i, a[i], b[i])
		}
		if a[i] < -0.5 || a[i] > 0.5 {
			t.Fatalf("noise sample %d is %v, want in [-0.5, 0.5]", i, a[i])
		}
	}
}

func TestTriggerTrain(t *testing.T) {
	g := NewGenerator()

	x, err := g.TriggerTrain(4, 1, 10)
	if err != nil {
		t.Fatalf("TriggerTrain returned %v, want nil", err)
	}

	want := []float64{0, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("sample %d is %v, want %v (train %v)", i, x[i], want[i], x)
		}
	}

	if _, err := g.TriggerTrain(0, 0, 10); err == nil {
		t.Fatal("TriggerTrain with period 0 accepted, want error")
	}
	if _, err := g.TriggerTrain(4, -1, 10); err == nil {
		t.Fatal("TriggerTrain with negative offset accepted, want error")
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator()

	x, err := g.Impulse(3, 6)
	if err != nil {
		t.Fatalf("Impulse returned %v, want nil", err)
	}

	for i, v := range x {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("sample %d is %v, want %v", i, v, want)
		}
	}

	if _, err := g.Impulse(6, 6); err == nil {
		t.Fatal("Impulse with out-of-range position accepted, want error")
	}
}

func TestNormalize(t *testing.T) {
	x, err := Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		t.Fatalf("Normalize returned %v, want nil", err)
	}

	want := []float64{-0.4, 0.2, 0.8}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("sample %d is %v, want %v", i, x[i], want[i])
		}
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("Normalize of empty input accepted, want error")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("Normalize with negative target accepted, want error")
	}
}

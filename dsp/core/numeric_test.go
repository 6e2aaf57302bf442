package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestClampUnit(t *testing.T) {
	if got := ClampUnit(-0.1); got != 0 {
		t.Fatalf("ClampUnit(-0.1) = %v, want 0", got)
	}

	if got := ClampUnit(1.1); got != 1 {
		t.Fatalf("ClampUnit(1.1) = %v, want 1", got)
	}

	if got := ClampUnit(0.25); got != 0.25 {
		t.Fatalf("ClampUnit(0.25) = %v, want 0.25", got)
	}
}

func TestSecondsToSamples(t *testing.T) {
	if got := SecondsToSamples(0.5, 44100); got != 22050 {
		t.Fatalf("SecondsToSamples(0.5, 44100) = %d, want 22050", got)
	}

	if got := SecondsToSamples(0, 44100); got != 0 {
		t.Fatalf("SecondsToSamples(0, 44100) = %d, want 0", got)
	}

	if got := SecondsToSamples(-1, 44100); got != 0 {
		t.Fatalf("SecondsToSamples(-1, 44100) = %d, want 0", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values within eps to compare equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected distant values to compare unequal")
	}
}

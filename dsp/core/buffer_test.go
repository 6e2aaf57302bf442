package core

import "testing"

func TestEnsureLenReusesCapacity(t *testing.T) {
	buf := make([]float64, 8, 16)

	out := EnsureLen(buf, 12)
	if len(out) != 12 {
		t.Fatalf("len = %d, want 12", len(out))
	}

	if &out[0] != &buf[:1][0] {
		t.Fatal("expected EnsureLen to reuse the existing backing array")
	}
}

func TestEnsureLenAllocates(t *testing.T) {
	buf := make([]float64, 4)

	out := EnsureLen(buf, 64)
	if len(out) != 64 {
		t.Fatalf("len = %d, want 64", len(out))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 3)

	n := CopyInto(dst, []float64{1, 2, 3, 4})
	if n != 3 {
		t.Fatalf("copied %d, want 3", n)
	}

	if dst[2] != 3 {
		t.Fatalf("dst[2] = %v, want 3", dst[2])
	}
}

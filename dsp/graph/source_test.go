package graph

import (
	"testing"

	"github.com/cwbudde/algo-nodes/dsp/core"
)

func TestNewTableGuardPoint(t *testing.T) {
	tbl, err := NewTable([]float64{0, 0.5, 1, 0})
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if tbl.Size() != 3 {
		t.Fatalf("Size = %d, want 3 (guard point excluded)", tbl.Size())
	}

	if len(tbl.Data()) != tbl.Size()+1 {
		t.Fatalf("Data length = %d, want Size+1", len(tbl.Data()))
	}
}

func TestNewTableRejectsTooShort(t *testing.T) {
	if _, err := NewTable([]float64{1}); err == nil {
		t.Fatal("expected error for table shorter than 2 samples")
	}
}

func TestNewTableCopiesData(t *testing.T) {
	src := []float64{0, 1, 0}

	tbl, err := NewTable(src)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	src[1] = -1

	if tbl.Data()[1] != 1 {
		t.Fatal("table must own a copy of its data")
	}
}

func TestFeedSetBlock(t *testing.T) {
	f := NewFeed(core.ProcessorConfig{SampleRate: 44100, BlockSize: 4})

	if !f.Active() {
		t.Fatal("feed must start active")
	}

	f.SetBlock([]float64{1, 2})

	got := f.Block()
	want := []float64{1, 2, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

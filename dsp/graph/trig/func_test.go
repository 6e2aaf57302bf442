package trig

import (
	"testing"

	"github.com/cwbudde/algo-nodes/dsp/graph"
)

func TestFuncFiresOncePerTrigger(t *testing.T) {
	cfg := testConfig()
	feed := graph.NewFeed(cfg)
	feed.SetBlock(trigBlock(cfg.BlockSize, 2, 7))

	calls := 0
	f, err := NewFunc(cfg, feed, func() { calls++ })
	if err != nil {
		t.Fatalf("NewFunc returned %v, want nil", err)
	}
	f.Play()

	f.ComputeNextBlock()
	if calls != 2 {
		t.Fatalf("callback fired %d times, want 2", calls)
	}

	// Non-trigger samples never fire, including values close to 1.
	feed.SetBlock([]float64{0, 0.5, 0.999, 0, 0, 0, 0, 0, 0, 0})
	f.ComputeNextBlock()
	if calls != 2 {
		t.Fatalf("callback fired %d times after non-trigger block, want 2", calls)
	}
}

func TestFuncOutputStaysSilent(t *testing.T) {
	cfg := testConfig()
	feed := graph.NewFeed(cfg)
	feed.SetBlock(allOnes(cfg.BlockSize))

	f, err := NewFunc(cfg, feed, func() {})
	if err != nil {
		t.Fatalf("NewFunc returned %v, want nil", err)
	}
	f.Play()
	f.ComputeNextBlock()

	for i, v := range f.Block() {
		if v != 0 {
			t.Fatalf("output at sample %d is %v, want 0", i, v)
		}
	}
}

func TestFuncRejectsNilCallback(t *testing.T) {
	cfg := testConfig()

	if _, err := NewFunc(cfg, graph.NewFeed(cfg), nil); err == nil {
		t.Fatal("NewFunc(nil) accepted, want error")
	}

	f, err := NewFunc(cfg, graph.NewFeed(cfg), func() {})
	if err != nil {
		t.Fatalf("NewFunc returned %v, want nil", err)
	}
	if err := f.SetFunction(nil); err == nil {
		t.Fatal("SetFunction(nil) accepted, want error")
	}
}

func TestFuncInactiveDoesNotFire(t *testing.T) {
	cfg := testConfig()
	feed := graph.NewFeed(cfg)
	feed.SetBlock(allOnes(cfg.BlockSize))

	calls := 0
	f, err := NewFunc(cfg, feed, func() { calls++ })
	if err != nil {
		t.Fatalf("NewFunc returned %v, want nil", err)
	}

	f.ComputeNextBlock()
	if calls != 0 {
		t.Fatalf("inactive node fired %d times, want 0", calls)
	}
}
